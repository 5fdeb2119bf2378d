package models

import "time"

type ContactMessage struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	IsRead bool `json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
}
