package models

import "time"

type Appointment struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Therapist     string `json:"therapist,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
