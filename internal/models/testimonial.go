package models

import "time"

type Testimonial struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`

	IsApproved bool `json:"isApproved"`

	CreatedAt time.Time `json:"createdAt"`
}
