package models

import "time"

const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	// bcrypt hash, never serialized
	PasswordHash string `json:"-"`

	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}
