package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Jane Doe"`                        // User's display name
	Email        string    `json:"email" db:"email" example:"jane@example.com"`              // User's email address, stored lowercased
	PasswordHash string    `json:"-" db:"password_hash"`                                     // User's hashed password (excluded from JSON)
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
