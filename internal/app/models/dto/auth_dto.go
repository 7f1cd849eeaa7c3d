package dto

import "time"

// RegisterRequest represents the user registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=255" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email,max=254" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6,max=64" example:"Passw0rd"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"Passw0rd"`
}

// UserResponse is the public projection of a user, never exposing the hash
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDetailResponse extends UserResponse with the user's event summaries
type UserDetailResponse struct {
	ID                  int64               `json:"id" example:"1"`
	Name                string              `json:"name" example:"Jane Doe"`
	Email               string              `json:"email" example:"jane@example.com"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	OrganizedEvents     []EventListResponse `json:"organizedEvents"`
	ParticipatingEvents []EventListResponse `json:"participatingEvents"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Message string       `json:"message" example:"User registered successfully"`
	User    UserResponse `json:"user"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
	User      UserResponse `json:"user"`
}
