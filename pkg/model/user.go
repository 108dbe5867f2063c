package model

import "time"

type UserRole string

const (
	UserRoleHR        UserRole = "hr"
	UserRoleCandidate UserRole = "candidate"
)

type User struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Phone        *string   `json:"phone" db:"phone"`
	Organization *string   `json:"organization" db:"organization"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type SignUpRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	Role         UserRole `json:"role" binding:"required,oneof=hr candidate"`
	Phone        *string  `json:"phone"`
	Organization *string  `json:"organization"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Organization *string  `json:"organization,omitempty"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"` // unix seconds
	User        UserResponse `json:"user"`
}
