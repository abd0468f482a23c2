package model

import "time"

// Account roles. Role is server-assigned on create and only changes
// through an explicit update.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account record in the database.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}

// CreateUserRequest represents an account creation request. Role and
// creation time are stamped server-side and intentionally absent here.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token issued at login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserResponse represents account data safe for API responses.
// The password hash is never part of this shape.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
