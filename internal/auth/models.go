// internal/auth/models.go
// Data structures for the authentication system. Accounts live in the
// same profiles table the rest of the app reads; auth only touches the
// credential columns.

package auth

import "time"

// User is the credential-side view of a profile row
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	Firstname    string    `json:"firstname" db:"firstname"`
	Lastname     string    `json:"lastname" db:"lastname"`
	PasswordHash string    `json:"-" db:"password"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is what the client sends to create an account
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Firstname       string `json:"firstname" validate:"required,max=100"`
	Lastname        string `json:"lastname" validate:"required,max=100"`
	Birthdate       string `json:"birthdate" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest authenticates with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is what we send back after successful authentication
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
