package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is a member of the role enum.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account with its profile fields. Role defaults to
// student when absent; admin accounts are created only via the
// create-admin tool.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	AvatarKey    string    `json:"avatar_key"`
	Branch       string    `json:"branch,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignUpRequest is the payload for account registration.
// Password policy: min 6 chars, leading uppercase, a digit and a symbol.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128,quizpassword"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher"`
}

// SignInRequest is the payload for authentication.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// AuthResponse is returned after successful signup or signin.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest is the payload for profile edits. Empty fields
// are left unchanged; AvatarKey must name an unlocked avatar.
type UpdateProfileRequest struct {
	FullName  string `json:"full_name" binding:"omitempty,min=2,max=100"`
	AvatarKey string `json:"avatar_key" binding:"omitempty,max=32"`
	Branch    string `json:"branch" binding:"omitempty,max=32"`
}
