package models

import "github.com/google/uuid"

// Identity is the set of facts embedded in a session token and attached
// to an authenticated request.
type Identity struct {
	UserID   uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
}

// ExternalProfile is what an OAuth provider tells us about a user.
type ExternalProfile struct {
	Provider      Provider
	ID            string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
