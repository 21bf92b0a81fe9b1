package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Provider identifies how a user authenticates.
type Provider string

// Supported authentication providers
const (
	ProviderLocal     Provider = "local"
	ProviderGoogle    Provider = "google"
	ProviderFacebook  Provider = "facebook"
	ProviderInstagram Provider = "instagram"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderFacebook, ProviderInstagram:
		return true
	}
	return false
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID          uuid.UUID      `json:"id" db:"id"`                               // Primary key
	Username        string         `json:"username" db:"username"`                   // Unique username
	Email           string         `json:"email" db:"email"`                         // Unique, lower-cased email
	PasswordHash    sql.NullString `json:"-" db:"password_hash"`                     // Absent for OAuth-only accounts
	Provider        Provider       `json:"provider" db:"provider"`                   // Last provider used to sign in
	GoogleID        sql.NullString `json:"-" db:"google_id"`                         // Google subject id
	FacebookID      sql.NullString `json:"-" db:"facebook_id"`                       // Facebook user id
	InstagramID     sql.NullString `json:"-" db:"instagram_id"`                      // Instagram user id
	ProfileImage    sql.NullString `json:"profile_image" db:"profile_image"`         // Avatar URL
	IsAdmin         bool           `json:"is_admin" db:"is_admin"`                   // Admin flag
	IsEmailVerified bool           `json:"is_email_verified" db:"is_email_verified"` // Email verified flag
	IsSuspended     bool           `json:"is_suspended" db:"is_suspended"`           // Suspended by a moderator
	SuspendedAt     sql.NullTime   `json:"-" db:"suspended_at"`                      // Suspension timestamp
	SuspendReason   sql.NullString `json:"-" db:"suspension_reason"`                 // Moderator's reason
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// ProviderID returns the external id stored for p, if any.
func (u *UserDB) ProviderID(p Provider) (string, bool) {
	var v sql.NullString
	switch p {
	case ProviderGoogle:
		v = u.GoogleID
	case ProviderFacebook:
		v = u.FacebookID
	case ProviderInstagram:
		v = u.InstagramID
	}
	return v.String, v.Valid && v.String != ""
}

// HasPassword reports whether the user can sign in with a password.
func (u *UserDB) HasPassword() bool {
	return u.PasswordHash.Valid && u.PasswordHash.String != ""
}

// Identity builds the claim set for this user.
func (u *UserDB) Identity() Identity {
	return Identity{
		UserID:   u.UserID,
		Email:    u.Email,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

// View builds the public representation of the user.
func (u *UserDB) View() UserView {
	v := UserView{
		ID:              u.UserID,
		Username:        u.Username,
		Email:           u.Email,
		Provider:        u.Provider,
		IsEmailVerified: u.IsEmailVerified,
		IsAdmin:         u.IsAdmin,
		IsSuspended:     u.IsSuspended,
		CreatedAt:       u.CreatedAt,
	}
	if u.ProfileImage.Valid {
		v.ProfileImage = &u.ProfileImage.String
	}
	return v
}

// UserView is the user representation returned by the API.
// swagger:model UserView
type UserView struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ProfileImage    *string   `json:"profileImage"`
	Provider        Provider  `json:"provider"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	IsAdmin         bool      `json:"isAdmin"`
	IsSuspended     bool      `json:"isSuspended"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUser holds the fields needed to insert a user.
type NewUser struct {
	Username        string
	Email           string
	PasswordHash    *string
	Provider        Provider
	ProviderID      *string
	ProfileImage    *string
	IsEmailVerified bool
}
