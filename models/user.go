package models

import "time"

// User represents an account entity used for authentication and for
// dashboard membership. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the server-assigned UUID of the user.
	UserID string `json:"id"`

	// Email is the unique, lower-cased login identifier. It never changes
	// once the account exists.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// AvatarURL is an optional link to the user's picture.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. Accounts
	// created through login upsert have an empty hash.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account was registered with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
