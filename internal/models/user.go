package models

import (
	"time"
)

// UserDB represents a user record in the credential store
type UserDB struct {
	Username     string    `json:"username" db:"username"`     // Unique, immutable login name
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Contact email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Identity is the authenticated caller resolved by the auth middleware.
type Identity struct {
	Username string
	Token    string
}

// CurrentUser is the profile of the authenticated caller
// swagger:model CurrentUser
type CurrentUser struct {
	// example: alice1
	Username string `json:"username"`
	// example: Alice
	Name string `json:"name"`
	// example: alice@example.com
	Email string `json:"email"`
	// example: JWT_TOKEN
	Token string `json:"token"`
}
