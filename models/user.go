package models

import "time"

// User represents an account of the contract host. Every farm entity owner
// ID is a UserID.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login.
	Login string `json:"login"`

	// Password is the plaintext password sent by the client on register and
	// login. It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored by the server.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
