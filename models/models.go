// Package models defines data structures used across the application.
// File: models/models.go
package models

// ----------------------- user model -----------------------

// User is a row in the marketing_users table. Password holds a bcrypt hash
// and is never serialized back to clients.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// SessionUser is the slice of a User kept in the session after login.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ----------------------- event model -----------------------

// Event is a row in the marketing_events table. Channel, Platform and Notes
// are nullable in the remote table, hence the pointers.
type Event struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Title     string  `json:"title"`
	Channel   *string `json:"channel"`
	Platform  *string `json:"platform"`
	Notes     *string `json:"notes"`
	CreatedBy int64   `json:"created_by"`
	Posted    bool    `json:"posted"`
}

// EventInput is the client payload for creating or updating an event.
// Date, Time and Title are mandatory; the rest default to null.
type EventInput struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Title    string  `json:"title"`
	Channel  *string `json:"channel"`
	Platform *string `json:"platform"`
	Notes    *string `json:"notes"`
}
