package models

import (
	"strings"
	"time"
)

// User is a credential record in the user directory.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	Seeded       bool      `json:"seeded"` // starter habits already created
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if !strings.Contains(u.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// Session is the persisted active-session record: the identity whose
// habit collection and notification log are currently bound.
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
