package user

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

// User represents a cafe account
type User struct {
	ID            uint
	Name          string
	ContactNumber string
	Email         string
	PasswordHash  string
	Status        Status
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// StatusFromFlag maps the "true"/"false" approval flag used by the API.
func StatusFromFlag(flag string) Status {
	if strings.EqualFold(strings.TrimSpace(flag), "true") {
		return StatusActive
	}
	return StatusPending
}
