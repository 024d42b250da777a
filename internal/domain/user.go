package domain

import "time"

// User is the domain model for registered cooks.
type User struct {
	ID           int64
	Username     string
	Name         string
	ProfileImg   string
	Bio          string
	PasswordHash string
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
