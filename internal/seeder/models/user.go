package models

import "time"

type Preferences struct {
	Voice    string `json:"voice"`
	Language string `json:"language"`
}

// User is created once per generated account and never updated.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	Preferences  Preferences
}
