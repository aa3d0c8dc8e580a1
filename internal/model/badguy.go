package model

import "time"

type BadGuy struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	MaxHP          int
	CurrentHP      int
	DefeatXPReward int
	CreatedAt      time.Time
}

// BadGuyDefeat is an append-only record of one damage application,
// kept regardless of whether the blow was lethal.
type BadGuyDefeat struct {
	ID          string
	UserID      string
	BadGuyID    string
	DamageDealt int
	LoggedAt    time.Time
}
