package model

import "time"

type PowerUp struct {
	ID          string
	UserID      string
	Title       string
	Description string
	XPReward    int
	CreatedAt   time.Time
}

// PowerUpLog is an append-only record of a single power-up use.
type PowerUpLog struct {
	ID        string
	UserID    string
	PowerUpID string
	LoggedAt  time.Time
}
