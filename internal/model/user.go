package model

import "time"

type User struct {
	ID               string
	Email            string
	Username         string
	PasswordHash     string
	TotalXP          int
	Level            int
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate *time.Time
	Badges           []string
	CreatedAt        time.Time
}
