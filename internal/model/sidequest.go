package model

type SideQuest struct {
	ID          string
	Title       string
	Description string
	XPReward    int
}
