package model

type Dashboard struct {
	User                 *User
	QuestsToday          int
	QuestsCompletedToday int
	DailySideQuest       *SideQuest
	RecentBadges         []Badge
}
