package model

import "time"

type QuestType string

const (
	QuestTypeDaily  QuestType = "Daily"
	QuestTypeWeekly QuestType = "Weekly"
	QuestTypeEpic   QuestType = "Epic"
)

func (t QuestType) Valid() bool {
	switch t {
	case QuestTypeDaily, QuestTypeWeekly, QuestTypeEpic:
		return true
	}
	return false
}

type QuestStatus string

const (
	QuestStatusToDo       QuestStatus = "To Do"
	QuestStatusInProgress QuestStatus = "In Progress"
	QuestStatusDone       QuestStatus = "Done"
)

type Quest struct {
	ID          string
	UserID      string
	Title       string
	Description string
	QuestType   QuestType
	Status      QuestStatus
	XPReward    int
	Deadline    *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}
