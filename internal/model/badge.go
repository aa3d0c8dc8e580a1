package model

type BadgeCriteria string

const (
	BadgeCriteriaXP     BadgeCriteria = "xp"
	BadgeCriteriaStreak BadgeCriteria = "streak"
)

type Badge struct {
	Name          string
	Description   string
	Icon          string
	CriteriaType  BadgeCriteria
	CriteriaValue int
}
