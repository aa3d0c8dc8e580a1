// Package catalog holds the fixed reward catalogs: the badge definitions and
// the side-quest seed list. Both are immutable after process start; accessors
// hand out copies so callers cannot mutate the shared data.
package catalog

import "levelup_daily/internal/model"

var badges = []model.Badge{
	{Name: "First Steps", Description: "Earn your first 10 XP", Icon: "🌟", CriteriaType: model.BadgeCriteriaXP, CriteriaValue: 10},
	{Name: "Rising Star", Description: "Reach 100 total XP", Icon: "⭐", CriteriaType: model.BadgeCriteriaXP, CriteriaValue: 100},
	{Name: "Experience Master", Description: "Reach 1000 total XP", Icon: "🏆", CriteriaType: model.BadgeCriteriaXP, CriteriaValue: 1000},
	{Name: "Streak Starter", Description: "Keep a 3-day streak", Icon: "🔥", CriteriaType: model.BadgeCriteriaStreak, CriteriaValue: 3},
	{Name: "Consistency King", Description: "Keep a 7-day streak", Icon: "👑", CriteriaType: model.BadgeCriteriaStreak, CriteriaValue: 7},
	{Name: "Dedication Legend", Description: "Keep a 30-day streak", Icon: "🗿", CriteriaType: model.BadgeCriteriaStreak, CriteriaValue: 30},
}

var sideQuestSeed = []model.SideQuest{
	{Title: "Take 10 Deep Breaths", Description: "Practice mindful breathing for stress relief", XPReward: 8},
	{Title: "Write 3 Things You're Grateful For", Description: "Practice gratitude to boost positivity", XPReward: 8},
	{Title: "Do 20 Push-ups", Description: "Get your blood pumping with quick exercise", XPReward: 8},
	{Title: "Drink a Full Glass of Water", Description: "Stay hydrated for better health", XPReward: 5},
	{Title: "Tidy Your Workspace", Description: "Create a cleaner environment for productivity", XPReward: 8},
	{Title: "Text Someone You Care About", Description: "Strengthen your social connections", XPReward: 8},
	{Title: "Take a 5-Minute Walk", Description: "Get moving and clear your head", XPReward: 8},
	{Title: "Listen to Your Favorite Song", Description: "Boost your mood with music", XPReward: 5},
}

// Badges returns the full badge catalog in award-evaluation order.
func Badges() []model.Badge {
	out := make([]model.Badge, len(badges))
	copy(out, badges)
	return out
}

// BadgeByName looks a badge up by its unique display name.
func BadgeByName(name string) (model.Badge, bool) {
	for _, b := range badges {
		if b.Name == name {
			return b, true
		}
	}
	return model.Badge{}, false
}

// SideQuestSeed returns the default side quests inserted into an empty catalog.
// Entries carry no IDs; the seeder assigns them.
func SideQuestSeed() []model.SideQuest {
	out := make([]model.SideQuest, len(sideQuestSeed))
	copy(out, sideQuestSeed)
	return out
}
