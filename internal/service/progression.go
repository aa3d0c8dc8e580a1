package service

import (
	"context"
	"fmt"
	"time"

	"levelup_daily/internal/catalog"
	"levelup_daily/internal/model"
)

// XPPerLevel is how much total XP one level represents.
const XPPerLevel = 100

// CalculateLevel derives the level from a total XP count: one level per 100
// XP, never below 1.
func CalculateLevel(totalXP int) int {
	level := totalXP / XPPerLevel
	if level < 1 {
		return 1
	}
	return level
}

// ProgressionService updates a user's XP, level, streak and badges after a
// rewarding action. The three steps always run in the same order because
// badge evaluation reads the freshly updated totals. There is no rollback:
// a failure mid-sequence leaves the earlier steps committed.
type ProgressionService struct {
	repo UserRepository
	now  func() time.Time
}

func NewProgressionService(repo UserRepository) *ProgressionService {
	return &ProgressionService{
		repo: repo,
		now:  time.Now,
	}
}

// AwardXP adds the amount to the user's total through an atomic
// increment-and-fetch, then stores the level derived from the new total.
func (s *ProgressionService) AwardXP(ctx context.Context, userID string, amount int) error {
	total, err := s.repo.AddXP(ctx, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to award xp: %w", err)
	}

	if err := s.repo.SetLevel(ctx, userID, CalculateLevel(total)); err != nil {
		return fmt.Errorf("failed to update level: %w", err)
	}
	return nil
}

// UpdateStreak advances the daily streak. A repeat action on the same UTC
// calendar day performs no mutation at all; in every other case the streak is
// recomputed, longest_streak keeps its maximum, and last_activity_date is
// stamped with the current moment.
func (s *ProgressionService) UpdateStreak(ctx context.Context, userID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user for streak update: %w", err)
	}

	now := s.now().UTC()

	newStreak := 1
	if user.LastActivityDate != nil {
		last := user.LastActivityDate.UTC()
		switch {
		case sameCalendarDay(last, now):
			return nil
		case sameCalendarDay(last, now.AddDate(0, 0, -1)):
			newStreak = user.CurrentStreak + 1
		}
	}

	longest := user.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	if err := s.repo.UpdateStreak(ctx, userID, newStreak, longest, now); err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	return nil
}

// CheckAndAwardBadges appends every catalog badge the user now qualifies for
// and does not already hold. Re-running with unchanged stats awards nothing.
func (s *ProgressionService) CheckAndAwardBadges(ctx context.Context, userID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user for badge check: %w", err)
	}

	owned := make(map[string]struct{}, len(user.Badges))
	for _, name := range user.Badges {
		owned[name] = struct{}{}
	}

	var newBadges []string
	for _, badge := range catalog.Badges() {
		if _, ok := owned[badge.Name]; ok {
			continue
		}
		if badgeQualifies(badge, user) {
			newBadges = append(newBadges, badge.Name)
		}
	}

	if len(newBadges) == 0 {
		return nil
	}

	if err := s.repo.AddBadges(ctx, userID, newBadges); err != nil {
		return fmt.Errorf("failed to award badges: %w", err)
	}
	return nil
}

// ApplyReward runs the full sequence: XP, then (for streak-counting actions)
// the daily streak, then badge evaluation.
func (s *ProgressionService) ApplyReward(ctx context.Context, userID string, xp int, withStreak bool) error {
	if err := s.AwardXP(ctx, userID, xp); err != nil {
		return err
	}
	if withStreak {
		if err := s.UpdateStreak(ctx, userID); err != nil {
			return err
		}
	}
	return s.CheckAndAwardBadges(ctx, userID)
}

func badgeQualifies(badge model.Badge, user *model.User) bool {
	switch badge.CriteriaType {
	case model.BadgeCriteriaXP:
		return user.TotalXP >= badge.CriteriaValue
	case model.BadgeCriteriaStreak:
		return user.LongestStreak >= badge.CriteriaValue
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
