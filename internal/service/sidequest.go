package service

import (
	"context"
	"fmt"
	"math/rand"

	"levelup_daily/internal/catalog"
	"levelup_daily/internal/model"

	"github.com/google/uuid"
)

type SideQuestService struct {
	repo        SideQuestRepository
	progression ProgressionI
}

func NewSideQuestService(repo SideQuestRepository, progression ProgressionI) *SideQuestService {
	return &SideQuestService{
		repo:        repo,
		progression: progression,
	}
}

// Seed inserts the default catalog on first start. A non-empty collection is
// left untouched.
func (s *SideQuestService) Seed(ctx context.Context) error {
	count, err := s.repo.CountSideQuests(ctx)
	if err != nil {
		return fmt.Errorf("failed to count side quests: %w", err)
	}
	if count > 0 {
		return nil
	}

	quests := catalog.SideQuestSeed()
	for i := range quests {
		quests[i].ID = uuid.NewString()
	}

	if err := s.repo.InsertSideQuests(ctx, quests); err != nil {
		return fmt.Errorf("failed to seed side quests: %w", err)
	}
	return nil
}

// Daily returns a uniformly random side quest, sampled fresh on every call.
func (s *SideQuestService) Daily(ctx context.Context) (*model.SideQuest, error) {
	quests, err := s.repo.GetAllSideQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get side quests: %w", err)
	}
	if len(quests) == 0 {
		return nil, ErrNoSideQuests
	}

	pick := quests[rand.Intn(len(quests))]
	return &pick, nil
}

// Complete credits the XP of a freshly sampled side quest. Side quests carry
// no per-user state; only the user's progression changes.
func (s *SideQuestService) Complete(ctx context.Context, userID string) (*model.SideQuest, error) {
	quest, err := s.Daily(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.progression.ApplyReward(ctx, userID, quest.XPReward, false); err != nil {
		return nil, err
	}
	return quest, nil
}
