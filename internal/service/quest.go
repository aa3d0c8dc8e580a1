package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup_daily/internal/model"
	"levelup_daily/internal/repository"

	"github.com/google/uuid"
)

// XP rewards are fixed per quest type at creation time and never recomputed.
var questTypeRewards = map[model.QuestType]int{
	model.QuestTypeDaily:  10,
	model.QuestTypeWeekly: 25,
	model.QuestTypeEpic:   50,
}

// QuestXPReward returns the reward a quest of the given type is created with.
func QuestXPReward(questType model.QuestType) int {
	if reward, ok := questTypeRewards[questType]; ok {
		return reward
	}
	return questTypeRewards[model.QuestTypeDaily]
}

type QuestService struct {
	repo        QuestRepository
	progression ProgressionI
	now         func() time.Time
}

func NewQuestService(repo QuestRepository, progression ProgressionI) *QuestService {
	return &QuestService{
		repo:        repo,
		progression: progression,
		now:         time.Now,
	}
}

func (s *QuestService) List(ctx context.Context, userID string) ([]*model.Quest, error) {
	quests, err := s.repo.GetQuestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	return quests, nil
}

func (s *QuestService) Create(ctx context.Context, userID string, title, description string,
	questType model.QuestType, deadline *time.Time) (*model.Quest, error) {

	quest := &model.Quest{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		QuestType:   questType,
		Status:      model.QuestStatusToDo,
		XPReward:    QuestXPReward(questType),
		Deadline:    deadline,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.CreateQuest(ctx, quest); err != nil {
		return nil, fmt.Errorf("failed to create quest: %w", err)
	}
	return quest, nil
}

// Complete transitions a quest to Done exactly once and runs the full reward
// sequence. Returns the XP credited.
func (s *QuestService) Complete(ctx context.Context, userID, questID string) (int, error) {
	quest, err := s.repo.GetQuestByID(ctx, questID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get quest: %w", err)
	}

	if quest.Status == model.QuestStatusDone {
		return 0, ErrQuestAlreadyCompleted
	}

	if err := s.repo.MarkQuestDone(ctx, questID, userID, s.now().UTC()); err != nil {
		if errors.Is(err, repository.ErrQuestCompleted) {
			return 0, ErrQuestAlreadyCompleted
		}
		return 0, fmt.Errorf("failed to complete quest: %w", err)
	}

	if err := s.progression.ApplyReward(ctx, userID, quest.XPReward, true); err != nil {
		return 0, err
	}
	return quest.XPReward, nil
}

func (s *QuestService) Delete(ctx context.Context, userID, questID string) error {
	err := s.repo.DeleteQuest(ctx, questID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	return nil
}
