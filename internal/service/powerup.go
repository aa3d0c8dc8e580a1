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

// DefaultPowerUpXP is the reward a power-up template is created with.
const DefaultPowerUpXP = 5

type PowerUpService struct {
	repo        PowerUpRepository
	progression ProgressionI
	now         func() time.Time
}

func NewPowerUpService(repo PowerUpRepository, progression ProgressionI) *PowerUpService {
	return &PowerUpService{
		repo:        repo,
		progression: progression,
		now:         time.Now,
	}
}

func (s *PowerUpService) List(ctx context.Context, userID string) ([]*model.PowerUp, error) {
	powerUps, err := s.repo.GetPowerUpsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list power-ups: %w", err)
	}
	return powerUps, nil
}

func (s *PowerUpService) Create(ctx context.Context, userID, title, description string) (*model.PowerUp, error) {
	powerUp := &model.PowerUp{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		XPReward:    DefaultPowerUpXP,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.CreatePowerUp(ctx, powerUp); err != nil {
		return nil, fmt.Errorf("failed to create power-up: %w", err)
	}
	return powerUp, nil
}

// Log records one use of the power-up and credits its XP reward. Returns the
// XP credited.
func (s *PowerUpService) Log(ctx context.Context, userID, powerUpID string) (int, error) {
	powerUp, err := s.repo.GetPowerUpByID(ctx, powerUpID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get power-up: %w", err)
	}

	entry := &model.PowerUpLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		PowerUpID: powerUpID,
		LoggedAt:  s.now().UTC(),
	}
	if err := s.repo.CreatePowerUpLog(ctx, entry); err != nil {
		return 0, fmt.Errorf("failed to log power-up: %w", err)
	}

	if err := s.progression.ApplyReward(ctx, userID, powerUp.XPReward, false); err != nil {
		return 0, err
	}
	return powerUp.XPReward, nil
}
