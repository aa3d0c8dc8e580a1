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

const (
	// DefaultBadGuyMaxHP is used when a bad guy is created without hit points.
	DefaultBadGuyMaxHP = 100
	// DefaultBadGuyXP is the reward credited on every damage application.
	DefaultBadGuyXP = 15
)

type DefeatResult struct {
	XPGained    int
	RemainingHP int
	Defeated    bool
}

type BadGuyService struct {
	repo        BadGuyRepository
	progression ProgressionI
	now         func() time.Time
}

func NewBadGuyService(repo BadGuyRepository, progression ProgressionI) *BadGuyService {
	return &BadGuyService{
		repo:        repo,
		progression: progression,
		now:         time.Now,
	}
}

func (s *BadGuyService) List(ctx context.Context, userID string) ([]*model.BadGuy, error) {
	badGuys, err := s.repo.GetBadGuysByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bad guys: %w", err)
	}
	return badGuys, nil
}

func (s *BadGuyService) Create(ctx context.Context, userID, title, description string, maxHP int) (*model.BadGuy, error) {
	if maxHP <= 0 {
		maxHP = DefaultBadGuyMaxHP
	}

	badGuy := &model.BadGuy{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Description:    description,
		MaxHP:          maxHP,
		CurrentHP:      maxHP,
		DefeatXPReward: DefaultBadGuyXP,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.CreateBadGuy(ctx, badGuy); err != nil {
		return nil, fmt.Errorf("failed to create bad guy: %w", err)
	}
	return badGuy, nil
}

// Defeat applies one blow. Damage is logged and XP credited whether or not
// the blow was lethal; hitting zero HP respawns the bad guy at full health in
// the same request.
func (s *BadGuyService) Defeat(ctx context.Context, userID, badGuyID string, damage int) (*DefeatResult, error) {
	badGuy, err := s.repo.GetBadGuyByID(ctx, badGuyID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bad guy: %w", err)
	}

	newHP := badGuy.CurrentHP - damage
	if newHP < 0 {
		newHP = 0
	}

	defeat := &model.BadGuyDefeat{
		ID:          uuid.NewString(),
		UserID:      userID,
		BadGuyID:    badGuyID,
		DamageDealt: damage,
		LoggedAt:    s.now().UTC(),
	}
	if err := s.repo.CreateDefeatLog(ctx, defeat); err != nil {
		return nil, fmt.Errorf("failed to log defeat: %w", err)
	}

	if err := s.repo.UpdateBadGuyHP(ctx, badGuyID, newHP); err != nil {
		return nil, fmt.Errorf("failed to update hp: %w", err)
	}

	if err := s.progression.ApplyReward(ctx, userID, badGuy.DefeatXPReward, false); err != nil {
		return nil, err
	}

	result := &DefeatResult{
		XPGained:    badGuy.DefeatXPReward,
		RemainingHP: newHP,
	}

	if newHP == 0 {
		if err := s.repo.UpdateBadGuyHP(ctx, badGuyID, badGuy.MaxHP); err != nil {
			return nil, fmt.Errorf("failed to respawn bad guy: %w", err)
		}
		result.Defeated = true
		result.RemainingHP = badGuy.MaxHP
	}

	return result, nil
}
