package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"levelup_daily/internal/catalog"
	"levelup_daily/internal/model"
	"levelup_daily/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const recentBadgeLimit = 5

type UserService struct {
	users      UserRepository
	quests     QuestRepository
	sideQuests SideQuestRepository
	now        func() time.Time
}

func NewUserService(users UserRepository, quests QuestRepository, sideQuests SideQuestRepository) *UserService {
	return &UserService{
		users:      users,
		quests:     quests,
		sideQuests: sideQuests,
		now:        time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:            uuid.NewString(),
		Email:         email,
		Username:      username,
		PasswordHash:  string(hash),
		TotalXP:       0,
		Level:         1,
		CurrentStreak: 0,
		LongestStreak: 0,
		Badges:        []string{},
		CreatedAt:     s.now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetDashboard gathers the user's stats, today's quest counts and a freshly
// sampled side quest into one view.
func (s *UserService) GetDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	questsToday, err := s.quests.CountQuestsCreatedSince(ctx, userID, midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's quests: %w", err)
	}

	completedToday, err := s.quests.CountQuestsCompletedSince(ctx, userID, midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's completed quests: %w", err)
	}

	dashboard := &model.Dashboard{
		User:                 user,
		QuestsToday:          questsToday,
		QuestsCompletedToday: completedToday,
		RecentBadges:         recentBadges(user.Badges),
	}

	sideQuests, err := s.sideQuests.GetAllSideQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get side quests: %w", err)
	}
	if len(sideQuests) > 0 {
		pick := sideQuests[rand.Intn(len(sideQuests))]
		dashboard.DailySideQuest = &pick
	}

	return dashboard, nil
}

// recentBadges resolves the newest badge names (the list is append-only, so
// newest last) against the catalog, newest first.
func recentBadges(names []string) []model.Badge {
	badges := make([]model.Badge, 0, recentBadgeLimit)
	for i := len(names) - 1; i >= 0 && len(badges) < recentBadgeLimit; i-- {
		if badge, ok := catalog.BadgeByName(names[i]); ok {
			badges = append(badges, badge)
		}
	}
	return badges
}
