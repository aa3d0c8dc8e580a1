// Package mocks provides testify mocks for the repository and progression
// interfaces consumed by the service layer.
package mocks

import (
	"context"
	"time"

	"levelup_daily/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) AddXP(ctx context.Context, id string, amount int) (int, error) {
	args := m.Called(ctx, id, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SetLevel(ctx context.Context, id string, level int) error {
	args := m.Called(ctx, id, level)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStreak(ctx context.Context, id string, current, longest int, lastActivity time.Time) error {
	args := m.Called(ctx, id, current, longest, lastActivity)
	return args.Error(0)
}

func (m *MockUserRepository) AddBadges(ctx context.Context, id string, names []string) error {
	args := m.Called(ctx, id, names)
	return args.Error(0)
}

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) CreateQuest(ctx context.Context, quest *model.Quest) error {
	args := m.Called(ctx, quest)
	return args.Error(0)
}

func (m *MockQuestRepository) GetQuestsByUser(ctx context.Context, userID string) ([]*model.Quest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quest), args.Error(1)
}

func (m *MockQuestRepository) GetQuestByID(ctx context.Context, id, userID string) (*model.Quest, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quest), args.Error(1)
}

func (m *MockQuestRepository) MarkQuestDone(ctx context.Context, id, userID string, completedAt time.Time) error {
	args := m.Called(ctx, id, userID, completedAt)
	return args.Error(0)
}

func (m *MockQuestRepository) DeleteQuest(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockQuestRepository) CountQuestsCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestRepository) CountQuestsCompletedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

type MockPowerUpRepository struct {
	mock.Mock
}

func (m *MockPowerUpRepository) CreatePowerUp(ctx context.Context, powerUp *model.PowerUp) error {
	args := m.Called(ctx, powerUp)
	return args.Error(0)
}

func (m *MockPowerUpRepository) GetPowerUpsByUser(ctx context.Context, userID string) ([]*model.PowerUp, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PowerUp), args.Error(1)
}

func (m *MockPowerUpRepository) GetPowerUpByID(ctx context.Context, id, userID string) (*model.PowerUp, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PowerUp), args.Error(1)
}

func (m *MockPowerUpRepository) CreatePowerUpLog(ctx context.Context, log *model.PowerUpLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type MockBadGuyRepository struct {
	mock.Mock
}

func (m *MockBadGuyRepository) CreateBadGuy(ctx context.Context, badGuy *model.BadGuy) error {
	args := m.Called(ctx, badGuy)
	return args.Error(0)
}

func (m *MockBadGuyRepository) GetBadGuysByUser(ctx context.Context, userID string) ([]*model.BadGuy, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.BadGuy), args.Error(1)
}

func (m *MockBadGuyRepository) GetBadGuyByID(ctx context.Context, id, userID string) (*model.BadGuy, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BadGuy), args.Error(1)
}

func (m *MockBadGuyRepository) UpdateBadGuyHP(ctx context.Context, id string, hp int) error {
	args := m.Called(ctx, id, hp)
	return args.Error(0)
}

func (m *MockBadGuyRepository) CreateDefeatLog(ctx context.Context, defeat *model.BadGuyDefeat) error {
	args := m.Called(ctx, defeat)
	return args.Error(0)
}

type MockSideQuestRepository struct {
	mock.Mock
}

func (m *MockSideQuestRepository) CountSideQuests(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSideQuestRepository) InsertSideQuests(ctx context.Context, quests []model.SideQuest) error {
	args := m.Called(ctx, quests)
	return args.Error(0)
}

func (m *MockSideQuestRepository) GetAllSideQuests(ctx context.Context) ([]model.SideQuest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SideQuest), args.Error(1)
}

type MockProgression struct {
	mock.Mock
}

func (m *MockProgression) AwardXP(ctx context.Context, userID string, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockProgression) UpdateStreak(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProgression) CheckAndAwardBadges(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProgression) ApplyReward(ctx context.Context, userID string, xp int, withStreak bool) error {
	args := m.Called(ctx, userID, xp, withStreak)
	return args.Error(0)
}
