package service

import (
	"context"
	"testing"
	"time"

	"levelup_daily/internal/model"
	"levelup_daily/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		level   int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 1},
		{199, 1},
		{200, 2},
		{250, 2},
		{1000, 10},
		{12345, 123},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, CalculateLevel(tt.totalXP), "total_xp=%d", tt.totalXP)
	}
}

func TestProgressionService_AwardXP(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	service := NewProgressionService(mockRepo)

	mockRepo.On("AddXP", mock.Anything, "u1", 25).Return(95, nil)
	mockRepo.On("SetLevel", mock.Anything, "u1", 1).Return(nil)

	err := service.AwardXP(context.Background(), "u1", 25)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProgressionService_AwardXP_LevelUp(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	service := NewProgressionService(mockRepo)

	mockRepo.On("AddXP", mock.Anything, "u1", 10).Return(200, nil)
	mockRepo.On("SetLevel", mock.Anything, "u1", 2).Return(nil)

	err := service.AwardXP(context.Background(), "u1", 10)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProgressionService_UpdateStreak(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)
	earlierToday := now.Add(-6 * time.Hour)

	tests := []struct {
		name      string
		user      *model.User
		mockSetup func(mockRepo *mocks.MockUserRepository)
	}{
		{
			name: "First ever activity starts streak at 1",
			user: &model.User{ID: "u1", CurrentStreak: 0, LongestStreak: 0},
			mockSetup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.On("UpdateStreak", mock.Anything, "u1", 1, 1, now).Return(nil)
			},
		},
		{
			name: "Same-day repeat performs no mutation",
			user: &model.User{ID: "u1", CurrentStreak: 4, LongestStreak: 6, LastActivityDate: &earlierToday},
			mockSetup: func(mockRepo *mocks.MockUserRepository) {
				// No UpdateStreak call expected.
			},
		},
		{
			name: "Next-day activity increments the streak",
			user: &model.User{ID: "u1", CurrentStreak: 4, LongestStreak: 6, LastActivityDate: &yesterday},
			mockSetup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.On("UpdateStreak", mock.Anything, "u1", 5, 6, now).Return(nil)
			},
		},
		{
			name: "Next-day activity can set a new longest streak",
			user: &model.User{ID: "u1", CurrentStreak: 6, LongestStreak: 6, LastActivityDate: &yesterday},
			mockSetup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.On("UpdateStreak", mock.Anything, "u1", 7, 7, now).Return(nil)
			},
		},
		{
			name: "Gap of two or more days resets to 1, longest kept",
			user: &model.User{ID: "u1", CurrentStreak: 9, LongestStreak: 9, LastActivityDate: &threeDaysAgo},
			mockSetup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.On("UpdateStreak", mock.Anything, "u1", 1, 9, now).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockUserRepository{}
			service := NewProgressionService(mockRepo)
			service.now = func() time.Time { return now }

			mockRepo.On("GetUserByID", mock.Anything, "u1").Return(tt.user, nil)
			tt.mockSetup(mockRepo)

			err := service.UpdateStreak(context.Background(), "u1")
			assert.NoError(t, err)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProgressionService_CheckAndAwardBadges(t *testing.T) {
	tests := []struct {
		name           string
		user           *model.User
		expectedBadges []string
	}{
		{
			name:           "No thresholds crossed awards nothing",
			user:           &model.User{ID: "u1", TotalXP: 5, LongestStreak: 0, Badges: []string{}},
			expectedBadges: nil,
		},
		{
			name:           "First XP threshold",
			user:           &model.User{ID: "u1", TotalXP: 10, LongestStreak: 0, Badges: []string{}},
			expectedBadges: []string{"First Steps"},
		},
		{
			name:           "Multiple thresholds crossed at once",
			user:           &model.User{ID: "u1", TotalXP: 150, LongestStreak: 3, Badges: []string{}},
			expectedBadges: []string{"First Steps", "Rising Star", "Streak Starter"},
		},
		{
			name: "Already-held badges are never re-awarded",
			user: &model.User{ID: "u1", TotalXP: 150, LongestStreak: 3,
				Badges: []string{"First Steps", "Rising Star", "Streak Starter"}},
			expectedBadges: nil,
		},
		{
			name: "Streak badges read longest streak, not current",
			user: &model.User{ID: "u1", TotalXP: 0, CurrentStreak: 1, LongestStreak: 7,
				Badges: []string{"Streak Starter"}},
			expectedBadges: []string{"Consistency King"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockUserRepository{}
			service := NewProgressionService(mockRepo)

			mockRepo.On("GetUserByID", mock.Anything, "u1").Return(tt.user, nil)
			if tt.expectedBadges != nil {
				mockRepo.On("AddBadges", mock.Anything, "u1", tt.expectedBadges).Return(nil)
			}

			err := service.CheckAndAwardBadges(context.Background(), "u1")
			assert.NoError(t, err)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProgressionService_ApplyReward_Sequence(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	mockRepo := &mocks.MockUserRepository{}
	service := NewProgressionService(mockRepo)
	service.now = func() time.Time { return now }

	user := &model.User{ID: "u1", TotalXP: 0, CurrentStreak: 0, LongestStreak: 0, Badges: []string{}}

	mockRepo.On("AddXP", mock.Anything, "u1", 10).Return(10, nil).
		Run(func(args mock.Arguments) { user.TotalXP = 10 })
	mockRepo.On("SetLevel", mock.Anything, "u1", 1).Return(nil)
	mockRepo.On("GetUserByID", mock.Anything, "u1").Return(user, nil)
	mockRepo.On("UpdateStreak", mock.Anything, "u1", 1, 1, now).Return(nil).
		Run(func(args mock.Arguments) {
			user.CurrentStreak = 1
			user.LongestStreak = 1
			user.LastActivityDate = &now
		})
	mockRepo.On("AddBadges", mock.Anything, "u1", []string{"First Steps"}).Return(nil)

	err := service.ApplyReward(context.Background(), "u1", 10, true)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}
