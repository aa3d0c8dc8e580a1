package service

import (
	"context"
	"testing"

	"levelup_daily/internal/model"
	"levelup_daily/internal/repository"
	"levelup_daily/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPowerUpService_Create(t *testing.T) {
	mockRepo := &mocks.MockPowerUpRepository{}
	service := NewPowerUpService(mockRepo, &mocks.MockProgression{})

	mockRepo.On("CreatePowerUp", mock.Anything, mock.MatchedBy(func(powerUp *model.PowerUp) bool {
		return powerUp.UserID == "u1" && powerUp.XPReward == DefaultPowerUpXP
	})).Return(nil)

	powerUp, err := service.Create(context.Background(), "u1", "Morning run", "")
	assert.NoError(t, err)
	assert.Equal(t, DefaultPowerUpXP, powerUp.XPReward)

	mockRepo.AssertExpectations(t)
}

func TestPowerUpService_Log(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mockRepo *mocks.MockPowerUpRepository, mockProgression *mocks.MockProgression)
		expectedXP    int
		expectedError error
	}{
		{
			name: "Logging appends history and credits XP without a streak update",
			mockSetup: func(mockRepo *mocks.MockPowerUpRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("GetPowerUpByID", mock.Anything, "p1", "u1").
					Return(&model.PowerUp{ID: "p1", UserID: "u1", XPReward: 5}, nil)
				mockRepo.On("CreatePowerUpLog", mock.Anything, mock.MatchedBy(func(entry *model.PowerUpLog) bool {
					return entry.UserID == "u1" && entry.PowerUpID == "p1" && entry.ID != ""
				})).Return(nil)
				mockProgression.On("ApplyReward", mock.Anything, "u1", 5, false).Return(nil)
			},
			expectedXP: 5,
		},
		{
			name: "Unknown power-up",
			mockSetup: func(mockRepo *mocks.MockPowerUpRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("GetPowerUpByID", mock.Anything, "p1", "u1").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockPowerUpRepository{}
			mockProgression := &mocks.MockProgression{}
			service := NewPowerUpService(mockRepo, mockProgression)

			tt.mockSetup(mockRepo, mockProgression)

			xp, err := service.Log(context.Background(), "u1", "p1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedXP, xp)
			}

			mockRepo.AssertExpectations(t)
			mockProgression.AssertExpectations(t)
		})
	}
}
