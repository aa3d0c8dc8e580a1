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

func TestBadGuyService_Create_DefaultsHP(t *testing.T) {
	mockRepo := &mocks.MockBadGuyRepository{}
	mockProgression := &mocks.MockProgression{}
	service := NewBadGuyService(mockRepo, mockProgression)

	mockRepo.On("CreateBadGuy", mock.Anything, mock.MatchedBy(func(badGuy *model.BadGuy) bool {
		return badGuy.MaxHP == DefaultBadGuyMaxHP &&
			badGuy.CurrentHP == DefaultBadGuyMaxHP &&
			badGuy.DefeatXPReward == DefaultBadGuyXP
	})).Return(nil)

	badGuy, err := service.Create(context.Background(), "u1", "Procrastination", "", 0)
	assert.NoError(t, err)
	assert.Equal(t, DefaultBadGuyMaxHP, badGuy.CurrentHP)

	mockRepo.AssertExpectations(t)
}

func TestBadGuyService_Defeat(t *testing.T) {
	tests := []struct {
		name           string
		damage         int
		badGuy         *model.BadGuy
		mockSetup      func(mockRepo *mocks.MockBadGuyRepository, mockProgression *mocks.MockProgression)
		expectedResult *DefeatResult
		expectedError  error
	}{
		{
			name:   "Non-lethal blow lowers HP and credits XP",
			damage: 10,
			badGuy: &model.BadGuy{ID: "b1", UserID: "u1", MaxHP: 100, CurrentHP: 50, DefeatXPReward: 15},
			mockSetup: func(mockRepo *mocks.MockBadGuyRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("UpdateBadGuyHP", mock.Anything, "b1", 40).Return(nil)
				mockProgression.On("ApplyReward", mock.Anything, "u1", 15, false).Return(nil)
			},
			expectedResult: &DefeatResult{XPGained: 15, RemainingHP: 40, Defeated: false},
		},
		{
			name:   "Exactly lethal blow respawns at full health",
			damage: 20,
			badGuy: &model.BadGuy{ID: "b1", UserID: "u1", MaxHP: 100, CurrentHP: 20, DefeatXPReward: 15},
			mockSetup: func(mockRepo *mocks.MockBadGuyRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("UpdateBadGuyHP", mock.Anything, "b1", 0).Return(nil).Once()
				mockProgression.On("ApplyReward", mock.Anything, "u1", 15, false).Return(nil)
				mockRepo.On("UpdateBadGuyHP", mock.Anything, "b1", 100).Return(nil).Once()
			},
			expectedResult: &DefeatResult{XPGained: 15, RemainingHP: 100, Defeated: true},
		},
		{
			name:   "Overkill damage is floored at zero before the respawn",
			damage: 25,
			badGuy: &model.BadGuy{ID: "b1", UserID: "u1", MaxHP: 20, CurrentHP: 20, DefeatXPReward: 15},
			mockSetup: func(mockRepo *mocks.MockBadGuyRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("UpdateBadGuyHP", mock.Anything, "b1", 0).Return(nil).Once()
				mockProgression.On("ApplyReward", mock.Anything, "u1", 15, false).Return(nil)
				mockRepo.On("UpdateBadGuyHP", mock.Anything, "b1", 20).Return(nil).Once()
			},
			expectedResult: &DefeatResult{XPGained: 15, RemainingHP: 20, Defeated: true},
		},
		{
			name:          "Unknown bad guy",
			damage:        10,
			badGuy:        nil,
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockBadGuyRepository{}
			mockProgression := &mocks.MockProgression{}
			service := NewBadGuyService(mockRepo, mockProgression)

			if tt.badGuy == nil {
				mockRepo.On("GetBadGuyByID", mock.Anything, "b1", "u1").
					Return(nil, repository.ErrNotFound)
			} else {
				mockRepo.On("GetBadGuyByID", mock.Anything, "b1", "u1").Return(tt.badGuy, nil)
				mockRepo.On("CreateDefeatLog", mock.Anything, mock.MatchedBy(func(defeat *model.BadGuyDefeat) bool {
					return defeat.UserID == "u1" &&
						defeat.BadGuyID == "b1" &&
						defeat.DamageDealt == tt.damage
				})).Return(nil)
			}
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo, mockProgression)
			}

			result, err := service.Defeat(context.Background(), "u1", "b1", tt.damage)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}

			mockRepo.AssertExpectations(t)
			mockProgression.AssertExpectations(t)
		})
	}
}
