package service

import (
	"context"
	"testing"
	"time"

	"levelup_daily/internal/model"
	"levelup_daily/internal/repository"
	"levelup_daily/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuestXPReward(t *testing.T) {
	assert.Equal(t, 10, QuestXPReward(model.QuestTypeDaily))
	assert.Equal(t, 25, QuestXPReward(model.QuestTypeWeekly))
	assert.Equal(t, 50, QuestXPReward(model.QuestTypeEpic))
}

func TestQuestService_Create(t *testing.T) {
	mockRepo := &mocks.MockQuestRepository{}
	mockProgression := &mocks.MockProgression{}
	service := NewQuestService(mockRepo, mockProgression)

	mockRepo.On("CreateQuest", mock.Anything, mock.MatchedBy(func(quest *model.Quest) bool {
		return quest.ID != "" &&
			quest.UserID == "u1" &&
			quest.Status == model.QuestStatusToDo &&
			quest.XPReward == 50
	})).Return(nil)

	quest, err := service.Create(context.Background(), "u1", "Finish the marathon", "", model.QuestTypeEpic, nil)
	assert.NoError(t, err)
	assert.NotNil(t, quest)
	assert.Equal(t, model.QuestTypeEpic, quest.QuestType)
	assert.Equal(t, 50, quest.XPReward)
	assert.Nil(t, quest.CompletedAt)

	mockRepo.AssertExpectations(t)
}

func TestQuestService_Complete(t *testing.T) {
	tests := []struct {
		name          string
		questID       string
		mockSetup     func(mockRepo *mocks.MockQuestRepository, mockProgression *mocks.MockProgression)
		expectedXP    int
		expectedError error
	}{
		{
			name:    "Completion credits the fixed reward through the full sequence",
			questID: "q1",
			mockSetup: func(mockRepo *mocks.MockQuestRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("GetQuestByID", mock.Anything, "q1", "u1").
					Return(&model.Quest{
						ID:       "q1",
						UserID:   "u1",
						Status:   model.QuestStatusToDo,
						XPReward: 10,
					}, nil)
				mockRepo.On("MarkQuestDone", mock.Anything, "q1", "u1", mock.AnythingOfType("time.Time")).
					Return(nil)
				mockProgression.On("ApplyReward", mock.Anything, "u1", 10, true).Return(nil)
			},
			expectedXP: 10,
		},
		{
			name:    "Unknown quest",
			questID: "missing",
			mockSetup: func(mockRepo *mocks.MockQuestRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("GetQuestByID", mock.Anything, "missing", "u1").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrNotFound,
		},
		{
			name:    "Already completed quest is rejected without a reward",
			questID: "q2",
			mockSetup: func(mockRepo *mocks.MockQuestRepository, mockProgression *mocks.MockProgression) {
				completedAt := time.Now().UTC()
				mockRepo.On("GetQuestByID", mock.Anything, "q2", "u1").
					Return(&model.Quest{
						ID:          "q2",
						UserID:      "u1",
						Status:      model.QuestStatusDone,
						XPReward:    25,
						CompletedAt: &completedAt,
					}, nil)
			},
			expectedError: ErrQuestAlreadyCompleted,
		},
		{
			name:    "Racing completion loses the conditional update",
			questID: "q3",
			mockSetup: func(mockRepo *mocks.MockQuestRepository, mockProgression *mocks.MockProgression) {
				mockRepo.On("GetQuestByID", mock.Anything, "q3", "u1").
					Return(&model.Quest{
						ID:       "q3",
						UserID:   "u1",
						Status:   model.QuestStatusToDo,
						XPReward: 10,
					}, nil)
				mockRepo.On("MarkQuestDone", mock.Anything, "q3", "u1", mock.AnythingOfType("time.Time")).
					Return(repository.ErrQuestCompleted)
			},
			expectedError: ErrQuestAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockQuestRepository{}
			mockProgression := &mocks.MockProgression{}
			service := NewQuestService(mockRepo, mockProgression)

			tt.mockSetup(mockRepo, mockProgression)

			xp, err := service.Complete(context.Background(), "u1", tt.questID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockProgression.AssertNotCalled(t, "ApplyReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedXP, xp)
			}

			mockRepo.AssertExpectations(t)
			mockProgression.AssertExpectations(t)
		})
	}
}

func TestQuestService_Delete(t *testing.T) {
	mockRepo := &mocks.MockQuestRepository{}
	mockProgression := &mocks.MockProgression{}
	service := NewQuestService(mockRepo, mockProgression)

	mockRepo.On("DeleteQuest", mock.Anything, "q1", "u1").Return(nil)
	mockRepo.On("DeleteQuest", mock.Anything, "missing", "u1").Return(repository.ErrNotFound)

	assert.NoError(t, service.Delete(context.Background(), "u1", "q1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "u1", "missing"), ErrNotFound)

	mockRepo.AssertExpectations(t)
}
