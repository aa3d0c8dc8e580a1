package service

import (
	"context"
	"testing"

	"levelup_daily/internal/catalog"
	"levelup_daily/internal/model"
	"levelup_daily/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSideQuestService_Seed(t *testing.T) {
	t.Run("Empty catalog is seeded with ids assigned", func(t *testing.T) {
		mockRepo := &mocks.MockSideQuestRepository{}
		service := NewSideQuestService(mockRepo, &mocks.MockProgression{})

		mockRepo.On("CountSideQuests", mock.Anything).Return(0, nil)
		mockRepo.On("InsertSideQuests", mock.Anything, mock.MatchedBy(func(quests []model.SideQuest) bool {
			if len(quests) != len(catalog.SideQuestSeed()) {
				return false
			}
			for _, q := range quests {
				if q.ID == "" {
					return false
				}
			}
			return true
		})).Return(nil)

		assert.NoError(t, service.Seed(context.Background()))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-empty catalog is left untouched", func(t *testing.T) {
		mockRepo := &mocks.MockSideQuestRepository{}
		service := NewSideQuestService(mockRepo, &mocks.MockProgression{})

		mockRepo.On("CountSideQuests", mock.Anything).Return(8, nil)

		assert.NoError(t, service.Seed(context.Background()))
		mockRepo.AssertNotCalled(t, "InsertSideQuests", mock.Anything, mock.Anything)
	})
}

func TestSideQuestService_Daily_EmptyCatalog(t *testing.T) {
	mockRepo := &mocks.MockSideQuestRepository{}
	service := NewSideQuestService(mockRepo, &mocks.MockProgression{})

	mockRepo.On("GetAllSideQuests", mock.Anything).Return([]model.SideQuest{}, nil)

	_, err := service.Daily(context.Background())
	assert.ErrorIs(t, err, ErrNoSideQuests)
}

func TestSideQuestService_Complete(t *testing.T) {
	mockRepo := &mocks.MockSideQuestRepository{}
	mockProgression := &mocks.MockProgression{}
	service := NewSideQuestService(mockRepo, mockProgression)

	mockRepo.On("GetAllSideQuests", mock.Anything).Return([]model.SideQuest{
		{ID: "s1", Title: "Drink a Full Glass of Water", XPReward: 5},
	}, nil)
	mockProgression.On("ApplyReward", mock.Anything, "u1", 5, false).Return(nil)

	quest, err := service.Complete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, quest.XPReward)

	mockRepo.AssertExpectations(t)
	mockProgression.AssertExpectations(t)
}
