package api

import (
	"errors"
	"net/http"
	"time"

	"levelup_daily/internal/middleware"
	"levelup_daily/internal/model"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type questRoutes struct {
	qs service.QuestServiceI
}

func NewQuestRoutes(handler *gin.RouterGroup, qs service.QuestServiceI, a *middleware.Authorization) {
	r := &questRoutes{qs: qs}
	h := handler.Group("/quests")
	h.Use(a.RequireUser())
	{
		h.GET("", r.ListQuests)
		h.POST("", r.CreateQuest)
		h.PUT("/:id/complete", r.CompleteQuest)
		h.DELETE("/:id", r.DeleteQuest)
	}
}

type CreateQuestRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	QuestType   string     `json:"quest_type" binding:"required"`
	Deadline    *time.Time `json:"deadline"`
}

func questJSON(quest *model.Quest) gin.H {
	return gin.H{
		"id":           quest.ID,
		"user_id":      quest.UserID,
		"title":        quest.Title,
		"description":  quest.Description,
		"quest_type":   quest.QuestType,
		"status":       quest.Status,
		"xp_reward":    quest.XPReward,
		"deadline":     quest.Deadline,
		"created_at":   quest.CreatedAt,
		"completed_at": quest.CompletedAt,
	}
}

func (r *questRoutes) ListQuests(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	quests, err := r.qs.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to list quests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quests"})
		return
	}

	response := make([]gin.H, 0, len(quests))
	for _, quest := range quests {
		response = append(response, questJSON(quest))
	}

	c.JSON(http.StatusOK, response)
}

func (r *questRoutes) CreateQuest(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req CreateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	questType := model.QuestType(req.QuestType)
	if !questType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quest_type"})
		return
	}

	quest, err := r.qs.Create(c.Request.Context(), user.ID, req.Title, req.Description, questType, req.Deadline)
	if err != nil {
		log.Error("failed to create quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quest"})
		return
	}

	c.JSON(http.StatusOK, questJSON(quest))
}

func (r *questRoutes) CompleteQuest(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	xpGained, err := r.qs.Complete(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
		case errors.Is(err, service.ErrQuestAlreadyCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quest already completed"})
		default:
			log.Error("failed to complete quest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete quest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Quest completed!",
		"xp_gained": xpGained,
	})
}

func (r *questRoutes) DeleteQuest(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	err := r.qs.Delete(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
			return
		}
		log.Error("failed to delete quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quest deleted"})
}
