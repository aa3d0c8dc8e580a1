package api

import (
	"errors"
	"net/http"

	"levelup_daily/internal/middleware"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type sideQuestRoutes struct {
	ss service.SideQuestServiceI
}

// NewSideQuestRoutes wires the side-quest endpoints. Retrieval is public;
// completion requires a user to credit.
func NewSideQuestRoutes(handler *gin.RouterGroup, ss service.SideQuestServiceI, a *middleware.Authorization) {
	r := &sideQuestRoutes{ss: ss}
	h := handler.Group("/side-quests")
	{
		h.GET("/daily", r.GetDailySideQuest)
		h.POST("/complete", a.RequireUser(), r.CompleteSideQuest)
	}
}

func (r *sideQuestRoutes) GetDailySideQuest(c *gin.Context) {
	log := logger.Logger()

	quest, err := r.ss.Daily(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSideQuests) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no side quest available"})
			return
		}
		log.Error("failed to get daily side quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get side quest"})
		return
	}

	c.JSON(http.StatusOK, sideQuestJSON(quest))
}

func (r *sideQuestRoutes) CompleteSideQuest(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	quest, err := r.ss.Complete(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoSideQuests) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no side quest available"})
			return
		}
		log.Error("failed to complete side quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete side quest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Side quest completed!",
		"xp_gained": quest.XPReward,
	})
}
