package api

import (
	"errors"
	"net/http"

	"levelup_daily/internal/middleware"
	"levelup_daily/internal/model"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type powerUpRoutes struct {
	ps service.PowerUpServiceI
}

func NewPowerUpRoutes(handler *gin.RouterGroup, ps service.PowerUpServiceI, a *middleware.Authorization) {
	r := &powerUpRoutes{ps: ps}
	h := handler.Group("/power-ups")
	h.Use(a.RequireUser())
	{
		h.GET("", r.ListPowerUps)
		h.POST("", r.CreatePowerUp)
		h.POST("/:id/log", r.LogPowerUp)
	}
}

type CreatePowerUpRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func powerUpJSON(powerUp *model.PowerUp) gin.H {
	return gin.H{
		"id":          powerUp.ID,
		"user_id":     powerUp.UserID,
		"title":       powerUp.Title,
		"description": powerUp.Description,
		"xp_reward":   powerUp.XPReward,
		"created_at":  powerUp.CreatedAt,
	}
}

func (r *powerUpRoutes) ListPowerUps(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	powerUps, err := r.ps.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to list power-ups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list power-ups"})
		return
	}

	response := make([]gin.H, 0, len(powerUps))
	for _, powerUp := range powerUps {
		response = append(response, powerUpJSON(powerUp))
	}

	c.JSON(http.StatusOK, response)
}

func (r *powerUpRoutes) CreatePowerUp(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req CreatePowerUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	powerUp, err := r.ps.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		log.Error("failed to create power-up", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create power-up"})
		return
	}

	c.JSON(http.StatusOK, powerUpJSON(powerUp))
}

func (r *powerUpRoutes) LogPowerUp(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	xpGained, err := r.ps.Log(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "power-up not found"})
			return
		}
		log.Error("failed to log power-up", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log power-up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Power-up logged!",
		"xp_gained": xpGained,
	})
}
