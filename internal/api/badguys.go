package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"levelup_daily/internal/middleware"
	"levelup_daily/internal/model"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// DefaultDamage is dealt when the caller does not say how hard they hit.
const DefaultDamage = 10

type badGuyRoutes struct {
	bs service.BadGuyServiceI
}

func NewBadGuyRoutes(handler *gin.RouterGroup, bs service.BadGuyServiceI, a *middleware.Authorization) {
	r := &badGuyRoutes{bs: bs}
	h := handler.Group("/bad-guys")
	h.Use(a.RequireUser())
	{
		h.GET("", r.ListBadGuys)
		h.POST("", r.CreateBadGuy)
		h.POST("/:id/defeat", r.DefeatBadGuy)
	}
}

type CreateBadGuyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	MaxHP       int    `json:"max_hp"`
}

func badGuyJSON(badGuy *model.BadGuy) gin.H {
	return gin.H{
		"id":               badGuy.ID,
		"user_id":          badGuy.UserID,
		"title":            badGuy.Title,
		"description":      badGuy.Description,
		"max_hp":           badGuy.MaxHP,
		"current_hp":       badGuy.CurrentHP,
		"defeat_xp_reward": badGuy.DefeatXPReward,
		"created_at":       badGuy.CreatedAt,
	}
}

func (r *badGuyRoutes) ListBadGuys(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	badGuys, err := r.bs.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to list bad guys", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bad guys"})
		return
	}

	response := make([]gin.H, 0, len(badGuys))
	for _, badGuy := range badGuys {
		response = append(response, badGuyJSON(badGuy))
	}

	c.JSON(http.StatusOK, response)
}

func (r *badGuyRoutes) CreateBadGuy(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req CreateBadGuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	badGuy, err := r.bs.Create(c.Request.Context(), user.ID, req.Title, req.Description, req.MaxHP)
	if err != nil {
		log.Error("failed to create bad guy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create bad guy"})
		return
	}

	c.JSON(http.StatusOK, badGuyJSON(badGuy))
}

func (r *badGuyRoutes) DefeatBadGuy(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	damage := DefaultDamage
	if raw := c.Query("damage"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid damage"})
			return
		}
		damage = parsed
	}

	result, err := r.bs.Defeat(c.Request.Context(), user.ID, c.Param("id"), damage)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bad guy not found"})
			return
		}
		log.Error("failed to defeat bad guy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to defeat bad guy"})
		return
	}

	if result.Defeated {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Bad guy defeated! It has respawned.",
			"xp_gained": result.XPGained,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Dealt %d damage!", damage),
		"xp_gained":    result.XPGained,
		"remaining_hp": result.RemainingHP,
	})
}
