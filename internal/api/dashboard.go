package api

import (
	"net/http"

	"levelup_daily/internal/middleware"
	"levelup_daily/internal/model"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type dashboardRoutes struct {
	us service.UserServiceI
}

func NewDashboardRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *middleware.Authorization) {
	r := &dashboardRoutes{us: us}
	h := handler.Group("/dashboard")
	h.Use(a.RequireUser())
	{
		h.GET("", r.GetDashboard)
	}
}

func (r *dashboardRoutes) GetDashboard(c *gin.Context) {
	log := logger.Logger()

	user, ok := currentUser(c)
	if !ok {
		log.Error("current user not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	dashboard, err := r.us.GetDashboard(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":                 dashboard.User.ID,
			"email":              dashboard.User.Email,
			"username":           dashboard.User.Username,
			"total_xp":           dashboard.User.TotalXP,
			"level":              dashboard.User.Level,
			"current_streak":     dashboard.User.CurrentStreak,
			"longest_streak":     dashboard.User.LongestStreak,
			"last_activity_date": dashboard.User.LastActivityDate,
			"badges":             dashboard.User.Badges,
			"created_at":         dashboard.User.CreatedAt,
		},
		"quests_today":           dashboard.QuestsToday,
		"quests_completed_today": dashboard.QuestsCompletedToday,
		"daily_side_quest":       sideQuestJSON(dashboard.DailySideQuest),
		"recent_badges":          badgesJSON(dashboard.RecentBadges),
	})
}

func sideQuestJSON(quest *model.SideQuest) gin.H {
	if quest == nil {
		return nil
	}
	return gin.H{
		"id":          quest.ID,
		"title":       quest.Title,
		"description": quest.Description,
		"xp_reward":   quest.XPReward,
	}
}

func badgesJSON(badges []model.Badge) []gin.H {
	out := make([]gin.H, 0, len(badges))
	for _, b := range badges {
		out = append(out, gin.H{
			"name":           b.Name,
			"description":    b.Description,
			"icon":           b.Icon,
			"criteria_type":  b.CriteriaType,
			"criteria_value": b.CriteriaValue,
		})
	}
	return out
}
