package api

import (
	"levelup_daily/internal/middleware"
	"levelup_daily/internal/model"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user the authorization middleware resolved for this
// request.
func currentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

func userSummary(user *model.User) gin.H {
	return gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"username":       user.Username,
		"total_xp":       user.TotalXP,
		"level":          user.Level,
		"current_streak": user.CurrentStreak,
	}
}
