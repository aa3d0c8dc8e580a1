package middleware

import (
	"errors"
	"net/http"
	"strings"

	"levelup_daily/internal/service"
	"levelup_daily/pkg/auth"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key the authenticated user is stored
// under.
const CurrentUserKey = "current_user"

type Authorization struct {
	tokens      *auth.TokenManager
	userService service.UserServiceI
}

func NewAuthorization(tokens *auth.TokenManager, userService service.UserServiceI) *Authorization {
	return &Authorization{
		tokens:      tokens,
		userService: userService,
	}
}

// RequireUser resolves the bearer token to a user record and aborts with 401
// otherwise, telling expired tokens apart from invalid ones.
func (a *Authorization) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Info("invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		claims, err := a.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				log.Info("expired token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			log.Info("invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := a.userService.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Info("failed to resolve token user", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
