package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"levelup_daily/internal/api"
	"levelup_daily/internal/middleware"
	"levelup_daily/internal/repository"
	"levelup_daily/internal/service"
	"levelup_daily/pkg/auth"
	"levelup_daily/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	progression := service.NewProgressionService(repo)
	userService := service.NewUserService(repo, repo, repo)
	questService := service.NewQuestService(repo, progression)
	powerUpService := service.NewPowerUpService(repo, progression)
	badGuyService := service.NewBadGuyService(repo, progression)
	sideQuestService := service.NewSideQuestService(repo, progression)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sideQuestService.Seed(seedCtx); err != nil {
		zapLogger.Fatal("Failed to seed side quests", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	authorization := middleware.NewAuthorization(tokens, userService)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		config.AllowOrigins = cfg.CORSOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api")
	api.NewAuthRoutes(a, userService, tokens)
	api.NewDashboardRoutes(a, userService, authorization)
	api.NewQuestRoutes(a, questService, authorization)
	api.NewPowerUpRoutes(a, powerUpService, authorization)
	api.NewBadGuyRoutes(a, badGuyService, authorization)
	api.NewSideQuestRoutes(a, sideQuestService, authorization)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
