package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"careerai-web/config"
	_ "careerai-web/docs" // Important for Swagger
	"careerai-web/internal/catalog"
	v1 "careerai-web/internal/delivery/http/v1"
	"careerai-web/internal/delivery/http/web"
	"careerai-web/internal/domain"
	"careerai-web/internal/repository/memory"
	redisrepo "careerai-web/internal/repository/redis"
	"careerai-web/internal/usecase"
	"careerai-web/pkg/logger"
	redisclient "careerai-web/pkg/redis"
	"careerai-web/pkg/security"
	"careerai-web/pkg/session"
	"careerai-web/pkg/validation"
)

// @title           CareerAI Web API
// @version         1.0
// @description     JSON surface of the CareerAI career guidance, resume parsing and job suggestion flows.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting CareerAI web", "port", cfg.Port, "session_store", cfg.SessionStore)
	secLog := security.InitSecurityLogger("careerai-web", security.Environment())
	defer func() { _ = secLog.Sync() }()

	// 3. Load Content Catalog
	cat, err := catalog.LoadDefault(cfg.ContentDir)
	if err != nil {
		logger.Log.Error("Failed to load content catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 4. Setup Session Store
	checks := map[string]usecase.HealthCheck{
		"catalog": func(context.Context) error { return catalog.Validate(cat) },
	}

	var redisClient *goredis.Client
	var sessionRepo domain.SessionRepository
	if cfg.SessionStore == "redis" {
		redisClient, err = redisclient.Connect(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory sessions", "error", err)
		} else {
			defer redisClient.Close()
			sessionRepo = redisrepo.NewSessionRepository(redisClient, cfg.SessionTTL)
			checks["redis"] = func(ctx context.Context) error { return redisclient.HealthCheck(ctx, redisClient) }
		}
	}
	if sessionRepo == nil {
		memRepo := memory.NewSessionRepository(cfg.SessionTTL)
		memRepo.StartSweeper(ctx, time.Minute)
		sessionRepo = memRepo
	}

	// 5. Setup UseCases
	validate := validation.New()
	store := usecase.NewSessionStore(sessionRepo, time.Now)
	contentUC := usecase.NewContentUsecase(cat)
	guidanceUC := usecase.NewGuidanceUsecase(store, cat, usecase.NewStaticGuidanceScorer(cat), validate)
	resumeUC := usecase.NewResumeUsecase(store, cat, usecase.NewCannedResumeAnalyzer(cat), cfg.ResumeAnalysisDelay, cfg.MaxUploadMB)
	jobUC := usecase.NewJobUsecase(store, cat, validate)
	sessionUC := usecase.NewSessionUsecase(store)
	healthUC := usecase.NewHealthUsecase(checks)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContentUC:  contentUC,
		GuidanceUC: guidanceUC,
		ResumeUC:   resumeUC,
		JobUC:      jobUC,
		SessionUC:  sessionUC,
		HealthUC:   healthUC,
		Signer:     session.NewTokenSigner(cfg.SessionSecret, cfg.SessionTTL),
		Redis:      redisClient,
		Templates:  web.Templates(),
		Config:     cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
