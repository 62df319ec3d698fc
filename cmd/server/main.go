package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/database"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/handler"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/logger"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/router"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/telemetry"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/validator"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Quiz Platform Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	attemptRepo := repository.NewAttemptRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	setRepo := repository.NewQuestionSetRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	activitySink := telemetry.NewRedisActivitySink(rdb, log)
	attemptStore := telemetry.NewRedisAttemptStore(rdb, log)
	authService := service.NewAuthService(cfg, rdb, userRepo, activitySink)
	bankProvider := service.NewCompositeBankProvider(setRepo)
	quizService := service.NewQuizService(bankProvider, activitySink, attemptStore, log)
	profileService := service.NewProfileService(userRepo, attemptRepo, activityRepo)
	leaderboardService := service.NewLeaderboardService(cfg, rdb, attemptRepo, log)
	setService := service.NewQuestionSetService(setRepo)
	dashboardService := service.NewDashboardService(attemptRepo, setRepo, dashboardRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Catalog:      handler.NewCatalogHandler(),
		Quiz:         handler.NewQuizHandler(quizService),
		QuestionSet:  handler.NewQuestionSetHandler(setService),
		Profile:      handler.NewProfileHandler(profileService),
		Leaderboard:  handler.NewLeaderboardHandler(leaderboardService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		ActivityFeed: handler.NewActivityFeedHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	activityWorker := worker.NewActivityWorker(pool, rdb, log)
	attemptWorker := worker.NewAttemptWorker(pool, rdb, log)

	go activityWorker.Start(workerCtx)
	go attemptWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
