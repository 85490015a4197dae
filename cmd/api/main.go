// Step Tracker API
//
// REST API for daily step counts, period summaries and goal streaks.
//
//	@title			Step Tracker API
//	@version		1.0
//	@description	Record daily step counts, summarize them per calendar week, month or year, and track a daily goal streak.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management and daily goal
//
//	@tag.name			steps
//	@tag.description	Daily step records, summaries and streaks
//
//	@tag.name			advice
//	@tag.description	LLM walking advice and feedback
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

	"github.com/blaisecz/step-tracker/internal/api"
	"github.com/blaisecz/step-tracker/internal/api/handler"
	"github.com/blaisecz/step-tracker/internal/api/middleware"
	"github.com/blaisecz/step-tracker/internal/cache"
	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/blaisecz/step-tracker/internal/langfuse"
	"github.com/blaisecz/step-tracker/internal/llm"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/blaisecz/step-tracker/internal/seed"
	"github.com/blaisecz/step-tracker/internal/service"
	"github.com/blaisecz/step-tracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "step-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	stepRepo := repository.NewStepRecordRepository(db)

	// Step data source, cached in redis when available
	var (
		stepSource  = service.NewRepositoryStepSource(stepRepo)
		invalidator service.StepCacheInvalidator
		rateLimit   func(http.Handler) http.Handler
	)
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("Warning: redis unavailable (%v), running without cache and rate limiting", err)
		} else {
			defer rdb.Close()
			cached := cache.NewCachedStepSource(stepSource, rdb, cache.DefaultTTL)
			stepSource = cached
			invalidator = cached
			if cfg.RateLimitPerMinute > 0 {
				rateLimit = middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute)
			}
			log.Printf("Redis connected at %s", cfg.RedisAddr)
		}
	}

	// Langfuse: prompt management and advice tracing
	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		CachePath:   cfg.PromptCachePath,
		Default:     llm.DefaultSystemPrompt,
	})
	if err != nil {
		log.Fatalf("Failed to load advice prompt: %v", err)
	}
	log.Printf("Advice prompt loaded from %s (version %d)", prompt.Source, prompt.Version)

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIStepAdviceModel, prompt.Text)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.DefaultDailyGoal)
	stepLogService := service.NewStepLogService(stepRepo, userRepo, invalidator, nil)
	summaryService := service.NewSummaryService(stepSource, userRepo, cfg.WeekStart, nil)
	streakService := service.NewStreakService(stepSource, userRepo, cfg.StreakLookbackDays, nil)
	adviceService := service.NewAdviceService(summaryService, streakService, userRepo, openaiClient, langfuseClient, prompt.Version, nil)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	stepHandler := handler.NewStepHandler(stepLogService, summaryService, streakService)
	adviceHandler := handler.NewAdviceHandler(adviceService)

	// Setup router
	router := api.NewRouter(userHandler, stepHandler, adviceHandler)
	if rateLimit != nil {
		router.WithRateLimit(rateLimit)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := langfuseClient.Close(shutdownCtx); err != nil {
		log.Printf("Langfuse flush: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
