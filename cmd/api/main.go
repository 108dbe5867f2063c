package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/talentflow/talentflow/internal/ai"
	"github.com/talentflow/talentflow/internal/cache"
	"github.com/talentflow/talentflow/internal/config"
	"github.com/talentflow/talentflow/internal/database"
	"github.com/talentflow/talentflow/internal/handler"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/repository"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.ApplySchema(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// Quiz caching is best effort; run without it.
		sugar.Warnw("redis unavailable, quiz cache disabled", "addr", cfg.Redis.Addr, "err", err)
		redisClient = nil
	}

	gateway, err := ai.NewWithGemini(ctx, ai.Config{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		MockMode:        cfg.Gemini.MockMode,
		QuestionRetries: cfg.Gemini.QuestionRetries,
		RetryBaseDelay:  cfg.Gemini.RetryBaseDelay,
	}, log)
	if err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger:     log,
		Repository: repo,
		AI:         gateway,
		QuizCache:  cache.NewQuizCache(redisClient, cfg.Redis.QuizTTL),
		Config:     cfg,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
