package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/cache"
	"github.com/actuallystonmai/health-lens-service/internal/config"
	"github.com/actuallystonmai/health-lens-service/internal/features"
	"github.com/actuallystonmai/health-lens-service/internal/handler"
	"github.com/actuallystonmai/health-lens-service/internal/lexicon"
	"github.com/actuallystonmai/health-lens-service/internal/logger"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/actuallystonmai/health-lens-service/internal/nutrition"
	"github.com/actuallystonmai/health-lens-service/internal/router"
	"github.com/actuallystonmai/health-lens-service/internal/service"
	"github.com/actuallystonmai/health-lens-service/internal/training"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	logger, err := logger.New(cfg.LogLevel, cfg.LogFormat, "health-lens")
	if err != nil {
		log.Fatalf("failed to build logger %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ------------ Food lexicon ---------------
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		lex, err = lexicon.Load(cfg.LexiconPath)
		if err != nil {
			logger.Fatal("failed to load lexicon", zap.String("path", cfg.LexiconPath), zap.Error(err))
		}
	}
	logger.Info("lexicon ready", zap.String("version", lex.Version()), zap.Int("foods", lex.Len()))

	// ------------ Risk model ---------------
	forest := loadModel(ctx, cfg, logger)
	estimator := model.NewEstimator(forest, cfg.FallbackPolicy)
	if !estimator.Loaded() {
		logger.Warn("serving without a risk model", zap.String("fallback_policy", string(cfg.FallbackPolicy)))
	}

	// ------------ Redis (optional) ---------------
	var responses service.ResponseCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to parse redis url", zap.Error(err))
		}
		client := redis.NewClient(opts)
		defer client.Close()

		c := cache.NewCache(client, cfg.CacheTTL)
		if err := c.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, response cache disabled", zap.Error(err))
		} else {
			responses = c
			logger.Info("connected to Redis", zap.Duration("ttl", cfg.CacheTTL))
		}
	}

	// ---------------- Server --------------------
	analyzer := nutrition.NewAnalyzer(lex, cfg.Nutrition)
	svc := service.NewService(estimator, analyzer, responses, logger)
	h := handler.NewHandler(svc, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, logger, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadModel returns nil when no usable model exists; the estimator's
// fallback policy takes over from there.
func loadModel(ctx context.Context, cfg *config.Config, logger *zap.Logger) *model.Forest {
	forest, err := model.LoadFor(cfg.ModelPath, features.Columns)
	if err == nil {
		logger.Info("model loaded",
			zap.String("path", cfg.ModelPath),
			zap.String("model_id", forest.ID),
			zap.Int("trees", len(forest.Trees)),
		)
		return forest
	}

	if !errors.Is(err, fs.ErrNotExist) {
		// includes models built for another feature layout
		logger.Error("failed to load model", zap.String("path", cfg.ModelPath), zap.Error(err))
		return nil
	}
	if !cfg.TrainOnMissing || cfg.DatasetPath == "" {
		logger.Warn("model file not found", zap.String("path", cfg.ModelPath))
		return nil
	}

	logger.Info("model file not found, training a new one", zap.String("dataset", cfg.DatasetPath))
	forest, _, err = training.Run(ctx, training.FileSource{Path: cfg.DatasetPath}, cfg.ModelPath,
		training.Options{Params: cfg.Forest, TestSize: cfg.TestSize}, logger)
	if err != nil {
		logger.Error("failed to train model", zap.Error(err))
		return nil
	}
	return forest
}
