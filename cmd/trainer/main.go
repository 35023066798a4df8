// Command trainer fits the health risk forest offline.
//
//	trainer [flags]                 train from -dataset (csv/xlsx) or postgres
//	trainer migrate-up|migrate-down manage the health_records table
//	trainer seed [-seed-rows N]     fill health_records with synthetic rows
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/cache"
	"github.com/actuallystonmai/health-lens-service/internal/config"
	"github.com/actuallystonmai/health-lens-service/internal/logger"
	"github.com/actuallystonmai/health-lens-service/internal/repository"
	"github.com/actuallystonmai/health-lens-service/internal/training"
	"github.com/actuallystonmai/health-lens-service/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultSeedRows = 2000

type options struct {
	dataset  string
	source   string
	out      string
	seedRows int
	limit    int
	training training.Options
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	logger, err := logger.New(cfg.LogLevel, cfg.LogFormat, "health-lens-trainer")
	if err != nil {
		log.Fatalf("failed to build logger %v", err)
	}
	defer logger.Sync()

	command, args := "train", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	opts, err := parseFlags(cfg, command, args)
	if err != nil {
		logger.Fatal("invalid arguments", zap.Error(err))
	}

	ctx := context.Background()
	if err := run(ctx, command, cfg, opts, logger); err != nil {
		logger.Fatal(command+" failed", zap.Error(err))
	}
}

func parseFlags(cfg *config.Config, command string, args []string) (options, error) {
	fs := flag.NewFlagSet("trainer", flag.ContinueOnError)
	o := options{training: training.Options{Params: cfg.Forest, TestSize: cfg.TestSize}}
	p := &o.training.Params

	fs.StringVar(&o.dataset, "dataset", cfg.DatasetPath, "dataset file (.csv or .xlsx)")
	fs.StringVar(&o.source, "source", "", "csv, xlsx or postgres (default: from -dataset extension)")
	fs.StringVar(&o.out, "out", cfg.ModelPath, "model output path")
	fs.IntVar(&p.Trees, "trees", p.Trees, "number of trees")
	fs.IntVar(&p.MaxDepth, "depth", p.MaxDepth, "maximum tree depth (0 = unlimited)")
	fs.IntVar(&p.MinSamplesLeaf, "min-leaf", p.MinSamplesLeaf, "minimum rows per leaf")
	fs.IntVar(&p.MinSamplesSplit, "min-split", p.MinSamplesSplit, "minimum rows to split a node")
	fs.Float64Var(&p.MaxFeatures, "max-features", p.MaxFeatures, "fraction of features tried per split")
	fs.Int64Var(&p.Seed, "seed", p.Seed, "random seed")
	fs.IntVar(&p.Workers, "workers", p.Workers, "parallel tree builders (0 = GOMAXPROCS)")
	fs.Float64Var(&o.training.TestSize, "test-size", o.training.TestSize, "holdout fraction")
	fs.IntVar(&o.seedRows, "seed-rows", 0, "generate N synthetic rows before training")
	fs.IntVar(&o.limit, "limit", 0, "maximum rows read from postgres (0 = all)")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if err := p.Validate(); err != nil {
		return o, err
	}
	if o.seedRows < 0 {
		return o, errors.New("-seed-rows must be non-negative")
	}
	if command != "train" {
		return o, nil
	}

	if o.source == "" {
		o.source = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.dataset)), ".")
	}
	switch o.source {
	case "csv", "xlsx":
		if o.dataset == "" {
			return o, errors.New("-dataset is required for file sources")
		}
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(o.dataset)), "."); ext != o.source {
			return o, fmt.Errorf("-source %s does not match dataset %s", o.source, o.dataset)
		}
	case "postgres":
	default:
		return o, fmt.Errorf("unknown source %q", o.source)
	}
	return o, nil
}

func run(ctx context.Context, command string, cfg *config.Config, o options, logger *zap.Logger) error {
	switch command {
	case "migrate-up", "migrate-down", "seed":
		pool, err := connect(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		switch command {
		case "migrate-up":
			return migrateUp(ctx, pool, logger)
		case "migrate-down":
			return migrateDown(ctx, pool, logger)
		}
		rows := o.seedRows
		if rows == 0 {
			rows = defaultSeedRows
		}
		return seeds.Setup(ctx, pool, rows, logger)

	case "train":
		return train(ctx, cfg, o, logger)
	}
	return fmt.Errorf("unknown command %q", command)
}

func train(ctx context.Context, cfg *config.Config, o options, logger *zap.Logger) error {
	var src training.Source
	if o.source == "postgres" {
		pool, err := connect(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
		if err := checkSeed(ctx, pool, o.seedRows, logger); err != nil {
			return err
		}
		src = training.TableSource{Store: repository.NewRepository(pool), Limit: o.limit}
	} else {
		if o.seedRows > 0 {
			logger.Info("writing synthetic dataset", zap.String("path", o.dataset), zap.Int("rows", o.seedRows))
			if err := seeds.WriteFile(o.dataset, o.seedRows); err != nil {
				return err
			}
		}
		src = training.FileSource{Path: o.dataset}
	}

	_, report, err := training.Run(ctx, src, o.out, o.training, logger)
	if err != nil {
		return err
	}
	logger.Info("training complete",
		zap.String("model_id", report.ModelID),
		zap.Int("train_rows", report.TrainRows),
		zap.Int("test_rows", report.TestRows),
	)

	clearResponseCache(ctx, cfg, logger)
	return nil
}

// clearResponseCache drops analyses scored by the previous model.
func clearResponseCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	if cfg.RedisURL == "" {
		return
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("failed to parse redis url", zap.Error(err))
		return
	}
	client := redis.NewClient(opts)
	defer client.Close()

	if err := cache.NewCache(client, cfg.CacheTTL).Clear(ctx); err != nil {
		logger.Warn("failed to clear response cache", zap.Error(err))
		return
	}
	logger.Info("response cache cleared")
}

func connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := waitForDB(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logger.Info("waiting for database", zap.Int("attempt", i+1))
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	return execMigration(ctx, pool, "migrations/create_tables.down.sql", logger)
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	return execMigration(ctx, pool, "migrations/create_tables.up.sql", logger)
}

func execMigration(ctx context.Context, pool *pgxpool.Pool, path string, logger *zap.Logger) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration %s: %w", path, err)
	}
	logger.Info("migration applied", zap.String("file", path))
	return nil
}

// checkSeed fills an empty table so a fresh database can be trained on.
func checkSeed(ctx context.Context, pool *pgxpool.Pool, rows int, logger *zap.Logger) error {
	count, err := repository.NewRepository(pool).CountHealthRecords(ctx)
	if err != nil {
		return err
	}
	if count > 0 && rows == 0 {
		logger.Info("health_records already populated, skipping seed", zap.Int("rows", count))
		return nil
	}
	if rows == 0 {
		rows = defaultSeedRows
	}
	return seeds.Setup(ctx, pool, rows, logger)
}
