package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"go.uber.org/zap"
)

var errEmpty = errors.New("no training rows")

// Source yields raw dataset rows.
type Source interface {
	Records(ctx context.Context) ([]dataset.Record, error)
	String() string
}

// FileSource reads a .csv or .xlsx file.
type FileSource struct {
	Path string
}

func (s FileSource) Records(ctx context.Context) ([]dataset.Record, error) {
	return dataset.LoadFile(s.Path)
}

func (s FileSource) String() string { return s.Path }

type recordStore interface {
	HealthRecords(ctx context.Context, limit int) ([]dataset.Record, error)
}

// TableSource reads the health_records table.
type TableSource struct {
	Store recordStore
	Limit int
}

func (s TableSource) Records(ctx context.Context) ([]dataset.Record, error) {
	return s.Store.HealthRecords(ctx, s.Limit)
}

func (s TableSource) String() string { return "postgres:health_records" }

type Options struct {
	Params   model.Params
	TestSize float64
}

// Run loads src, trains a forest and writes it to out.
func Run(ctx context.Context, src Source, out string, opts Options, logger *zap.Logger) (*model.Forest, Report, error) {
	logger.Info("loading dataset", zap.Stringer("source", src))
	records, err := src.Records(ctx)
	if err != nil {
		return nil, Report{}, fmt.Errorf("load dataset %s: %w", src, err)
	}

	m, err := dataset.Preprocess(records)
	if err != nil {
		return nil, Report{}, fmt.Errorf("preprocess dataset %s: %w", src, err)
	}
	logger.Info("dataset ready",
		zap.Int("rows", m.Len()),
		zap.Int("features", len(m.Features)),
		zap.Int("outputs", len(m.Outputs)),
	)

	forest, report, err := Train(ctx, m, opts.Params, opts.TestSize, logger)
	if err != nil {
		return nil, Report{}, err
	}

	if err := forest.Save(out); err != nil {
		return nil, Report{}, err
	}
	logger.Info("model saved", zap.String("path", out), zap.String("model_id", forest.ID))
	return forest, report, nil
}
