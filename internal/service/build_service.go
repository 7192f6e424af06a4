package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zipcode-jp/internal/apperror"
	"zipcode-jp/internal/models"
	"zipcode-jp/internal/pipeline"

	"github.com/rs/zerolog/log"
)

// RecordSource provides the raw registry rows in file order
type RecordSource interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// Publisher persists a build result as files
type Publisher interface {
	Publish(ctx context.Context, result *pipeline.Result) error
}

// RecordStore persists a build result in a database
type RecordStore interface {
	ReplaceAll(ctx context.Context, records []models.Record) error
	Count(ctx context.Context) (int, error)
}

// BuildReport summarizes a build run
type BuildReport struct {
	InputRows     int
	CorrectedRows int
	UniqueRows    int
	Prefixes      int
	Published     bool
	Stored        bool
	Duration      time.Duration
}

// BuildService runs the registry through the pipeline and hands the result to its outputs
type BuildService struct {
	source    RecordSource
	publisher Publisher
	store     RecordStore
}

// NewBuildService creates a new build service. publisher and store may be nil
// to skip that output.
func NewBuildService(source RecordSource, publisher Publisher, store RecordStore) *BuildService {
	return &BuildService{source: source, publisher: publisher, store: store}
}

// Run executes one full build
func (s *BuildService) Run(ctx context.Context) (*BuildReport, error) {
	started := time.Now()

	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load records: %w", err)
	}
	log.Info().Int("rows", len(records)).Msg("registry loaded")

	result, err := pipeline.Build(records)
	if err != nil {
		return nil, classifyPipelineError(err)
	}
	log.Info().
		Int("corrected", result.CorrectedRows).
		Int("unique", result.UniqueRows).
		Int("prefixes", len(result.Buckets)).
		Msg("records normalized")

	report := &BuildReport{
		InputRows:     result.InputRows,
		CorrectedRows: result.CorrectedRows,
		UniqueRows:    result.UniqueRows,
		Prefixes:      len(result.Buckets),
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, result); err != nil {
			return nil, fmt.Errorf("service: failed to publish: %w", err)
		}
		report.Published = true
		log.Info().Int("prefixes", report.Prefixes).Msg("files published")
	}

	if s.store != nil {
		if err := s.load(ctx, result.Records); err != nil {
			return nil, apperror.New(apperror.CodeDatabaseLoadFailed, "failed to load records into database", err)
		}
		report.Stored = true
		log.Info().Int("records", len(result.Records)).Msg("records stored")
	}

	report.Duration = time.Since(started)
	return report, nil
}

func (s *BuildService) load(ctx context.Context, records []models.Record) error {
	if err := s.store.ReplaceAll(ctx, records); err != nil {
		return err
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count != len(records) {
		return fmt.Errorf("service: record count mismatch: expected %d, got %d", len(records), count)
	}
	return nil
}

func classifyPipelineError(err error) error {
	switch {
	case errors.Is(err, pipeline.ErrFormatConsistency):
		return apperror.New(apperror.CodeFormatInconsistent, "zip code csv contradicts the multi-row town layout", err)
	case errors.Is(err, pipeline.ErrMalformedField):
		return apperror.New(apperror.CodeMalformedField, "zip code csv contains a malformed field", err)
	default:
		return fmt.Errorf("service: pipeline failed: %w", err)
	}
}
