package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"zipcode-jp/internal/apperror"
	"zipcode-jp/internal/config"
	"zipcode-jp/internal/logging"
	"zipcode-jp/internal/output"
	"zipcode-jp/internal/repository"
	"zipcode-jp/internal/service"
	"zipcode-jp/internal/source"
)

type options struct {
	configDir string
	file      string
	outputDir string
	load      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "importer",
		Short:         "Build the Japan Post zip code dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config", "configs", "directory containing app.env")
	root.PersistentFlags().StringVar(&opts.file, "file", "", "read a local ken_all.zip instead of downloading it")

	build := &cobra.Command{
		Use:   "build",
		Short: "Normalize the registry and write per-prefix JSON, JSONP and CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, true, opts.load)
		},
	}
	build.Flags().StringVar(&opts.outputDir, "output", "", "output directory (overrides OUTPUT_DIR)")
	build.Flags().BoolVar(&opts.load, "load", false, "also load the records into PostgreSQL")

	load := &cobra.Command{
		Use:   "load",
		Short: "Normalize the registry and load it into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, false, true)
		},
	}

	root.AddCommand(build, load)
	return root
}

func run(ctx context.Context, opts *options, publish, store bool) error {
	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, true)

	if opts.file != "" {
		cfg.SourceFile = opts.file
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	src := source.New(source.NewFetcher(cfg.FetchTimeout), cfg.SourceURL, cfg.SourceFile)

	var publisher service.Publisher
	if publish {
		publisher = output.NewFileSink(cfg.OutputDir, cfg.JSONPCallback, cfg.WriteConcurrency)
	}

	var recordStore service.RecordStore
	if store {
		if cfg.DBSource == "" {
			return errors.New("importer: DB_SOURCE is required to load records")
		}
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return apperror.New(apperror.CodeDatabaseLoadFailed, "cannot connect to db", err)
		}
		defer pool.Close()

		repo := repository.NewRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			return apperror.New(apperror.CodeDatabaseLoadFailed, "cannot migrate db", err)
		}
		recordStore = repo
	}

	report, err := service.NewBuildService(src, publisher, recordStore).Run(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Int("input_rows", report.InputRows).
		Int("corrected_rows", report.CorrectedRows).
		Int("unique_rows", report.UniqueRows).
		Int("prefixes", report.Prefixes).
		Bool("published", report.Published).
		Bool("stored", report.Stored).
		Dur("duration", report.Duration).
		Msg("build finished")
	return nil
}
