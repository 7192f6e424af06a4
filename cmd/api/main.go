package main

import (
	"context"

	_ "zipcode-jp/docs"
	"zipcode-jp/internal/config"
	"zipcode-jp/internal/handler"
	"zipcode-jp/internal/logging"
	"zipcode-jp/internal/repository"
	"zipcode-jp/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Zip Code JP API
//	@version		1.0
//	@description	Lookup API over the normalized Japan Post zip code registry.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, false)

	if config.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	zipCodeService := service.NewZipCodeService(repo)

	zipCodeHandler := handler.NewZipCodeHandler(zipCodeService)
	prefixHandler := handler.NewPrefixHandler(zipCodeService)

	r := handler.NewRouter(zipCodeHandler, prefixHandler)

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
