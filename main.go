package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/chrystiano/mega-sena-generator/internal/httpserver"
	"github.com/chrystiano/mega-sena-generator/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	unit, err := decimal.NewFromString(cfg.UnitPrice)
	if err != nil {
		log.Fatal().Err(err).Str("unitPrice", cfg.UnitPrice).Msg("invalid UNIT_PRICE")
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, unit)
	log.Info().Str("port", cfg.Port).Str("unitPrice", unit.StringFixed(2)).Msg("starting megasena-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
