// cmd/cleanup/main.go — one-shot delivery queue retention cleanup.
// Usage: go run ./cmd/cleanup [-days N]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"dapurstok/internal/config"
	"dapurstok/internal/infra"
	"dapurstok/internal/repository"
	"dapurstok/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	days := flag.Int("days", 0, "retention window in days (default: DELIVERY_RETENTION_DAYS)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	retention := cfg.DeliveryRetentionDays
	if *days > 0 {
		retention = *days
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	svc := service.NewDistributionService(repository.NewDeliveryRepository(db))
	deleted, err := svc.CleanupOld(context.Background(), retention)
	if err != nil {
		log.Fatal().Err(err).Msg("cleanup failed")
	}
	log.Info().Int64("deleted", deleted).Int("retention_days", retention).Msg("cleanup done")
}
