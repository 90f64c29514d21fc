package worker

// retention_cron.go
// Background goroutine that deletes delivery queue entries older than the
// configured retention window. Terminal batches (SHIPPED, REJECTED) only
// matter for a bounded audit period; everything else about the cook lives on
// in the stock movement ledger.

import (
	"context"
	"time"

	"dapurstok/internal/service"

	"github.com/rs/zerolog/log"
)

const retentionTickInterval = 6 * time.Hour

// StartRetentionCron launches a background goroutine that periodically runs
// the delivery queue cleanup. Respects the context for graceful shutdown.
func StartRetentionCron(ctx context.Context, svc service.DistributionService, retentionDays int) {
	go func() {
		ticker := time.NewTicker(retentionTickInterval)
		defer ticker.Stop()

		log.Info().Int("retention_days", retentionDays).Msg("retention_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retention_cron: shutting down")
				return
			case <-ticker.C:
				if _, err := svc.CleanupOld(ctx, retentionDays); err != nil {
					log.Error().Err(err).Msg("retention_cron: cleanup failed")
				}
			}
		}
	}()
}
