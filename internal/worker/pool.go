package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxJobAttempts = 3

// Pool consumes the job queues with a fixed number of goroutines.
type Pool struct {
	rdb   *redis.Client
	email *EmailWorker
}

func NewPool(rdb *redis.Client, email *EmailWorker) *Pool {
	return &Pool{rdb: rdb, email: email}
}

// Start launches numWorkers goroutines consuming the queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	queues := []string{QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var lastErr error
	for attempt := 1; attempt <= maxJobAttempts; attempt++ {
		switch job.Type {
		case "email":
			lastErr = p.email.Process(ctx, job.Payload)
		default:
			log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type")
			return
		}
		if lastErr == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, lastErr.Error(), maxJobAttempts)
}
