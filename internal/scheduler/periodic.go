package scheduler

import (
	"context"
	"fmt"
	"time"

	"dealfinder_backend/platform/config"
	"dealfinder_backend/platform/logger"

	"github.com/hibiken/asynq"
)

const (
	expirySchedule = "@every 1h"
	purgeSchedule  = "@every 24h"
)

// Periodic enqueues the recurring maintenance tasks on a fixed schedule.
// Task handlers live on the Worker; this only produces the tasks.
type Periodic struct {
	scheduler *asynq.Scheduler
	log       *logger.Logger
}

func NewPeriodic(cfg config.SchedulerConfig, log *logger.Logger) (*Periodic, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	expiryTask, err := NewSubscriptionExpiryTask(SubscriptionExpiryPayload{EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(expirySchedule, expiryTask, asynq.Queue(queue)); err != nil {
		return nil, fmt.Errorf("register expiry schedule: %w", err)
	}

	purgeTask, err := NewClaimsPurgeTask(ClaimsPurgePayload{EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(purgeSchedule, purgeTask, asynq.Queue(queue)); err != nil {
		return nil, fmt.Errorf("register purge schedule: %w", err)
	}

	return &Periodic{scheduler: scheduler, log: log}, nil
}

func (p *Periodic) Run(ctx context.Context) {
	if p == nil || p.scheduler == nil {
		return
	}

	go func() {
		<-ctx.Done()
		p.scheduler.Shutdown()
	}()

	if err := p.scheduler.Run(); err != nil {
		p.log.Error("periodic scheduler stopped", "error", err)
	}
}
