package scheduler

import (
	"context"
	"fmt"
	"time"

	"dealfinder_backend/platform/config"
	"dealfinder_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// AdvertiserExpirer deactivates advertisers whose subscription has lapsed.
type AdvertiserExpirer interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int, error)
}

// ClaimPurger removes voucher claims past their retention window.
type ClaimPurger interface {
	PurgeExpiredClaims(ctx context.Context, now time.Time) (int64, error)
}

type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	advertisers AdvertiserExpirer
	vouchers    ClaimPurger
	log         *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, advertisers AdvertiserExpirer, vouchers ClaimPurger, log *logger.Logger) (*Worker, error) {
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

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:      server,
		mux:         mux,
		advertisers: advertisers,
		vouchers:    vouchers,
		log:         log,
	}

	mux.HandleFunc(TaskAdvertiserSubscriptionExpiry, w.handleSubscriptionExpiry)
	mux.HandleFunc(TaskVoucherClaimsPurge, w.handleClaimsPurge)

	return w, nil
}

func (w *Worker) handleSubscriptionExpiry(ctx context.Context, task *asynq.Task) error {
	if w.advertisers == nil {
		return nil
	}

	if _, err := ParseSubscriptionExpiryPayload(task); err != nil {
		return err
	}

	count, err := w.advertisers.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if count > 0 {
		w.log.Info("deactivated expired advertisers", "count", count)
	}
	return nil
}

func (w *Worker) handleClaimsPurge(ctx context.Context, task *asynq.Task) error {
	if w.vouchers == nil {
		return nil
	}

	if _, err := ParseClaimsPurgePayload(task); err != nil {
		return err
	}

	count, err := w.vouchers.PurgeExpiredClaims(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if count > 0 {
		w.log.Info("purged expired voucher claims", "count", count)
	}
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
