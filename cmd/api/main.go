package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealfinder_backend/internal/adapters"
	"dealfinder_backend/internal/adapters/storage"
	"dealfinder_backend/internal/advertisers"
	"dealfinder_backend/internal/auth"
	"dealfinder_backend/internal/email"
	"dealfinder_backend/internal/enrichment"
	"dealfinder_backend/internal/events"
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/internal/http/router"
	"dealfinder_backend/internal/places"
	"dealfinder_backend/internal/search"
	"dealfinder_backend/internal/suppliers"
	"dealfinder_backend/internal/vouchers"
	"dealfinder_backend/platform/config"
	"dealfinder_backend/platform/db"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	email.NewListener(sender, log).Register(eventBus)

	val := validator.New()

	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; scheduled maintenance runs only when the scheduler process is deployed")
	}

	// Logo storage is optional; signup works without it and the logo upload
	// endpoint reports storage as unavailable.
	var storageSvc storage.Service
	if cfg.IsMinIOEnabled() {
		minioSvc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure advertiser-logos bucket", 5, 2*time.Second, func() error {
			return minioSvc.EnsureBucketExists(ctx, cfg.GetMinioBucketAdvertiserLogos())
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketAdvertiserLogos())
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		storageSvc = minioSvc
		log.Info("storage service initialized", "advertiserLogosBucket", cfg.GetMinioBucketAdvertiserLogos())
	} else {
		log.Warn("MINIO_ENDPOINT not configured; logo uploads disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	if !cfg.IsSupplierAIEnabled() {
		panic("SUPPLIER_AI_API_KEY is required: search has no other supplier-data source")
	}
	supplierAgent, err := suppliers.NewAgent(cfg)
	if err != nil {
		log.Error("failed to initialize supplier-data agent", "error", err)
		panic("failed to initialize supplier-data agent: " + err.Error())
	}

	enricher := enrichment.New(enrichment.NewClient(log), log, cfg.GetEnrichmentAllowedDomains())

	advertisersModule := advertisers.NewModule(pool, storageSvc, eventBus, cfg, val, log)
	advertiserReader := adapters.NewAdvertiserReaderAdapter(advertisersModule.Service())

	searchModule := search.NewModule(supplierAgent, advertiserReader, enricher, val, log)
	vouchersModule := vouchers.NewModule(pool, eventBus, val, log)
	authModule := auth.NewModule(pool, cfg, val, log)
	placesModule := places.NewModule(log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			searchModule,
			advertisersModule,
			vouchersModule,
			authModule,
			placesModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
