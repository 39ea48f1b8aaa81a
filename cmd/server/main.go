package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"valuesprism/internal/catalog"
	"valuesprism/internal/platform/config"
	"valuesprism/internal/platform/httpserver"
	"valuesprism/internal/platform/logger"
	"valuesprism/internal/platform/middleware"
	platformredis "valuesprism/internal/platform/redis"
	"valuesprism/internal/profiles"
	profileshandler "valuesprism/internal/profiles/handler"
	ratelimitmetrics "valuesprism/internal/ratelimit/metrics"
	ratelimitsvc "valuesprism/internal/ratelimit/service"
	"valuesprism/internal/ratelimit/store/bucket"
	"valuesprism/internal/session"
	sessionhandler "valuesprism/internal/session/handler"
	sessionsvc "valuesprism/internal/session/service"
	"valuesprism/internal/synthesis"
	synthesishandler "valuesprism/internal/synthesis/handler"
	synthesismetrics "valuesprism/internal/synthesis/metrics"
	"valuesprism/pkg/platform/audit/publisher"
	auditmemory "valuesprism/pkg/platform/audit/store/memory"
	"valuesprism/pkg/platform/middleware/metadata"
)

// main wires config, stores, services and handlers, then runs the server and
// background workers until interrupted. Business logic lives in the internal
// services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := catalog.Validate(); err != nil {
		log.Error("catalog validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional Redis: selects the shared session store and rate limit bucket.
	redisClient, err := platformredis.New(cfg)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Optional Postgres: selects the durable profile store.
	var db *sql.DB
	if cfg.PostgresDSN != "" {
		db, err = sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	auditPub := publisher.NewPublisher(auditmemory.NewInMemoryStore(),
		publisher.WithAsyncBuffer(256),
		publisher.WithLogger(log),
	)
	defer auditPub.Close()

	var sessionStore session.Store
	var bucketStore ratelimitsvc.BucketStore
	var memBuckets *bucket.InMemoryBucketStore
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient.Client, cfg.SessionTTL)
		bucketStore = bucket.NewRedisBucketStore(redisClient.Client)
	} else {
		sessionStore = session.NewInMemoryStore()
		memBuckets = bucket.NewInMemoryBucketStore()
		bucketStore = memBuckets
	}

	var profileStore profiles.Store
	if db != nil {
		profileStore = profiles.NewPostgresStore(db)
	} else {
		profileStore = profiles.NewInMemoryStore()
	}

	limiter, err := ratelimitsvc.New(bucketStore, cfg.RateLimit, cfg.RateWindow,
		ratelimitsvc.WithLogger(log),
		ratelimitsvc.WithMetrics(ratelimitmetrics.New()),
		ratelimitsvc.WithDisabled(cfg.RateLimitDisabled),
	)
	if err != nil {
		log.Error("rate limiter init failed", "error", err)
		os.Exit(1)
	}

	var modelClient synthesis.ModelClient
	if cfg.AnthropicAPIKey != "" {
		modelClient = synthesis.NewAnthropicClient(synthesis.AnthropicConfig{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			Timeout: cfg.AnthropicTimeout,
		})
	} else {
		log.Warn("ANTHROPIC_API_KEY not set, definitions will use the fallback generator")
	}

	synthesisSvc := synthesis.New(modelClient, limiter,
		synthesis.WithLogger(log),
		synthesis.WithMetrics(synthesismetrics.New()),
		synthesis.WithAudit(auditPub),
	)

	sessions, err := sessionsvc.New(sessionStore,
		sessionsvc.WithLogger(log),
		sessionsvc.WithAudit(auditPub),
	)
	if err != nil {
		log.Error("session service init failed", "error", err)
		os.Exit(1)
	}

	profileSvc, err := profiles.New(profileStore,
		profiles.WithLogger(log),
		profiles.WithAudit(auditPub),
	)
	if err != nil {
		log.Error("profile service init failed", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.ContentTypeJSON)
	router.Use(metadata.ClientMetadata)
	router.Use(middleware.Timeout(2 * time.Minute))

	sessionhandler.New(sessions, log).Register(router)
	synthesishandler.New(synthesisSvc, sessions, log).Register(router)
	profileshandler.New(profileSvc, sessions, log).Register(router)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting valuesprism", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if memBuckets != nil {
		g.Go(func() error {
			memBuckets.StartSweeper(gctx, cfg.RateWindow)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
