package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lnurlp-webhook/config"
	httpHandler "lnurlp-webhook/internal/adapter/http/handler"
	nostrSigner "lnurlp-webhook/internal/adapter/nostr"
	kafkaQueue "lnurlp-webhook/internal/adapter/queue/kafka"
	redisQueue "lnurlp-webhook/internal/adapter/queue/redis"
	"lnurlp-webhook/internal/adapter/relay"
	pgStorage "lnurlp-webhook/internal/adapter/storage/postgres"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/internal/metrics"
	"lnurlp-webhook/internal/service"
	"lnurlp-webhook/pkg/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newConsumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Listen for paid invoices and deliver pay link webhooks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Pretty).With().
				Str("instance_id", uuid.New().String()).
				Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runConsume(ctx, cfg, log)
		},
	}
}

func runConsume(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Info().
		Str("driver", cfg.Source.Driver).
		Str("topic", cfg.Source.Topic).
		Bool("relay", cfg.Relay.Enabled).
		Msg("Starting lnurlp webhook dispatcher")

	// PostgreSQL: payment metadata + pay links
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	paymentRepo := pgStorage.NewPaymentRepo(pool)
	payLinkRepo := pgStorage.NewPayLinkRepo(pool)

	source, sourceHealth, closeSource, err := newEventSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSource()

	notifier, err := newZapNotifier(cfg.Relay, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.MustRegister(reg)

	webhookSvc := service.NewWebhookService(
		service.NewWebhookHTTPClient(cfg.Webhook.Timeout),
		cfg.Webhook.Timeout,
		cfg.Webhook.MaxResponseBytes,
		logger.Component(log, "webhook"),
	)
	recorder := service.NewRecorder(paymentRepo, logger.Component(log, "recorder"))

	consumer := service.NewConsumer(service.ConsumerDeps{
		Source:    source,
		Topic:     cfg.Source.Topic,
		Payments:  paymentRepo,
		Links:     payLinkRepo,
		Deliverer: webhookSvc,
		Recorder:  recorder,
		Notifier:  notifier,
		Logger:    logger.Component(log, "consumer"),
	})

	// Ops listener: /health + /metrics
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), sourceHealth},
		Gatherer:       reg,
		Logger:         logger.Component(log, "http"),
	})
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Ops HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Ops HTTP server failed")
		}
	}()

	runErr := consumer.Run(ctx)

	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ops HTTP server forced to shutdown")
	}

	if runErr != nil {
		return fmt.Errorf("consumer: %w", runErr)
	}
	log.Info().Msg("Dispatcher exited")
	return nil
}

// newEventSource builds the configured paid-invoice source together with
// its health checker and a release func.
func newEventSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.EventSource, ports.HealthChecker, func(), error) {
	switch cfg.Source.Driver {
	case "kafka":
		src := kafkaQueue.NewEventSource(kafkaQueue.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			MaxWait: cfg.Kafka.MaxWait,
		}, logger.Component(log, "kafka"))
		return src, kafkaQueue.NewHealthCheck(cfg.Kafka.Brokers), func() {}, nil

	default:
		rdb, err := redisQueue.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("closing redis client")
			}
		}
		src := redisQueue.NewEventSource(rdb, 0, logger.Component(log, "redis"))
		return src, redisQueue.NewHealthCheck(rdb), closeFn, nil
	}
}

// newZapNotifier returns nil when zap receipts are disabled.
func newZapNotifier(cfg config.RelayConfig, log zerolog.Logger) (ports.ZapNotifier, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	signer, err := nostrSigner.NewSigner(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("relay signer: %w", err)
	}
	publisher := relay.NewPublisher(relay.Config{
		URL:                cfg.URL,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		DialTimeout:        cfg.DialTimeout,
	}, logger.Component(log, "relay"))

	log.Info().Str("url", cfg.URL).Str("pubkey", signer.PublicKey()).Msg("Zap receipts enabled")
	return service.NewZapNotifier(signer, publisher, logger.Component(log, "zap")), nil
}
