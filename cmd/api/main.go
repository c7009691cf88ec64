package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/activitysignup/internal/api"
	"example.com/activitysignup/internal/config"
	"example.com/activitysignup/internal/directory"
	"example.com/activitysignup/internal/domain"
	"example.com/activitysignup/internal/observability"
	"example.com/activitysignup/internal/outbox"
	httptransport "example.com/activitysignup/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed, err := directory.LoadSeed(cfg.SeedFile)
	if err != nil {
		logger.Error("failed to load activity catalog", slog.Any("error", err))
		os.Exit(1)
	}
	for _, activity := range seed {
		observability.RecordRoster(activity.Name, len(activity.Participants), activity.MaxParticipants)
	}
	repo := directory.NewInMemoryRepository(seed)

	opts := []domain.Option{domain.WithLogger(logger)}

	var dispatcher *outbox.Dispatcher
	if cfg.EventsEnabled() {
		producer := outbox.NewKafkaProducer(cfg.KafkaBrokers)
		defer producer.Close()

		queue := outbox.New(cfg.RosterTopic, cfg.OutboxBuffer)
		dispatcher = outbox.NewDispatcher(queue, producer, outbox.DispatcherConfig{
			BatchSize:     cfg.OutboxBatchSize,
			FlushInterval: cfg.OutboxFlushInterval,
		}, logger)
		go dispatcher.Start(ctx)

		opts = append(opts, domain.WithPublisher(queue))
		logger.Info("roster events enabled",
			slog.Any("brokers", cfg.KafkaBrokers),
			slog.String("topic", cfg.RosterTopic),
		)
	}

	service := domain.NewService(repo, opts...)

	handler := api.NewHandler(service, api.WithStaticDir(cfg.StaticDir))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, httptransport.RequestLogger(logger, httptransport.CORS(cfg.CORSOrigin, mux)))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activity signup service listening",
			slog.String("address", cfg.HTTPAddress),
			slog.Int("activities", len(seed)),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}

	// Stop the dispatcher only after in-flight requests have enqueued their events.
	cancel()
	if dispatcher != nil {
		dispatcher.Wait()
	}
}
