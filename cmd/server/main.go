package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"random-word/internal/api"
	"random-word/internal/assets"
	"random-word/internal/config"
	"random-word/internal/logger"
	"random-word/internal/metrics"
	"random-word/internal/wordsdb"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("server")

	var m *metrics.Metrics
	opts := []wordsdb.Option{wordsdb.WithLogger(logger.WithComponent("wordsdb"))}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		opts = append(opts, wordsdb.WithObserver(m))
	}

	db, err := wordsdb.Open(wordsdb.Source{FS: assets.FS, Dir: assets.Dir}, opts...)
	if err != nil {
		return fmt.Errorf("opening embedded vocabularies: %w", err)
	}
	log.Info("vocabularies available", "vocabularies", db.Vocabularies())

	if cfg.Words.Warm {
		start := time.Now()
		vocabularies := make([]wordsdb.Vocabulary, 0, len(cfg.Words.Vocabularies))
		for _, v := range cfg.Words.Vocabularies {
			vocabularies = append(vocabularies, wordsdb.Vocabulary(v))
		}
		if err := db.Warm(ctx, vocabularies...); err != nil {
			return fmt.Errorf("warming vocabularies: %w", err)
		}
		log.Info("warm-up complete", "took", time.Since(start))
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	server := api.NewServer(db, m, cfg.Words.MaxCount)

	s := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.NewRouter(server, m, metricsPath),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
