package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"kore-engine/internal/config"
	"kore-engine/internal/logging"
	"kore-engine/internal/server"
	"kore-engine/internal/session"
)

const DefaultConfigPath = "config/engine.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv("KORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading engine config: %w", err)
	}

	logFile, err := logging.Setup(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logFile.Close()

	if cfg.Debug {
		logging.EnableDebug(true)
	}

	slog.Info("ai engine starting",
		"version", server.Version,
		"addr", cfg.Addr(),
		"ai_service", cfg.AIServiceURL,
		"log_level", cfg.LogLevel)

	sessions := session.NewManager(cfg)

	// The sidecar is optional at startup: local tiers keep deciding
	// without it, only ML and LLM escalations degrade.
	probeCtx, cancelProbe := context.WithTimeout(ctx, cfg.ConnectTimeout)
	if err := sessions.Ping(probeCtx); err != nil {
		slog.Warn("ai sidecar unreachable", "url", cfg.AIServiceURL, "err", err)
	} else {
		slog.Info("ai sidecar reachable", "url", cfg.AIServiceURL)
	}
	cancelProbe()

	srv := server.New(cfg, sessions)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil {
			return fmt.Errorf("decision api: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
