package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkingsys/config"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/menu"
	"parkingsys/pkg/telemetry"
	"parkingsys/service"
	"parkingsys/storage/memory"

	"github.com/facebookgo/clock"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel, cfg.LoggerOutput)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize Telemetry (noop unless OTEL_ENABLED)
	tel, err := telemetry.New(ctx, cfg)
	if err != nil {
		log.Error("Failed to initialize telemetry", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down telemetry", logger.Error(err))
		}
	}()

	// 4. Initialize Storage
	clk := clock.New()
	stg, err := memory.New(cfg, clk, log)
	if err != nil {
		log.Error("Failed to initialize storage", logger.Error(err))
		os.Exit(1)
	}
	defer stg.Close()

	// 5. Initialize Services
	svc, err := service.New(stg, clk, tel, log)
	if err != nil {
		log.Error("Failed to initialize services", logger.Error(err))
		os.Exit(1)
	}

	// 6. Run the console menu
	console := menu.New(&cfg, svc, log, os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	// 7. Wait for exit or a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Error("Menu stopped with error", logger.Error(err))
		}
	case sig := <-quit:
		log.Info("Received signal, shutting down", logger.String("signal", sig.String()))
		cancel()
	}
}
