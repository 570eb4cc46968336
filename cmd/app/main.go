// @title Homestead API
// @version 1.0
// @description Farming game sessions with an optional chat advisor.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Homestead_Go/internal/advisor"
	"github.com/osse101/Homestead_Go/internal/bootstrap"
	"github.com/osse101/Homestead_Go/internal/config"
	"github.com/osse101/Homestead_Go/internal/game"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/scheduler"
	"github.com/osse101/Homestead_Go/internal/server"
	"github.com/osse101/Homestead_Go/internal/sse"
	"github.com/osse101/Homestead_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	hub := sse.NewHub()
	hub.Start()

	bus, err := bootstrap.InitializeEventSystem(hub)
	if err != nil {
		logger.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	store := game.NewStore(cfg.SessionCacheSize, cfg.SessionTTL)
	games := game.NewService(game.Config{
		PlotCount:     cfg.PlotCount,
		StartingCoins: cfg.StartingCoins,
	}, store, bus)

	pool := worker.NewPool(1, 4)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule("session gauge", worker.DefaultSessionGaugeInterval, worker.NewSessionGaugeJob(store))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, games, advisor.NewFromConfig(cfg.Advisor), bootstrap.NewCropResolver(cfg.CropAliases), hub)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Hub:       hub,
	})
}
