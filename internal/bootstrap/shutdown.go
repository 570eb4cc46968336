package bootstrap

import (
	"context"

	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/scheduler"
	"github.com/osse101/Homestead_Go/internal/server"
	"github.com/osse101/Homestead_Go/internal/sse"
	"github.com/osse101/Homestead_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
}

// GracefulShutdown stops the components in order:
// 1. Event stream hub (open streams end, so the server can drain)
// 2. HTTP server (readiness fails, in-flight requests finish)
// 3. Scheduler, then the pool it feeds
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		logger.Info(LogMsgStoppingEventStreams)
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	logger.Info(LogMsgServerStopped)
}
