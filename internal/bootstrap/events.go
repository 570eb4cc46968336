package bootstrap

import (
	"fmt"

	"github.com/osse101/Homestead_Go/internal/event"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/metrics"
	"github.com/osse101/Homestead_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and wires its subscribers:
// the metrics collector and, when a hub is given, the event stream forwarder.
// Subscribers are registered before any game can publish.
func InitializeEventSystem(hub *sse.Hub) (*event.MemoryBus, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
	}

	logger.Info(LogMsgEventSystemInitialized)
	return bus, nil
}
