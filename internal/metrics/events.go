package metrics

import (
	"context"

	"github.com/osse101/Homestead_Go/internal/event"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.GameStarted,
		event.PlotPlanted,
		event.PlotWatered,
		event.PlotMatured,
		event.PlotWithered,
		event.PlotHarvested,
		event.PlotRemoved,
		event.DayAdvanced,
		event.LevelUp,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	crop, _ := evt.GetMetadataValue(MetadataKeyCrop).(string)

	switch evt.Type {
	case event.GameStarted:
		GamesStarted.Inc()

	case event.PlotPlanted:
		CropsPlanted.WithLabelValues(crop).Inc()

	case event.PlotMatured:
		CropsMatured.WithLabelValues(crop).Inc()

	case event.PlotWithered:
		CropsWithered.WithLabelValues(crop).Inc()

	case event.PlotRemoved:
		CropsRemoved.WithLabelValues(crop).Inc()

	case event.PlotHarvested:
		payload, err := event.DecodePayload[event.HarvestPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CropsHarvested.WithLabelValues(string(payload.Crop)).Inc()
		CoinsEarned.Add(float64(payload.Coins))

	case event.DayAdvanced:
		DaysAdvanced.Inc()

	case event.LevelUp:
		LevelUps.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
