package sse

import (
	"context"

	"github.com/osse101/Homestead_Go/internal/event"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// StreamedEventTypes are the bus events forwarded to game streams
var StreamedEventTypes = []event.Type{
	event.PlotPlanted,
	event.PlotWatered,
	event.PlotMatured,
	event.PlotWithered,
	event.PlotHarvested,
	event.PlotRemoved,
	event.DayAdvanced,
	event.LevelUp,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	for _, typ := range StreamedEventTypes {
		s.bus.Subscribe(typ, s.forward)
	}
	logger.Info("SSE subscriber registered", "types", StreamedEventTypes)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	ref, err := event.DecodePayload[sessionRef](evt.Payload)
	if err != nil || ref.SessionID == "" {
		log.Warn(LogMsgNoSessionID, "type", evt.Type)
		return nil
	}

	s.hub.Broadcast(ref.SessionID, string(evt.Type), evt.Payload)
	log.Debug(LogMsgEventBroadcast, "type", evt.Type, logger.AttrKeySessionID, ref.SessionID)
	return nil
}
