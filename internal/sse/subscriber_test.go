package sse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/event"
)

func TestSubscriber_ForwardsToSession(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register("farm-1", nil)
	waitForClients(t, hub, 1)

	plot := domain.Plot{ID: 2, Crop: domain.CropTomato, Stage: domain.StageMature, DaysPlanted: 7, WaterLevel: 30, Health: 100}
	require.NoError(t, bus.Publish(context.Background(), event.NewPlotEvent(event.PlotMatured, "farm-1", plot, plot.Crop, 8)))
	require.NoError(t, bus.Publish(context.Background(), event.NewDayAdvancedEvent("farm-2", 8, 0, 0)))

	evt, ok := receive(t, client)
	require.True(t, ok)
	assert.Equal(t, string(event.PlotMatured), evt.Type)
	payload, ok := evt.Payload.(event.PlotPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 2, payload.PlotID)

	_, ok = receive(t, client)
	assert.False(t, ok)
}

func TestSubscriber_IgnoresPayloadWithoutSession(t *testing.T) {
	hub := NewHub()
	s := NewSubscriber(hub, event.NewMemoryBus())

	err := s.forward(context.Background(), event.Event{Type: event.DayAdvanced, Payload: "garbage"})

	assert.NoError(t, err)
	assert.Empty(t, hub.broadcast)
}
