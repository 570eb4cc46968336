package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Homestead_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	GameStarted   Type = domain.EventTypeGameStarted
	PlotPlanted   Type = domain.EventTypePlotPlanted
	PlotWatered   Type = domain.EventTypePlotWatered
	PlotMatured   Type = domain.EventTypePlotMatured
	PlotWithered  Type = domain.EventTypePlotWithered
	PlotHarvested Type = domain.EventTypePlotHarvested
	PlotRemoved   Type = domain.EventTypePlotRemoved
	DayAdvanced   Type = domain.EventTypeDayAdvanced
	LevelUp       Type = domain.EventTypeLevelUp
)

// Typed event payloads for type safety

// GameStartedPayloadV1 is the typed payload for game started events
type GameStartedPayloadV1 struct {
	SessionID string `json:"session_id"`
	PlotCount int    `json:"plot_count"`
	Coins     int    `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// PlotPayloadV1 is the typed payload for single-plot events
// (planted, watered, matured, withered, removed)
type PlotPayloadV1 struct {
	SessionID string             `json:"session_id"`
	PlotID    int                `json:"plot_id"`
	Crop      domain.CropKind    `json:"crop"`
	Stage     domain.GrowthStage `json:"stage"`
	Day       int                `json:"day"`
	Timestamp int64              `json:"timestamp"`
}

// HarvestPayloadV1 is the typed payload for harvest events
type HarvestPayloadV1 struct {
	SessionID  string          `json:"session_id"`
	PlotID     int             `json:"plot_id"`
	Crop       domain.CropKind `json:"crop"`
	Experience int             `json:"experience"`
	Coins      int             `json:"coins"`
	Day        int             `json:"day"`
	Timestamp  int64           `json:"timestamp"`
}

// DayAdvancedPayloadV1 is the typed payload for daily tick events
type DayAdvancedPayloadV1 struct {
	SessionID string `json:"session_id"`
	Day       int    `json:"day"`
	Matured   int    `json:"matured"`
	Withered  int    `json:"withered"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	SessionID  string `json:"session_id"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Experience int    `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewGameStartedEvent creates a new game started event
func NewGameStartedEvent(sessionID string, plotCount, coins int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameStarted,
		Payload: GameStartedPayloadV1{
			SessionID: sessionID,
			PlotCount: plotCount,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlotEvent creates a single-plot event of the given type
func NewPlotEvent(eventType Type, sessionID string, plot domain.Plot, crop domain.CropKind, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: PlotPayloadV1{
			SessionID: sessionID,
			PlotID:    plot.ID,
			Crop:      crop,
			Stage:     plot.Stage,
			Day:       day,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"crop": string(crop),
		},
	}
}

// NewHarvestEvent creates a new harvest event
func NewHarvestEvent(sessionID string, plotID int, reward domain.HarvestReward, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlotHarvested,
		Payload: HarvestPayloadV1{
			SessionID:  sessionID,
			PlotID:     plotID,
			Crop:       reward.Crop,
			Experience: reward.Experience,
			Coins:      reward.Coins,
			Day:        day,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"crop": string(reward.Crop),
		},
	}
}

// NewDayAdvancedEvent creates a new day advanced event
func NewDayAdvancedEvent(sessionID string, day, matured, withered int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayAdvanced,
		Payload: DayAdvancedPayloadV1{
			SessionID: sessionID,
			Day:       day,
			Matured:   matured,
			Withered:  withered,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(sessionID string, oldLevel, newLevel, experience int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			SessionID:  sessionID,
			OldLevel:   oldLevel,
			NewLevel:   newLevel,
			Experience: experience,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
