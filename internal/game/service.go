package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/event"
	"github.com/osse101/Homestead_Go/internal/farm"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// Session is one player's farm as seen from outside the service
type Session struct {
	ID       string          `json:"id"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

// ActionResult is returned for every action on an existing session,
// whether or not the action changed anything
type ActionResult struct {
	Snapshot  domain.Snapshot       `json:"snapshot"`
	Applied   bool                  `json:"applied"`
	Reason    string                `json:"reason,omitempty"`
	Reward    *domain.HarvestReward `json:"reward,omitempty"`
	LeveledUp bool                  `json:"leveled_up"`
}

// Config sizes new games and the session store
type Config struct {
	PlotCount     int
	StartingCoins int
}

// Service runs game sessions. Errors are returned only for boundary
// failures (unknown session, plot or crop); rule-level refusals come back as
// an ActionResult with Applied=false.
type Service interface {
	// NewGame starts a session with an empty grid and the starting balance
	NewGame(ctx context.Context) (*Session, error)

	// Get returns the current snapshot of a session
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Exists reports whether a session is live
	Exists(ctx context.Context, sessionID string) bool

	Plant(ctx context.Context, sessionID string, plotID int, crop domain.CropKind) (*ActionResult, error)
	Water(ctx context.Context, sessionID string, plotID int) (*ActionResult, error)
	AdvanceDay(ctx context.Context, sessionID string) (*ActionResult, error)
	Harvest(ctx context.Context, sessionID string, plotID int) (*ActionResult, error)
	Remove(ctx context.Context, sessionID string, plotID int) (*ActionResult, error)
}

type service struct {
	cfg   Config
	store *Store
	bus   event.Bus
}

// NewService creates a game service on top of a session store.
// bus may be nil, in which case no events are published.
func NewService(cfg Config, store *Store, bus event.Bus) Service {
	if cfg.PlotCount <= 0 {
		cfg.PlotCount = domain.DefaultPlotCount
	}
	return &service{
		cfg:   cfg,
		store: store,
		bus:   bus,
	}
}

func (s *service) NewGame(ctx context.Context) (*Session, error) {
	snapshot := NewSnapshot(s.cfg.PlotCount, s.cfg.StartingCoins)
	id := s.store.Create(snapshot)

	logger.FromContext(ctx).Info(LogMsgGameStarted,
		logger.AttrKeySessionID, id,
		"plots", s.cfg.PlotCount,
		"coins", s.cfg.StartingCoins)

	s.publish(ctx, event.NewGameStartedEvent(id, s.cfg.PlotCount, s.cfg.StartingCoins))

	return &Session{ID: id, Snapshot: snapshot}, nil
}

func (s *service) Get(_ context.Context, sessionID string) (*Session, error) {
	snapshot, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &Session{ID: sessionID, Snapshot: snapshot}, nil
}

func (s *service) Exists(_ context.Context, sessionID string) bool {
	_, err := s.store.Get(sessionID)
	return err == nil
}

func (s *service) Plant(ctx context.Context, sessionID string, plotID int, crop domain.CropKind) (*ActionResult, error) {
	if _, ok := domain.LookupCrop(crop); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCrop, crop)
	}
	return s.act(ctx, sessionID, Action{Kind: domain.ActionPlant, PlotID: plotID, Crop: crop})
}

func (s *service) Water(ctx context.Context, sessionID string, plotID int) (*ActionResult, error) {
	return s.act(ctx, sessionID, Action{Kind: domain.ActionWater, PlotID: plotID})
}

func (s *service) AdvanceDay(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(ctx, sessionID, Action{Kind: domain.ActionAdvanceDay})
}

func (s *service) Harvest(ctx context.Context, sessionID string, plotID int) (*ActionResult, error) {
	return s.act(ctx, sessionID, Action{Kind: domain.ActionHarvest, PlotID: plotID})
}

func (s *service) Remove(ctx context.Context, sessionID string, plotID int) (*ActionResult, error) {
	return s.act(ctx, sessionID, Action{Kind: domain.ActionRemove, PlotID: plotID})
}

// act applies one action under the session lock, then publishes events for
// the committed snapshot
func (s *service) act(ctx context.Context, sessionID string, action Action) (*ActionResult, error) {
	log := logger.FromContext(ctx).With(logger.AttrKeySessionID, sessionID, "action", action.Kind)

	var step Step
	var plotErr error
	var before domain.Snapshot

	_, err := s.store.Update(sessionID, func(current domain.Snapshot) domain.Snapshot {
		if action.Kind != domain.ActionAdvanceDay && (action.PlotID < 0 || action.PlotID >= len(current.Plots)) {
			plotErr = fmt.Errorf("%w: plot %d of %d", domain.ErrPlotNotFound, action.PlotID, len(current.Plots))
			return current
		}
		before = current
		step = Apply(current, action)
		return step.Snapshot
	})
	if err != nil {
		return nil, err
	}
	if plotErr != nil {
		return nil, plotErr
	}

	if !step.Outcome.Applied {
		log.Debug(LogMsgActionDeclined, "plot_id", action.PlotID, "reason", step.Outcome.Reason)
	} else {
		log.Info(LogMsgActionApplied, "plot_id", action.PlotID, "day", step.Snapshot.State.Day)
		s.checkInvariants(log, step.Snapshot)
		s.publishStep(ctx, sessionID, action, before, step)
	}

	return &ActionResult{
		Snapshot:  step.Snapshot,
		Applied:   step.Outcome.Applied,
		Reason:    step.Outcome.Reason,
		Reward:    step.Reward,
		LeveledUp: step.LeveledUp,
	}, nil
}

func (s *service) publishStep(ctx context.Context, sessionID string, action Action, before domain.Snapshot, step Step) {
	day := step.Snapshot.State.Day

	switch action.Kind {
	case domain.ActionPlant:
		plot := step.Snapshot.Plots[action.PlotID]
		s.publish(ctx, event.NewPlotEvent(event.PlotPlanted, sessionID, plot, plot.Crop, day))

	case domain.ActionWater:
		plot := step.Snapshot.Plots[action.PlotID]
		s.publish(ctx, event.NewPlotEvent(event.PlotWatered, sessionID, plot, plot.Crop, day))

	case domain.ActionRemove:
		crop := before.Plots[action.PlotID].Crop
		s.publish(ctx, event.NewPlotEvent(event.PlotRemoved, sessionID, step.Snapshot.Plots[action.PlotID], crop, day))

	case domain.ActionHarvest:
		s.publish(ctx, event.NewHarvestEvent(sessionID, action.PlotID, *step.Reward, day))
		if step.LeveledUp {
			s.publish(ctx, event.NewLevelUpEvent(sessionID, step.OldLevel, step.NewLevel, step.Snapshot.State.Experience))
		}

	case domain.ActionAdvanceDay:
		matured, withered := 0, 0
		for _, tr := range step.Transitions {
			plot := step.Snapshot.Plots[tr.PlotID]
			switch tr.To {
			case domain.StageMature:
				matured++
				s.publish(ctx, event.NewPlotEvent(event.PlotMatured, sessionID, plot, tr.Crop, day))
			case domain.StageWithered:
				withered++
				s.publish(ctx, event.NewPlotEvent(event.PlotWithered, sessionID, plot, tr.Crop, day))
			}
		}
		s.publish(ctx, event.NewDayAdvancedEvent(sessionID, day, matured, withered))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) checkInvariants(log *slog.Logger, snapshot domain.Snapshot) {
	for _, plot := range snapshot.Plots {
		if err := farm.Validate(plot); err != nil {
			log.Error(LogMsgInvariantViolated, "error", err)
		}
	}
}
