package game

import (
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/farm"
	"github.com/osse101/Homestead_Go/internal/progression"
)

// Action is one player command against a snapshot
type Action struct {
	Kind   string          `json:"kind"`
	PlotID int             `json:"plot_id"`
	Crop   domain.CropKind `json:"crop,omitempty"`
}

// Step is everything one action produced: the next snapshot plus what the
// session layer needs to report and publish
type Step struct {
	Snapshot    domain.Snapshot
	Outcome     farm.Outcome
	Reward      *domain.HarvestReward
	OldLevel    int
	NewLevel    int
	LeveledUp   bool
	Transitions []farm.Transition
}

var (
	engine  = farm.NewEngine()
	tracker = progression.NewTracker()
)

// NewSnapshot builds the snapshot of a fresh game
func NewSnapshot(plotCount, startingCoins int) domain.Snapshot {
	return domain.Snapshot{
		Plots: engine.NewPlots(plotCount),
		State: tracker.NewState(startingCoins),
	}
}

// Apply maps a snapshot and an action to the next snapshot. The input is
// never modified; a declined action returns a copy equal to the input.
func Apply(snapshot domain.Snapshot, action Action) Step {
	level := progression.LevelFor(snapshot.State.Experience)
	step := Step{
		Snapshot: snapshot.Clone(),
		OldLevel: level,
		NewLevel: level,
	}

	switch action.Kind {
	case domain.ActionPlant:
		step.Snapshot.Plots, step.Outcome = engine.Plant(step.Snapshot.Plots, action.PlotID, action.Crop)

	case domain.ActionWater:
		step.Snapshot.Plots, step.Outcome = engine.Water(step.Snapshot.Plots, action.PlotID)

	case domain.ActionRemove:
		step.Snapshot.Plots, step.Outcome = engine.Remove(step.Snapshot.Plots, action.PlotID)

	case domain.ActionAdvanceDay:
		step.Snapshot.Plots, step.Transitions = engine.AdvanceDay(step.Snapshot.Plots)
		step.Snapshot.State = tracker.AdvanceDay(step.Snapshot.State)
		step.Outcome = farm.Outcome{Applied: true}

	case domain.ActionHarvest:
		plots, reward, outcome := engine.Harvest(step.Snapshot.Plots, action.PlotID)
		step.Outcome = outcome
		if !outcome.Applied {
			break
		}
		result := tracker.RecordHarvest(step.Snapshot.State, reward.Experience, reward.Coins)
		step.Snapshot.Plots = plots
		step.Snapshot.State = result.State
		step.Reward = reward
		step.OldLevel = result.OldLevel
		step.NewLevel = result.NewLevel
		step.LeveledUp = result.LeveledUp

	default:
		step.Outcome = farm.Outcome{Applied: false, Reason: ReasonUnknownAction}
	}

	return step
}
