package progression

import "github.com/osse101/Homestead_Go/internal/domain"

// HarvestResult is the outcome of recording one harvest
type HarvestResult struct {
	State     domain.GameState `json:"state"`
	OldLevel  int              `json:"old_level"`
	NewLevel  int              `json:"new_level"`
	LeveledUp bool             `json:"leveled_up"`
}

// Tracker applies progression rules to a game state.
// It holds no state of its own; every method returns a new GameState.
type Tracker struct{}

// NewTracker creates a new progression tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// NewState returns the state of a fresh game
func (t *Tracker) NewState(startingCoins int) domain.GameState {
	return domain.GameState{
		Experience: 0,
		Day:        StartingDay,
		Coins:      startingCoins,
	}
}

// RecordHarvest credits experience and coins. The level-up check compares
// levels derived from experience before and after the award.
func (t *Tracker) RecordHarvest(state domain.GameState, experienceReward, sellValue int) HarvestResult {
	if experienceReward < 0 {
		experienceReward = 0
	}

	oldLevel := LevelFor(state.Experience)
	state.Experience += experienceReward
	state.Coins += sellValue
	newLevel := LevelFor(state.Experience)

	return HarvestResult{
		State:     state,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LeveledUp: newLevel > oldLevel,
	}
}

// AdvanceDay moves the day counter forward by one. Time passing neither
// costs nor earns anything.
func (t *Tracker) AdvanceDay(state domain.GameState) domain.GameState {
	state.Day++
	return state
}
