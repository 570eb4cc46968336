package handler

import (
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/farm"
	"github.com/osse101/Homestead_Go/internal/game"
	"github.com/osse101/Homestead_Go/internal/progression"
)

// PlotView is a plot as the renderer draws it
type PlotView struct {
	ID          int                `json:"id"`
	Crop        domain.CropKind    `json:"crop"`
	CropName    string             `json:"crop_name"`
	Glyph       string             `json:"glyph"`
	Stage       domain.GrowthStage `json:"stage"`
	DaysPlanted int                `json:"days_planted"`
	WaterLevel  int                `json:"water_level"`
	Health      int                `json:"health"`
	Progress    float64            `json:"progress"`
}

// GameView is the read-only snapshot returned by every game endpoint
type GameView struct {
	ID          string     `json:"id"`
	Day         int        `json:"day"`
	Level       int        `json:"level"`
	Experience  int        `json:"experience"`
	XPIntoLevel int        `json:"xp_into_level"`
	XPToNext    int        `json:"xp_to_next"`
	Coins       int        `json:"coins"`
	Plots       []PlotView `json:"plots"`
}

// ActionResponse is returned by every game action with status 200, whether
// or not the action applied
type ActionResponse struct {
	Applied   bool                  `json:"applied"`
	Reason    string                `json:"reason,omitempty"`
	LeveledUp bool                  `json:"leveled_up"`
	Reward    *domain.HarvestReward `json:"reward,omitempty"`
	Snapshot  GameView              `json:"snapshot"`
}

func newGameView(id string, snapshot domain.Snapshot) GameView {
	state := snapshot.State
	into, toNext := progression.XPProgress(state.Experience)

	plots := make([]PlotView, len(snapshot.Plots))
	for i, plot := range snapshot.Plots {
		def, _ := domain.LookupCrop(plot.Crop)
		plots[i] = PlotView{
			ID:          plot.ID,
			Crop:        plot.Crop,
			CropName:    def.Name,
			Glyph:       def.Glyph,
			Stage:       plot.Stage,
			DaysPlanted: plot.DaysPlanted,
			WaterLevel:  plot.WaterLevel,
			Health:      plot.Health,
			Progress:    farm.Progress(plot),
		}
	}

	return GameView{
		ID:          id,
		Day:         state.Day,
		Level:       progression.LevelFor(state.Experience),
		Experience:  state.Experience,
		XPIntoLevel: into,
		XPToNext:    toNext,
		Coins:       state.Coins,
		Plots:       plots,
	}
}

func newActionResponse(id string, result *game.ActionResult) ActionResponse {
	return ActionResponse{
		Applied:   result.Applied,
		Reason:    result.Reason,
		LeveledUp: result.LeveledUp,
		Reward:    result.Reward,
		Snapshot:  newGameView(id, result.Snapshot),
	}
}
