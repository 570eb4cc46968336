package farm

import (
	"fmt"

	"github.com/osse101/Homestead_Go/internal/domain"
)

// Outcome reports whether an action changed anything.
// A declined action is not an error; Reason says why nothing happened.
type Outcome struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func declined(reason string) Outcome {
	return Outcome{Applied: false, Reason: reason}
}

// Transition records a stage change produced by a daily tick
type Transition struct {
	PlotID int                `json:"plot_id"`
	Crop   domain.CropKind    `json:"crop"`
	From   domain.GrowthStage `json:"from"`
	To     domain.GrowthStage `json:"to"`
}

// Engine provides pure plot lifecycle logic (no storage, no side effects).
// Every method leaves its input slice untouched and returns a new one.
type Engine struct{}

// NewEngine creates a new plot lifecycle engine
func NewEngine() *Engine {
	return &Engine{}
}

// NewPlots creates a grid of count empty plots with ids 0..count-1
func (e *Engine) NewPlots(count int) []domain.Plot {
	if count < 0 {
		count = 0
	}
	plots := make([]domain.Plot, count)
	for i := range plots {
		plots[i] = domain.NewEmptyPlot(i)
	}
	return plots
}

// Plant puts a crop on an empty plot
func (e *Engine) Plant(plots []domain.Plot, plotID int, kind domain.CropKind) ([]domain.Plot, Outcome) {
	if !inRange(plots, plotID) {
		return plots, declined(ReasonPlotOutOfRange)
	}
	if !kind.IsPlantable() {
		return plots, declined(ReasonNotPlantable)
	}
	if !plots[plotID].IsEmpty() {
		return plots, declined(ReasonPlotOccupied)
	}

	next := clonePlots(plots)
	next[plotID] = domain.Plot{
		ID:          plotID,
		Crop:        kind,
		Stage:       domain.StageSeed,
		DaysPlanted: 0,
		WaterLevel:  PlantedWaterLevel,
		Health:      domain.FullHealth,
	}
	return next, applied()
}

// Water raises the water level of an occupied plot.
// Withered crops accept water but never recover.
func (e *Engine) Water(plots []domain.Plot, plotID int) ([]domain.Plot, Outcome) {
	if !inRange(plots, plotID) {
		return plots, declined(ReasonPlotOutOfRange)
	}
	if plots[plotID].IsEmpty() {
		return plots, declined(ReasonPlotEmpty)
	}

	next := clonePlots(plots)
	next[plotID].WaterLevel = min(domain.MaxWaterLevel, next[plotID].WaterLevel+WaterPerAction)
	return next, applied()
}

// AdvanceDay runs one daily tick over every plot. Each plot is computed only
// from its own previous state.
func (e *Engine) AdvanceDay(plots []domain.Plot) ([]domain.Plot, []Transition) {
	next := clonePlots(plots)
	var transitions []Transition

	for i, plot := range plots {
		if plot.IsEmpty() {
			continue
		}
		ticked := tickPlot(plot)
		if ticked.Stage != plot.Stage {
			transitions = append(transitions, Transition{
				PlotID: plot.ID,
				Crop:   plot.Crop,
				From:   plot.Stage,
				To:     ticked.Stage,
			})
		}
		next[i] = ticked
	}

	return next, transitions
}

func tickPlot(plot domain.Plot) domain.Plot {
	plot.WaterLevel = max(domain.MinWaterLevel, plot.WaterLevel-DailyEvaporation)
	plot.DaysPlanted++

	if plot.Stage == domain.StageWithered {
		return plot
	}

	if plot.WaterLevel == 0 {
		plot.Health -= DroughtDamage
	}

	if plot.Health <= 0 {
		plot.Stage = domain.StageWithered
		return plot
	}

	if plot.Stage == domain.StageMature {
		return plot
	}

	def, _ := domain.LookupCrop(plot.Crop)
	plot.Stage = StageFor(plot.DaysPlanted, def.DaysToMaturity, plot.Health)
	return plot
}

// Harvest clears a mature plot and returns what it yielded
func (e *Engine) Harvest(plots []domain.Plot, plotID int) ([]domain.Plot, *domain.HarvestReward, Outcome) {
	if !inRange(plots, plotID) {
		return plots, nil, declined(ReasonPlotOutOfRange)
	}
	plot := plots[plotID]
	if plot.IsEmpty() {
		return plots, nil, declined(ReasonPlotEmpty)
	}
	if plot.Stage != domain.StageMature {
		return plots, nil, declined(ReasonNotMature)
	}

	def, _ := domain.LookupCrop(plot.Crop)
	reward := &domain.HarvestReward{
		Crop:       plot.Crop,
		Experience: def.ExperienceGain,
		Coins:      SellValue,
	}

	next := clonePlots(plots)
	next[plotID] = domain.NewEmptyPlot(plotID)
	return next, reward, applied()
}

// Remove clears an occupied plot in any stage without reward
func (e *Engine) Remove(plots []domain.Plot, plotID int) ([]domain.Plot, Outcome) {
	if !inRange(plots, plotID) {
		return plots, declined(ReasonPlotOutOfRange)
	}
	if plots[plotID].IsEmpty() {
		return plots, declined(ReasonPlotEmpty)
	}

	next := clonePlots(plots)
	next[plotID] = domain.NewEmptyPlot(plotID)
	return next, applied()
}

// Validate checks the plot invariants
func Validate(plot domain.Plot) error {
	if plot.WaterLevel < domain.MinWaterLevel || plot.WaterLevel > domain.MaxWaterLevel {
		return fmt.Errorf("plot %d: water level %d out of range", plot.ID, plot.WaterLevel)
	}
	if plot.IsEmpty() {
		if plot.Stage != domain.StageSeed || plot.DaysPlanted != 0 || plot.WaterLevel != 0 {
			return fmt.Errorf("plot %d: empty plot carries growth state (stage=%s days=%d water=%d)",
				plot.ID, plot.Stage, plot.DaysPlanted, plot.WaterLevel)
		}
		return nil
	}
	if _, ok := domain.LookupCrop(plot.Crop); !ok {
		return fmt.Errorf("plot %d: %w: %s", plot.ID, domain.ErrUnknownCrop, plot.Crop)
	}
	if plot.DaysPlanted < 0 {
		return fmt.Errorf("plot %d: negative days planted", plot.ID)
	}
	return nil
}

func inRange(plots []domain.Plot, plotID int) bool {
	return plotID >= 0 && plotID < len(plots)
}

func clonePlots(plots []domain.Plot) []domain.Plot {
	next := make([]domain.Plot, len(plots))
	copy(next, plots)
	return next
}
