package farm

import "github.com/osse101/Homestead_Go/internal/domain"

// StageFor computes the growth stage of a living or dead crop from scratch.
// Health at or below zero always means withered; otherwise the stage follows
// the ratio of days planted to days to maturity.
func StageFor(daysPlanted, daysToMaturity, health int) domain.GrowthStage {
	if health <= 0 {
		return domain.StageWithered
	}
	if daysToMaturity <= 0 {
		return domain.StageSeed
	}

	progress := float64(daysPlanted) / float64(daysToMaturity)
	switch {
	case progress >= MatureProgress:
		return domain.StageMature
	case progress > GrowingProgress:
		return domain.StageGrowing
	case progress > SproutProgress:
		return domain.StageSprout
	default:
		return domain.StageSeed
	}
}

// Progress returns days planted as a fraction of days to maturity, capped at 1
func Progress(plot domain.Plot) float64 {
	def, ok := domain.LookupCrop(plot.Crop)
	if !ok || def.DaysToMaturity <= 0 {
		return 0
	}
	p := float64(plot.DaysPlanted) / float64(def.DaysToMaturity)
	if p > 1 {
		return 1
	}
	return p
}
