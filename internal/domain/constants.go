package domain

// Session defaults
const (
	DefaultPlotCount     = 9
	DefaultStartingCoins = 100
	MaxPlotCount         = 64
)

// Action names used in logs, metrics labels and action results
const (
	ActionPlant      = "plant"
	ActionWater      = "water"
	ActionAdvanceDay = "advance_day"
	ActionHarvest    = "harvest"
	ActionRemove     = "remove"
)
