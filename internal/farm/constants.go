package farm

// Plot simulation tuning
const (
	PlantedWaterLevel = 50 // water level of a freshly planted plot
	WaterPerAction    = 40 // added by one watering, clamped to the max
	DailyEvaporation  = 15 // lost every daily tick, floored at zero
	DroughtDamage     = 20 // health lost on a tick that ends with no water

	// SellValue is the fixed number of coins paid for any harvested crop
	SellValue = 15
)

// Growth thresholds expressed as days planted / days to maturity
const (
	SproutProgress  = 0.2 // strictly above
	GrowingProgress = 0.5 // strictly above
	MatureProgress  = 1.0 // at or above
)

// Reasons reported when an action is declined
const (
	ReasonPlotOutOfRange = "plot does not exist"
	ReasonPlotOccupied   = "plot already has a crop"
	ReasonPlotEmpty      = "plot has no crop"
	ReasonNotPlantable   = "crop cannot be planted"
	ReasonNotMature      = "crop is not ready to harvest"
)
