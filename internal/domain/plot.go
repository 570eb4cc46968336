package domain

// GrowthStage is the lifecycle position of a planted crop
type GrowthStage string

// Growth stages in progression order. StageWithered is terminal.
const (
	StageSeed     GrowthStage = "SEED"
	StageSprout   GrowthStage = "SPROUT"
	StageGrowing  GrowthStage = "GROWING"
	StageMature   GrowthStage = "MATURE"
	StageWithered GrowthStage = "WITHERED"
)

// Plot bounds
const (
	MinWaterLevel = 0
	MaxWaterLevel = 100
	FullHealth    = 100
)

// Plot is one cell of the farm grid
type Plot struct {
	ID          int         `json:"id"`
	Crop        CropKind    `json:"crop"`
	Stage       GrowthStage `json:"stage"`
	DaysPlanted int         `json:"days_planted"`
	WaterLevel  int         `json:"water_level"`
	Health      int         `json:"health"`
}

// NewEmptyPlot returns an unplanted plot with the given id
func NewEmptyPlot(id int) Plot {
	return Plot{
		ID:          id,
		Crop:        CropNone,
		Stage:       StageSeed,
		DaysPlanted: 0,
		WaterLevel:  0,
		Health:      FullHealth,
	}
}

// IsEmpty reports whether the plot holds no crop
func (p Plot) IsEmpty() bool {
	return p.Crop == CropNone
}
