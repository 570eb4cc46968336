package domain

// HarvestReward is what a mature plot yields when harvested
type HarvestReward struct {
	Crop       CropKind `json:"crop"`
	Experience int      `json:"experience"`
	Coins      int      `json:"coins"`
}
