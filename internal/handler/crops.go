package handler

import (
	"net/http"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/farm"
)

// CropsResponse lists the plantable crops
type CropsResponse struct {
	Crops     []domain.CropDefinition `json:"crops"`
	SellValue int                     `json:"sell_value"`
}

// HandleGetCrops returns the crop catalog
// @Summary List crops
// @Description Every plantable crop with its growth time, water need and experience reward
// @Tags crops
// @Produce json
// @Success 200 {object} CropsResponse
// @Router /crops [get]
func HandleGetCrops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CropsResponse{
			Crops:     domain.PlantableCrops(),
			SellValue: farm.SellValue,
		})
	}
}
