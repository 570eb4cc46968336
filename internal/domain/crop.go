package domain

import "sort"

// CropKind identifies a crop definition
type CropKind string

// Crop kinds. CropNone is the sentinel held by empty plots.
const (
	CropNone    CropKind = "none"
	CropMaize   CropKind = "maize"
	CropTomato  CropKind = "tomato"
	CropRape    CropKind = "rape"
	CropSpinach CropKind = "spinach"
	CropOnion   CropKind = "onion"
)

// CropDefinition is the static description of a crop kind
type CropDefinition struct {
	Kind           CropKind `json:"kind"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DaysToMaturity int      `json:"days_to_maturity"`
	WaterNeed      int      `json:"water_need"` // 1-10, advisory only
	ExperienceGain int      `json:"experience_gain"`
	Glyph          string   `json:"glyph"`
}

var cropCatalog = map[CropKind]CropDefinition{
	CropNone: {
		Kind: CropNone, Name: "Empty Plot", Description: "Ready for planting.",
		DaysToMaturity: 0, WaterNeed: 0, ExperienceGain: 0, Glyph: "🟫",
	},
	CropMaize: {
		Kind: CropMaize, Name: "Maize (Chibage)", Description: "The staple crop of Zimbabwe. Needs good sunlight and regular watering.",
		DaysToMaturity: 10, WaterNeed: 6, ExperienceGain: 50, Glyph: "🌽",
	},
	CropTomato: {
		Kind: CropTomato, Name: "Tomato (Madomasi)", Description: "Great for relish. Susceptible to pests, keep leaves dry.",
		DaysToMaturity: 7, WaterNeed: 8, ExperienceGain: 35, Glyph: "🍅",
	},
	CropRape: {
		Kind: CropRape, Name: "Rape / Covo", Description: "Fast-growing leafy green, essential for daily meals.",
		DaysToMaturity: 4, WaterNeed: 7, ExperienceGain: 20, Glyph: "🥬",
	},
	CropSpinach: {
		Kind: CropSpinach, Name: "Spinach", Description: "Nutritious and loves nitrogen-rich soil.",
		DaysToMaturity: 5, WaterNeed: 9, ExperienceGain: 25, Glyph: "🌿",
	},
	CropOnion: {
		Kind: CropOnion, Name: "Onion", Description: "Low maintenance, good for maximizing small spaces.",
		DaysToMaturity: 8, WaterNeed: 4, ExperienceGain: 30, Glyph: "🧅",
	},
}

// LookupCrop returns the definition for a crop kind
func LookupCrop(kind CropKind) (CropDefinition, bool) {
	def, ok := cropCatalog[kind]
	return def, ok
}

// IsPlantable reports whether kind is a known crop other than the sentinel
func (k CropKind) IsPlantable() bool {
	if k == CropNone {
		return false
	}
	_, ok := cropCatalog[k]
	return ok
}

// PlantableCrops returns every definition except the sentinel, ordered by kind
func PlantableCrops() []CropDefinition {
	defs := make([]CropDefinition, 0, len(cropCatalog)-1)
	for kind, def := range cropCatalog {
		if kind == CropNone {
			continue
		}
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Kind < defs[j].Kind
	})
	return defs
}
