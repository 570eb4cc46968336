package naming

import "github.com/osse101/Homestead_Go/internal/domain"

// MinFuzzyLength is the shortest input considered for fuzzy matching
const MinFuzzyLength = 3

// MaxSuggestions caps the suggestions returned for an unknown crop name
const MaxSuggestions = 3

// defaultAliases maps common alternative names onto crop kinds
var defaultAliases = map[string]domain.CropKind{
	"corn":     domain.CropMaize,
	"mealies":  domain.CropMaize,
	"chibage":  domain.CropMaize,
	"tomatoes": domain.CropTomato,
	"madomasi": domain.CropTomato,
	"covo":     domain.CropRape,
	"onions":   domain.CropOnion,
}
