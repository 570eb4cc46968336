package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/osse101/Homestead_Go/internal/domain"
)

// Resolver maps free-text crop names onto crop kinds
type Resolver interface {
	// Resolve converts a typed crop name (kind, display name or alias) to its kind.
	// Close misspellings resolve too; the empty-plot sentinel never does.
	Resolve(name string) (domain.CropKind, bool)

	// Suggest returns up to MaxSuggestions crop kinds that look like name
	Suggest(name string) []domain.CropKind

	// RegisterAlias adds an alternative name for a crop kind
	RegisterAlias(alias string, kind domain.CropKind)
}

type candidate struct {
	alias string
	kind  domain.CropKind
}

type resolver struct {
	mu      sync.RWMutex
	aliases map[string]domain.CropKind
}

// NewResolver creates a resolver seeded with every plantable crop and the default aliases
func NewResolver() Resolver {
	r := &resolver{
		aliases: make(map[string]domain.CropKind),
	}

	for _, def := range domain.PlantableCrops() {
		r.aliases[r.normalize(string(def.Kind))] = def.Kind
		r.aliases[r.normalize(def.Name)] = def.Kind
	}
	for alias, kind := range defaultAliases {
		r.aliases[r.normalize(alias)] = kind
	}

	return r
}

// normalize case-folds a name. Casers are stateful, so each call gets its own.
func (r *resolver) normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (r *resolver) Resolve(name string) (domain.CropKind, bool) {
	key := r.normalize(name)
	if key == "" {
		return domain.CropNone, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if kind, ok := r.aliases[key]; ok {
		return kind, true
	}

	if len(key) < MinFuzzyLength {
		return domain.CropNone, false
	}

	ranked := r.rank(key, 0)
	if len(ranked) == 0 {
		return domain.CropNone, false
	}
	best := ranked[0]
	for _, m := range ranked[1:] {
		if m.dist > best.dist {
			break
		}
		// two different crops equally close
		if m.kind != best.kind {
			return domain.CropNone, false
		}
	}
	return best.kind, true
}

func (r *resolver) Suggest(name string) []domain.CropKind {
	key := r.normalize(name)
	if key == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ranked := r.rank(key, 1)
	suggestions := make([]domain.CropKind, 0, MaxSuggestions)
	seen := make(map[domain.CropKind]bool)
	for _, m := range ranked {
		if seen[m.kind] {
			continue
		}
		seen[m.kind] = true
		suggestions = append(suggestions, m.kind)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}

func (r *resolver) RegisterAlias(alias string, kind domain.CropKind) {
	if !kind.IsPlantable() {
		return
	}
	key := r.normalize(alias)
	if key == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[key] = kind
}

type match struct {
	candidate
	dist int
}

// rank returns the aliases within their distance limit (plus slack), closest first.
// Caller must hold the read lock.
func (r *resolver) rank(key string, slack int) []match {
	var matches []match
	for alias, kind := range r.aliases {
		dist := levenshtein.ComputeDistance(key, alias)
		if dist > levenshteinLimit(len(alias))+slack {
			continue
		}
		matches = append(matches, match{candidate: candidate{alias: alias, kind: kind}, dist: dist})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist == matches[j].dist {
			if matches[i].kind == matches[j].kind {
				return matches[i].alias < matches[j].alias
			}
			return matches[i].kind < matches[j].kind
		}
		return matches[i].dist < matches[j].dist
	})
	return matches
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
