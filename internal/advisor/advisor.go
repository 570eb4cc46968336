package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// ErrDisabled is returned by the disabled backend
var ErrDisabled = errors.New("advisor backend not configured")

// Advisor answers free-text farming questions. It never fails: any backend
// problem degrades to FallbackMessage. It has no access to game state.
type Advisor interface {
	// Ask forwards a free-text question
	Ask(ctx context.Context, query string) string

	// Identify asks about a specific problem with a crop
	Identify(ctx context.Context, crop domain.CropKind, problem string) string

	// Guide asks for a growing guide for a plantable crop
	Guide(ctx context.Context, crop domain.CropKind) string
}

// Backend produces a completion for a system prompt and a user message
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type service struct {
	backend Backend
	timeout time.Duration
}

// NewService creates an advisor on top of a completion backend
func NewService(backend Backend, timeout time.Duration) Advisor {
	if backend == nil {
		backend = disabledBackend{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		backend: backend,
		timeout: timeout,
	}
}

func (s *service) Ask(ctx context.Context, query string) string {
	return s.complete(ctx, clip(query))
}

func (s *service) Identify(ctx context.Context, crop domain.CropKind, problem string) string {
	problem = clip(problem)
	if problem == "" {
		return FallbackMessage
	}

	name := "unknown"
	if def, ok := domain.LookupCrop(crop); ok && crop.IsPlantable() {
		name = def.Name
	}
	return s.complete(ctx, fmt.Sprintf(identifyTemplate, name, problem))
}

func (s *service) Guide(ctx context.Context, crop domain.CropKind) string {
	def, ok := domain.LookupCrop(crop)
	if !ok || !crop.IsPlantable() {
		return FallbackMessage
	}
	return s.complete(ctx, fmt.Sprintf(guideTemplate, def.Name, def.Description, def.DaysToMaturity, def.WaterNeed))
}

// clip trims user text and caps it at MaxQueryLength runes
func clip(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= MaxQueryLength {
		return text
	}
	n := 0
	for i := range text {
		if n == MaxQueryLength {
			return strings.TrimSpace(text[:i])
		}
		n++
	}
	return text
}

func (s *service) complete(ctx context.Context, query string) string {
	log := logger.FromContext(ctx)

	if query == "" {
		return FallbackMessage
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.backend.Complete(ctx, systemPrompt, query)
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			log.Debug(LogMsgAdvisorDisabled)
		} else {
			log.Warn(LogMsgAdvisorFailed, "error", err)
		}
		return FallbackMessage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn(LogMsgAdvisorEmpty)
		return FallbackMessage
	}
	return text
}

type disabledBackend struct{}

func (disabledBackend) Complete(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}
