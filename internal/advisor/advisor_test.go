package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/domain"
)

type fakeBackend struct {
	reply  string
	err    error
	calls  int
	system string
	user   string
	block  bool
}

func (f *fakeBackend) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func TestAsk_ReturnsBackendText(t *testing.T) {
	backend := &fakeBackend{reply: "  Water your maize every other day.  "}
	adv := NewService(backend, time.Second)

	answer := adv.Ask(context.Background(), "How often should I water maize?")

	assert.Equal(t, "Water your maize every other day.", answer)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, systemPrompt, backend.system)
	assert.Equal(t, "How often should I water maize?", backend.user)
}

func TestAsk_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		backend   *fakeBackend
		query     string
		wantCalls int
	}{
		{"backend error", &fakeBackend{err: errors.New("503 service unavailable")}, "why is my onion yellow", 1},
		{"disabled backend", &fakeBackend{err: ErrDisabled}, "hello", 1},
		{"empty completion", &fakeBackend{reply: "   "}, "hello", 1},
		{"empty query", &fakeBackend{reply: "unused"}, "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := NewService(tt.backend, time.Second)
			assert.Equal(t, FallbackMessage, adv.Ask(context.Background(), tt.query))
			assert.Equal(t, tt.wantCalls, tt.backend.calls)
		})
	}
}

func TestAsk_TimeoutFallsBack(t *testing.T) {
	backend := &fakeBackend{block: true}
	adv := NewService(backend, 10*time.Millisecond)

	assert.Equal(t, FallbackMessage, adv.Ask(context.Background(), "anyone there?"))
}

func TestAsk_TruncatesLongQueries(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	adv := NewService(backend, time.Second)

	adv.Ask(context.Background(), strings.Repeat("a", MaxQueryLength+50))

	assert.Len(t, backend.user, MaxQueryLength)
}

func TestAsk_TruncatesOnCharacterBoundary(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	adv := NewService(backend, time.Second)

	adv.Ask(context.Background(), "a"+strings.Repeat("🌽", 400))
	assert.True(t, utf8.ValidString(backend.user))
	assert.Equal(t, 401, utf8.RuneCountInString(backend.user))

	adv.Ask(context.Background(), "a"+strings.Repeat("🌽", MaxQueryLength+10))
	assert.True(t, utf8.ValidString(backend.user))
	assert.Equal(t, MaxQueryLength, utf8.RuneCountInString(backend.user))
	assert.True(t, strings.HasSuffix(backend.user, "🌽"))
}

func TestNilBackendIsDisabled(t *testing.T) {
	adv := NewService(nil, 0)
	assert.Equal(t, FallbackMessage, adv.Ask(context.Background(), "hello"))
}

func TestIdentify(t *testing.T) {
	backend := &fakeBackend{reply: "Drought stress. Water it now."}
	adv := NewService(backend, time.Second)

	answer := adv.Identify(context.Background(), domain.CropRape, "leaves are curling")

	assert.Equal(t, "Drought stress. Water it now.", answer)
	require.Equal(t, 1, backend.calls)
	assert.Contains(t, backend.user, "Rape / Covo")
	assert.Contains(t, backend.user, "leaves are curling")
}

func TestIdentify_UnknownCropAndEmptyProblem(t *testing.T) {
	backend := &fakeBackend{reply: "Hard to say."}
	adv := NewService(backend, time.Second)

	adv.Identify(context.Background(), domain.CropNone, "brown spots")
	assert.Contains(t, backend.user, "unknown")

	assert.Equal(t, FallbackMessage, adv.Identify(context.Background(), domain.CropMaize, ""))
	assert.Equal(t, 1, backend.calls)
}

func TestIdentify_LongProblemKeepsQuestion(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	adv := NewService(backend, time.Second)

	adv.Identify(context.Background(), domain.CropTomato, strings.Repeat("x", MaxQueryLength+200))

	assert.Contains(t, backend.user, strings.Repeat("x", MaxQueryLength))
	assert.NotContains(t, backend.user, strings.Repeat("x", MaxQueryLength+1))
	assert.True(t, strings.HasSuffix(backend.user, "What is most likely wrong and what should I do?"))
}

func TestGuide(t *testing.T) {
	backend := &fakeBackend{reply: "Plant maize with the first rains."}
	adv := NewService(backend, time.Second)

	answer := adv.Guide(context.Background(), domain.CropMaize)

	assert.Equal(t, "Plant maize with the first rains.", answer)
	require.Equal(t, 1, backend.calls)
	assert.Contains(t, backend.user, "Maize (Chibage)")
	assert.Contains(t, backend.user, "The staple crop of Zimbabwe.")
	assert.Contains(t, backend.user, "10 days")
	assert.Contains(t, backend.user, "Harvest signs")
}

func TestGuide_NotPlantable(t *testing.T) {
	backend := &fakeBackend{reply: "unused"}
	adv := NewService(backend, time.Second)

	assert.Equal(t, FallbackMessage, adv.Guide(context.Background(), domain.CropNone))
	assert.Equal(t, FallbackMessage, adv.Guide(context.Background(), domain.CropKind("wheat")))
	assert.Equal(t, 0, backend.calls)
}
