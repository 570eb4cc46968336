package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/advisor"
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/handler"
	"github.com/osse101/Homestead_Go/internal/metrics"
	"github.com/osse101/Homestead_Go/internal/naming"
	"github.com/osse101/Homestead_Go/mocks"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHandleAsk(t *testing.T) {
	adv := mocks.NewMockAdvisor(t)
	adv.On("Ask", mock.Anything, "When should I plant rape?").Return("Plant rape at the start of the rains.")
	h := handler.NewAdvisorHandler(adv, naming.NewResolver())

	before := testutil.ToFloat64(metrics.AdvisorQueries.WithLabelValues("ask"))
	w := postJSON(t, h.HandleAsk, `{"query":"When should I plant rape?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.AdviceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "When should I plant rape?", resp.Query)
	assert.Equal(t, "Plant rape at the start of the rains.", resp.Advice)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AdvisorQueries.WithLabelValues("ask")))
}

func TestHandleAsk_Fallback(t *testing.T) {
	adv := mocks.NewMockAdvisor(t)
	adv.On("Ask", mock.Anything, mock.Anything).Return(advisor.FallbackMessage)
	h := handler.NewAdvisorHandler(adv, naming.NewResolver())

	w := postJSON(t, h.HandleAsk, `{"query":"anything"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), advisor.FallbackMessage)
}

func TestHandleAsk_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty query", body: `{"query":""}`},
		{name: "missing query", body: `{}`},
		{name: "malformed", body: `{"query":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := mocks.NewMockAdvisor(t)
			h := handler.NewAdvisorHandler(adv, naming.NewResolver())

			w := postJSON(t, h.HandleAsk, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			adv.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleIdentify(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCrop domain.CropKind
	}{
		{name: "resolved crop", body: `{"crop":"Spinach","problem":"yellow leaves"}`, expectedCrop: domain.CropSpinach},
		{name: "display name", body: `{"crop":"Tomato (Madomasi)","problem":"yellow leaves"}`, expectedCrop: domain.CropTomato},
		{name: "alias", body: `{"crop":"corn","problem":"yellow leaves"}`, expectedCrop: domain.CropMaize},
		{name: "unresolved crop", body: `{"crop":"wheat","problem":"yellow leaves"}`, expectedCrop: domain.CropNone},
		{name: "no crop", body: `{"problem":"yellow leaves"}`, expectedCrop: domain.CropNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := mocks.NewMockAdvisor(t)
			adv.On("Identify", mock.Anything, tt.expectedCrop, "yellow leaves").Return("Likely nitrogen deficiency.")
			h := handler.NewAdvisorHandler(adv, naming.NewResolver())

			w := postJSON(t, h.HandleIdentify, tt.body)

			require.Equal(t, http.StatusOK, w.Code)
			var resp domain.AdviceResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "yellow leaves", resp.Query)
			assert.Equal(t, "Likely nitrogen deficiency.", resp.Advice)
		})
	}
}

func TestHandleIdentify_RejectsBadCropName(t *testing.T) {
	adv := mocks.NewMockAdvisor(t)
	h := handler.NewAdvisorHandler(adv, naming.NewResolver())

	w := postJSON(t, h.HandleIdentify, `{"crop":"maize; drop table","problem":"spots"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"crop"`)
}

func TestHandleGuide(t *testing.T) {
	adv := mocks.NewMockAdvisor(t)
	adv.On("Guide", mock.Anything, domain.CropRape).Return("Sow covo in rows and keep the soil moist.")
	h := handler.NewAdvisorHandler(adv, naming.NewResolver())

	before := testutil.ToFloat64(metrics.AdvisorQueries.WithLabelValues("guide"))
	w := postJSON(t, h.HandleGuide, `{"crop":"covo"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.AdviceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "covo", resp.Query)
	assert.Equal(t, "Sow covo in rows and keep the soil moist.", resp.Advice)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AdvisorQueries.WithLabelValues("guide")))
}

func TestHandleGuide_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "unknown crop", body: `{"crop":"oignon"}`, contains: `"suggestions":["onion"]`},
		{name: "missing crop", body: `{}`, contains: `"crop"`},
		{name: "bad characters", body: `{"crop":"onion;"}`, contains: `"crop"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := mocks.NewMockAdvisor(t)
			h := handler.NewAdvisorHandler(adv, naming.NewResolver())

			w := postJSON(t, h.HandleGuide, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			adv.AssertNotCalled(t, "Guide", mock.Anything, mock.Anything)
		})
	}
}
