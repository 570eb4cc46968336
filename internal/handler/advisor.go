package handler

import (
	"net/http"

	"github.com/osse101/Homestead_Go/internal/advisor"
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/metrics"
	"github.com/osse101/Homestead_Go/internal/naming"
)

// AskRequest is a free-text question for the advisor
type AskRequest struct {
	Query string `json:"query" validate:"required,max=1000"`
}

// IdentifyRequest describes a problem with a crop
type IdentifyRequest struct {
	Crop    string `json:"crop" validate:"omitempty,max=40,cropname"`
	Problem string `json:"problem" validate:"required,max=1000"`
}

// GuideRequest names the crop to get a growing guide for
type GuideRequest struct {
	Crop string `json:"crop" validate:"required,max=40,cropname"`
}

// AdvisorHandler serves the chat advisor. It has no access to game state.
type AdvisorHandler struct {
	advisor  advisor.Advisor
	resolver naming.Resolver
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(adv advisor.Advisor, resolver naming.Resolver) *AdvisorHandler {
	return &AdvisorHandler{
		advisor:  adv,
		resolver: resolver,
	}
}

// HandleAsk forwards a question to the advisor
// @Summary Ask the advisor
// @Description Always answers; when the advisor is unavailable the answer is a fixed fallback message
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /advisor/ask [post]
func (h *AdvisorHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Ask advisor"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgAdvisorRequest, "kind", "ask")
	metrics.AdvisorQueries.WithLabelValues("ask").Inc()

	respondJSON(w, http.StatusOK, domain.AdviceResponse{
		Query:  req.Query,
		Advice: h.advisor.Ask(r.Context(), req.Query),
	})
}

// HandleIdentify asks the advisor about a crop problem
// @Summary Identify a crop problem
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body IdentifyRequest true "Crop and problem"
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /advisor/identify [post]
func (h *AdvisorHandler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var req IdentifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Identify problem"); err != nil {
		return
	}

	kind := domain.CropNone
	if req.Crop != "" {
		if resolved, ok := h.resolver.Resolve(req.Crop); ok {
			kind = resolved
		}
	}

	logger.FromContext(r.Context()).Debug(LogMsgAdvisorRequest, "kind", "identify", "crop", kind)
	metrics.AdvisorQueries.WithLabelValues("identify").Inc()

	respondJSON(w, http.StatusOK, domain.AdviceResponse{
		Query:  req.Problem,
		Advice: h.advisor.Identify(r.Context(), kind, req.Problem),
	})
}

// HandleGuide asks the advisor for a growing guide
// @Summary Crop growing guide
// @Description Planting season, watering, common pests and harvest signs for a crop
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body GuideRequest true "Crop"
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} UnknownCropResponse
// @Router /advisor/guide [post]
func (h *AdvisorHandler) HandleGuide(w http.ResponseWriter, r *http.Request) {
	var req GuideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Crop guide"); err != nil {
		return
	}

	kind, ok := resolveCrop(w, r, h.resolver, req.Crop)
	if !ok {
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgAdvisorRequest, "kind", "guide", "crop", kind)
	metrics.AdvisorQueries.WithLabelValues("guide").Inc()

	respondJSON(w, http.StatusOK, domain.AdviceResponse{
		Query:  req.Crop,
		Advice: h.advisor.Guide(r.Context(), kind),
	})
}
