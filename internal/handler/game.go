package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/game"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/naming"
)

// PlantRequest plants a crop on one plot
type PlantRequest struct {
	PlotID *int   `json:"plot_id" validate:"required,min=0"`
	Crop   string `json:"crop" validate:"required,max=40,cropname"`
}

// PlotRequest targets a single plot
type PlotRequest struct {
	PlotID *int `json:"plot_id" validate:"required,min=0"`
}

// GameHandler serves the game session endpoints. It only reads snapshots
// and calls actions; all state changes happen in the game service.
type GameHandler struct {
	games    game.Service
	resolver naming.Resolver
}

// NewGameHandler creates a new game handler
func NewGameHandler(games game.Service, resolver naming.Resolver) *GameHandler {
	return &GameHandler{
		games:    games,
		resolver: resolver,
	}
}

// HandleNewGame starts a new session
// @Summary Start a game
// @Description Creates a new session with an empty plot grid and the starting balance
// @Tags games
// @Produce json
// @Success 201 {object} GameView
// @Failure 500 {object} ErrorResponse
// @Router /games [post]
func (h *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.NewGame(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgNewGameFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgNewGameFailed)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgGameCreated, logger.AttrKeySessionID, session.ID)
	respondJSON(w, http.StatusCreated, newGameView(session.ID, session.Snapshot))
}

// HandleGetGame returns the current snapshot
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} GameView
// @Failure 404 {object} ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	session, err := h.games.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "get game", err)
		return
	}

	respondJSON(w, http.StatusOK, newGameView(session.ID, session.Snapshot))
}

// HandlePlant plants a crop
// @Summary Plant a crop
// @Description Crop names are matched case-insensitively and tolerate small typos. Unknown names return suggestions.
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game id"
// @Param request body PlantRequest true "Plot and crop"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} UnknownCropResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/plant [post]
func (h *GameHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	kind, ok := resolveCrop(w, r, h.resolver, req.Crop)
	if !ok {
		return
	}

	h.runAction(w, r, domain.ActionPlant, id, func(ctx context.Context) (*game.ActionResult, error) {
		return h.games.Plant(ctx, id, *req.PlotID, kind)
	})
}

// HandleWater waters a plot
// @Summary Water a plot
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game id"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/water [post]
func (h *GameHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	h.plotAction(w, r, domain.ActionWater, h.games.Water)
}

// HandleHarvest harvests a mature plot
// @Summary Harvest a plot
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game id"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/harvest [post]
func (h *GameHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	h.plotAction(w, r, domain.ActionHarvest, h.games.Harvest)
}

// HandleRemove clears a plot without reward
// @Summary Remove a crop
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game id"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/remove [post]
func (h *GameHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.plotAction(w, r, domain.ActionRemove, h.games.Remove)
}

// HandleAdvanceDay runs the daily tick
// @Summary Advance one day
// @Tags games
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/advance-day [post]
func (h *GameHandler) HandleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}
	h.runAction(w, r, domain.ActionAdvanceDay, id, func(ctx context.Context) (*game.ActionResult, error) {
		return h.games.AdvanceDay(ctx, id)
	})
}

func (h *GameHandler) plotAction(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	call func(ctx context.Context, sessionID string, plotID int) (*game.ActionResult, error),
) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
		return
	}

	h.runAction(w, r, action, id, func(ctx context.Context) (*game.ActionResult, error) {
		return call(ctx, id, *req.PlotID)
	})
}

func (h *GameHandler) runAction(
	w http.ResponseWriter,
	r *http.Request,
	action, id string,
	call func(ctx context.Context) (*game.ActionResult, error),
) {
	logger.FromContext(r.Context()).Debug(LogMsgActionRequest, "action", action, logger.AttrKeySessionID, id)

	result, err := call(r.Context())
	if err != nil {
		respondServiceError(w, r, action, err)
		return
	}

	respondJSON(w, http.StatusOK, newActionResponse(id, result))
}

// resolveCrop maps a typed crop name to its kind, answering 400 with
// suggestions when it cannot
func resolveCrop(w http.ResponseWriter, r *http.Request, resolver naming.Resolver, name string) (domain.CropKind, bool) {
	kind, ok := resolver.Resolve(name)
	if !ok {
		logger.FromContext(r.Context()).Info(LogMsgCropNotResolved, "crop", name)
		respondJSON(w, http.StatusBadRequest, UnknownCropResponse{
			Error:       ErrMsgUnknownCrop,
			Crop:        name,
			Suggestions: kindsToStrings(resolver.Suggest(name)),
		})
	}
	return kind, ok
}

func kindsToStrings(kinds []domain.CropKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}
