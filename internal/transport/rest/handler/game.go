package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ecolearn/internal/metrics"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest/middleware"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameSvc   *service.GameService
	collector *metrics.Collector
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc *service.GameService, collector *metrics.Collector) *GameHandler {
	return &GameHandler{gameSvc: gameSvc, collector: collector}
}

// Record handles POST /api/games/sessions
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input service.RecordGameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.gameSvc.Record(r.Context(), middleware.GetUserID(r.Context()), &input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.collector.RecordGameSession()
	writeJSON(w, http.StatusCreated, session)
}

// History handles GET /api/games/sessions
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := h.gameSvc.History(r.Context(), middleware.GetUserID(r.Context()), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// Leaderboard handles GET /api/leaderboard
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	top := 20
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			top = n
		}
	}

	entries, err := h.gameSvc.Leaderboard(r.Context(), top)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
