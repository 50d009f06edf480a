package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ecolearn/internal/metrics"
	"ecolearn/internal/model"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest/middleware"
)

// CodespaceHandler handles codespace endpoints
type CodespaceHandler struct {
	codespaceSvc *service.CodespaceService
	collector    *metrics.Collector
	defaultTTL   time.Duration
}

// NewCodespaceHandler creates a new codespace handler
func NewCodespaceHandler(codespaceSvc *service.CodespaceService, collector *metrics.Collector, defaultTTL time.Duration) *CodespaceHandler {
	return &CodespaceHandler{
		codespaceSvc: codespaceSvc,
		collector:    collector,
		defaultTTL:   defaultTTL,
	}
}

// CreateCodespaceRequest is the request body for creating a codespace
type CreateCodespaceRequest struct {
	Name       string `json:"name,omitempty"`
	TTLMinutes int    `json:"ttlMinutes,omitempty"`
}

// Create handles POST /api/codespaces
func (h *CodespaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCodespaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ttl := h.defaultTTL
	if req.TTLMinutes > 0 {
		ttl = time.Duration(req.TTLMinutes) * time.Minute
	}

	cs, err := h.codespaceSvc.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		middleware.GetDisplayName(r.Context()),
		req.Name,
		ttl,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.collector.RecordCodespaceCreated()
	writeJSON(w, http.StatusCreated, cs)
}

// Get handles GET /api/codespaces/{code}
func (h *CodespaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	cs, err := h.codespaceSvc.Get(r.Context(), code, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cs)
}

// Update handles PATCH /api/codespaces/{code}
func (h *CodespaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var upd model.CodespaceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cs, err := h.codespaceSvc.Update(r.Context(), code, middleware.GetUserID(r.Context()), &upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cs)
}

// JoinRequest is the request body for joining a codespace
type JoinRequest struct {
	Code string `json:"code"`
}

// Join handles POST /api/codespaces/join
func (h *CodespaceHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.codespaceSvc.Join(r.Context(), req.Code)
	if err != nil {
		h.collector.RecordJoin(joinOutcome(err))
		writeServiceError(w, err)
		return
	}

	h.collector.RecordJoin("ok")
	writeJSON(w, http.StatusOK, map[string]*model.CodespaceView{"codespace": view})
}

func joinOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, service.ErrCodespaceNotFound):
		return "not_found"
	case errors.Is(err, service.ErrCodespaceInactive):
		return "inactive"
	case errors.Is(err, service.ErrCodespaceExpired):
		return "expired"
	default:
		return "error"
	}
}
