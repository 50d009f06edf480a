package handler

import (
	"encoding/json"
	"net/http"

	"ecolearn/internal/model"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest/middleware"
)

// AdminHandler handles admin portal entry and gate inspection
type AdminHandler struct {
	gate *service.AdminGate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(gate *service.AdminGate) *AdminHandler {
	return &AdminHandler{gate: gate}
}

// PortalRequest is the request body for the explicit portal entry action
type PortalRequest struct {
	OrgType model.OrgType `json:"orgType"`
}

// EnterPortal handles POST /api/admin/portal. This is the only way a portal
// acknowledgement comes into existence.
func (h *AdminHandler) EnterPortal(w http.ResponseWriter, r *http.Request) {
	var req PortalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := h.gate.AcknowledgePortal(r.Context(), userID, req.OrgType); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.gate.Evaluate(r.Context(), userID))
}

// LeavePortal handles DELETE /api/admin/portal
func (h *AdminHandler) LeavePortal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if err := h.gate.LeavePortal(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.gate.Evaluate(r.Context(), userID))
}

// GateStatus handles GET /api/admin/gate
func (h *AdminHandler) GateStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gate.Evaluate(r.Context(), middleware.GetUserID(r.Context())))
}
