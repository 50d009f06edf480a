package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecolearn/internal/metrics"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest/middleware"
)

// PostHandler handles community feed endpoints
type PostHandler struct {
	postSvc   *service.PostService
	collector *metrics.Collector
}

// NewPostHandler creates a new post handler
func NewPostHandler(postSvc *service.PostService, collector *metrics.Collector) *PostHandler {
	return &PostHandler{postSvc: postSvc, collector: collector}
}

// CreatePostRequest is the request body for creating a post
type CreatePostRequest struct {
	Body string `json:"body"`
}

// Create handles POST /api/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postSvc.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		middleware.GetDisplayName(r.Context()),
		req.Body,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.collector.RecordPost()
	writeJSON(w, http.StatusCreated, post)
}

// List handles GET /api/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	posts, err := h.postSvc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// Like handles POST /api/posts/{id}/like
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.postSvc.Like(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "liked"})
}
