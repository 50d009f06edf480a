package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecolearn/internal/repository"
	"ecolearn/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service-layer errors onto HTTP statuses. Unknown
// errors stay opaque to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidFormat),
		errors.Is(err, service.ErrUnknownGameType),
		errors.Is(err, service.ErrUnknownAchievement),
		errors.Is(err, service.ErrNegativeScore),
		errors.Is(err, service.ErrEmptyPost),
		errors.Is(err, service.ErrPostTooLong),
		errors.Is(err, service.ErrUnrecognizedOrgType):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrCodespaceNotFound),
		errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCodespaceInactive),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, repository.ErrDuplicateCode):
		return http.StatusConflict
	case errors.Is(err, service.ErrCodespaceExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
