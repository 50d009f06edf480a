package middleware

import (
	"context"
	"net/http"
	"strings"

	"ecolearn/internal/service"
)

type contextKey string

const (
	UserIDKey      contextKey = "userId"
	DisplayNameKey contextKey = "displayName"
)

// AuthMiddleware provides JWT authentication and admin gating middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
	gate    *service.AdminGate
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService, gate *service.AdminGate) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc, gate: gate}
}

// RequireUser validates the user JWT from the Authorization header
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, DisplayNameKey, claims.DisplayName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin runs the full admin gate on every request: identity, explicit
// portal acknowledgement, then role check. Anything short of an admin result
// is denied; there is no way through on client-held state alone.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := m.gate.Evaluate(r.Context(), GetUserID(r.Context()))
		switch {
		case status.State == service.GateUnauthenticated:
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		case status.State == service.GateAuthenticated:
			http.Error(w, `{"error":"admin portal entry required"}`, http.StatusForbidden)
		case !status.Admin:
			http.Error(w, `{"error":"admin access denied"}`, http.StatusForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	}))
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetDisplayName extracts the display name from context
func GetDisplayName(ctx context.Context) string {
	if v := ctx.Value(DisplayNameKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
