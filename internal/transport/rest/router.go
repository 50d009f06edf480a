package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"ecolearn/internal/metrics"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest/handler"
	"ecolearn/internal/transport/rest/middleware"
	"ecolearn/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	CodespaceService *service.CodespaceService
	GameService      *service.GameService
	PostService      *service.PostService
	AdminGate        *service.AdminGate
	Collector        *metrics.Collector
	Gatherer         prometheus.Gatherer
	WSHub            *ws.Hub
	Logger           *zerolog.Logger
	CodespaceTTL     time.Duration
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	codespaceHandler := handler.NewCodespaceHandler(c.CodespaceService, c.Collector, c.CodespaceTTL)
	gameHandler := handler.NewGameHandler(c.GameService, c.Collector)
	postHandler := handler.NewPostHandler(c.PostService, c.Collector)
	adminHandler := handler.NewAdminHandler(c.AdminGate)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.CodespaceService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService, c.AdminGate)

	r.Use(corsMiddleware)
	r.Use(requestLogger(c.Logger))

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/codespaces/join", codespaceHandler.Join).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	api.HandleFunc("/ws/codespaces/{code}", wsHandler.CodespaceWS).Methods("GET")
	api.HandleFunc("/ws/codespaces/{code}/admin", wsHandler.AdminWS).Methods("GET")

	// Health check and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", metrics.Handler(c.Gatherer)).Methods("GET")

	// Authenticated routes
	userRoutes := api.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/games/sessions", gameHandler.Record).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/games/sessions", gameHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/leaderboard", gameHandler.Leaderboard).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/posts", postHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/posts", postHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/posts/{id}/like", postHandler.Like).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/admin/portal", adminHandler.EnterPortal).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/admin/portal", adminHandler.LeavePortal).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/admin/gate", adminHandler.GateStatus).Methods("GET", "OPTIONS")

	// Admin routes (full gate on every request)
	adminRoutes := api.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/codespaces", codespaceHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/codespaces/{code}", codespaceHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/codespaces/{code}", codespaceHandler.Update).Methods("PATCH", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
