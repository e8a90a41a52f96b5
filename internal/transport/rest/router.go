package rest

import (
	"askgate/internal/cache"
	"askgate/internal/config"
	"askgate/internal/repository"
	"askgate/internal/service"
	"askgate/internal/transport/rest/handler"
	"askgate/internal/transport/rest/middleware"
	"askgate/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ternarybob/arbor"
)

// Container holds all dependencies for the router
type Container struct {
	Gateway   *service.QuestionGateway
	Stats     cache.StatsCache        // nil when Redis is not configured
	Events    repository.AskEventRepo // nil when Mongo is not configured
	WSHub     *ws.Hub                 // nil when the live feed is disabled
	CORS      config.CORSConfig
	StaticDir string
	Logger    arbor.ILogger
}

// NewRouter creates the HTTP router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	askHandler := handler.NewAskHandler(c.Gateway, c.Logger)
	statsHandler := handler.NewStatsHandler(c.Stats, c.Events, c.Logger)

	// CORS first so preflights and errors carry the headers too
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.NewRequestLogger(c.Logger).Handler)

	r.HandleFunc("/ask", askHandler.Ask).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET", "OPTIONS")

	r.HandleFunc("/stats", statsHandler.Stats).Methods("GET", "OPTIONS")
	r.HandleFunc("/events", statsHandler.Events).Methods("GET", "OPTIONS")

	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.Logger)
		r.HandleFunc("/ws/events", wsHandler.EventsWS).Methods("GET")
	}

	if c.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(c.StaticDir))).Methods("GET", "HEAD")
	}

	// mux only runs middleware on matched routes; answer any other preflight here
	r.MethodNotAllowedHandler = corsMiddleware(c.CORS)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	r.NotFoundHandler = corsMiddleware(c.CORS)(http.NotFoundHandler())

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
