package api

import (
	"discgolf-session-service/internal/api/handlers"
	"log"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires the session endpoints and returns an http.Handler.
// Handlers stay unaware of how the machine or GPS feed were built.
func NewRouter(h *handlers.SessionHandler) http.Handler {
	r := mux.NewRouter().StrictSlash(true)

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/session", h.Snapshot).Methods(http.MethodGet)

	s := r.PathPrefix("/session").Subrouter()
	s.HandleFunc("/commands", h.Commands).Methods(http.MethodGet)
	s.HandleFunc("/commands/{name}", h.Command).Methods(http.MethodPost)
	s.HandleFunc("/location", h.Location).Methods(http.MethodPost)
	s.HandleFunc("/route", h.Route).Methods(http.MethodGet)
	s.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	s.HandleFunc("/feedback", h.Feedback).Methods(http.MethodGet)
	s.HandleFunc("/range-lines", h.RangeLines).Methods(http.MethodGet)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
	)
	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(log.Default()),
		gorillahandlers.PrintRecoveryStack(true),
	)

	return loggingMiddleware(recovery(cors(r)))
}
