package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/philly/arch-blog/postpage/internal/adapters/rest/middleware"
)

// Server combines all handlers behind one route table
type Server struct {
	*PageHandler
	*HealthHandler
}

// NewServer creates a new server from its handlers
func NewServer(pageHandler *PageHandler, healthHandler *HealthHandler) *Server {
	return &Server{
		PageHandler:   pageHandler,
		HealthHandler: healthHandler,
	}
}

// Routes registers the host endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.GetPage)
	r.Get("/props.json", s.GetProps)
	r.Get("/health/live", s.GetLiveness)
	r.Get("/health/ready", s.GetReadiness)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, middleware.ErrorCodeNotFound, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, middleware.ErrorCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed)
	})
}
