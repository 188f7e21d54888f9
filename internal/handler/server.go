// Package handler implements the HTTP handlers for the RV Pager API.
// All handlers are methods on Server; Routes wires them into a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/rv-pager/internal/domain"
	"github.com/pkordes/rv-pager/internal/middleware"
	"github.com/pkordes/rv-pager/internal/pager"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Count(ctx context.Context) (int64, error)
	Page(ctx context.Context, w pager.Window, total int64) (domain.Page[domain.Trip], error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips TripServicer
	log   *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default.
func NewServer(trips TripServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, log: log}
}

// Routes returns the API router. Listing routes get a fresh pager per request
// built from pagerOpts.
func (s *Server) Routes(pagerOpts pager.Options) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewPaging(pagerOpts))
		r.Get("/trips", s.ListTripsPage)
		r.Get("/api/trips", s.ListTrips)
	})
	return r
}
