// Package service contains the business logic behind the trip listing.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/rv-pager/internal/domain"
	"github.com/pkordes/rv-pager/internal/pager"
	"github.com/pkordes/rv-pager/internal/repo"
)

// TripService implements the paged trip listing.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Count returns the number of trips, which the pager needs before it can run.
func (s *TripService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Count: %w", err)
	}
	return n, nil
}

// Page loads the trips inside w. total is the count the window was computed
// from; windows starting at or past it are answered without a query.
func (s *TripService) Page(ctx context.Context, w pager.Window, total int64) (domain.Page[domain.Trip], error) {
	page := domain.Page[domain.Trip]{Limit: w.Limit, Offset: w.Offset, Total: total}

	if w.Limit < 1 {
		return page, fmt.Errorf("service.TripService.Page: %w: limit must be at least 1", domain.ErrValidation)
	}
	if w.Offset < 0 {
		return page, fmt.Errorf("service.TripService.Page: %w: offset must not be negative", domain.ErrValidation)
	}
	if int64(w.Offset) >= total {
		page.Items = []domain.Trip{}
		return page, nil
	}

	trips, err := s.repo.ListPage(ctx, w.Limit, w.Offset)
	if err != nil {
		return page, fmt.Errorf("service.TripService.Page: %w", err)
	}
	page.Items = trips
	return page, nil
}
