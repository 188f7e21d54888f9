package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rv-pager/internal/domain"
	"github.com/pkordes/rv-pager/internal/pager"
	"github.com/pkordes/rv-pager/internal/repo"
	"github.com/pkordes/rv-pager/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
type mockTripRepo struct {
	create   func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	count    func(ctx context.Context) (int64, error)
	listPage func(ctx context.Context, limit, offset int) ([]domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}
func (m *mockTripRepo) ListPage(ctx context.Context, limit, offset int) ([]domain.Trip, error) {
	return m.listPage(ctx, limit, offset)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

func trip(name string) domain.Trip {
	return domain.Trip{ID: uuid.New(), Name: name, StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
}

func TestTripService_Count(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		count: func(context.Context) (int64, error) { return 95, nil },
	})

	n, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 95, n)
}

func TestTripService_Count_repoError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := service.NewTripService(&mockTripRepo{
		count: func(context.Context) (int64, error) { return 0, boom },
	})

	_, err := svc.Count(context.Background())

	assert.ErrorIs(t, err, boom)
}

// TestTripService_Page verifies the window is passed through to the repo
// unchanged and the page carries the total it was computed from.
func TestTripService_Page(t *testing.T) {
	var gotLimit, gotOffset int
	svc := service.NewTripService(&mockTripRepo{
		listPage: func(_ context.Context, limit, offset int) ([]domain.Trip, error) {
			gotLimit, gotOffset = limit, offset
			return []domain.Trip{trip("a"), trip("b")}, nil
		},
	})

	page, err := svc.Page(context.Background(), pager.Window{Limit: 10, Offset: 20}, 22)

	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 22, page.Total)
	assert.Equal(t, 3, page.Number())
	assert.Equal(t, 3, page.TotalPages())
}

func TestTripService_Page_emptyListingSkipsQuery(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		listPage: func(context.Context, int, int) ([]domain.Trip, error) {
			t.Fatal("ListPage must not be called")
			return nil, nil
		},
	})

	page, err := svc.Page(context.Background(), pager.Window{Limit: 10}, 0)

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestTripService_Page_invalidWindow(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	_, err := svc.Page(context.Background(), pager.Window{Limit: 0}, 10)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Page(context.Background(), pager.Window{Limit: 10, Offset: -10}, 10)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Page_repoError(t *testing.T) {
	boom := errors.New("timeout")
	svc := service.NewTripService(&mockTripRepo{
		listPage: func(context.Context, int, int) ([]domain.Trip, error) { return nil, boom },
	})

	_, err := svc.Page(context.Background(), pager.Window{Limit: 10}, 5)

	assert.ErrorIs(t, err, boom)
}
