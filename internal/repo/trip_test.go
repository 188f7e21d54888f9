package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rv-pager/internal/domain"
	"github.com/pkordes/rv-pager/internal/repo"
	"github.com/pkordes/rv-pager/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by that transaction. The transaction is rolled back when the
// test finishes.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	// Start from an empty table inside the transaction so counts are exact.
	_, err = tx.Exec(context.Background(), "DELETE FROM trips")
	require.NoError(t, err, "empty trips")

	return repo.NewTripRepo(tx)
}

// seedTrips inserts n trips, one per day starting 2025-06-01, and returns them
// in insertion order.
func seedTrips(t *testing.T, r repo.TripRepo, n int) []domain.Trip {
	t.Helper()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	trips := make([]domain.Trip, 0, n)
	for i := range n {
		created, err := r.Create(context.Background(), domain.Trip{
			Name:      fmt.Sprintf("Trip %02d", i+1),
			StartDate: start.AddDate(0, 0, i),
		})
		require.NoError(t, err)
		trips = append(trips, created)
	}
	return trips
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)

	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	input := domain.Trip{
		Name:      "Summer Tour",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Notes:     "Test notes",
	}

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_Count(t *testing.T) {
	r := newTestRepo(t)

	n, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	seedTrips(t, r, 7)

	n, err = r.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}

// TestTripRepo_ListPage walks all pages of a 23-trip listing and verifies the
// pages are disjoint, most recent first, and the last page is short.
func TestTripRepo_ListPage(t *testing.T) {
	r := newTestRepo(t)
	seedTrips(t, r, 23)
	ctx := context.Background()

	var names []string
	for offset := 0; offset < 30; offset += 10 {
		page, err := r.ListPage(ctx, 10, offset)
		require.NoError(t, err)
		for _, tr := range page {
			names = append(names, tr.Name)
		}
	}

	require.Len(t, names, 23)
	assert.Equal(t, "Trip 23", names[0])
	assert.Equal(t, "Trip 01", names[22])
}

func TestTripRepo_ListPage_pastTheEnd(t *testing.T) {
	r := newTestRepo(t)
	seedTrips(t, r, 3)

	page, err := r.ListPage(context.Background(), 10, 50)

	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestTripRepo_ListPage_invalidWindow(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.ListPage(context.Background(), 0, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = r.ListPage(context.Background(), 10, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
