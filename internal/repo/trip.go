// Package repo contains all database access logic for the trip listing.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rv-pager/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations behind the paged trip listing.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Count returns the number of trips.
	Count(ctx context.Context) (int64, error)

	// ListPage returns at most limit trips, skipping the first offset, ordered
	// by start_date descending with id as tie-breaker.
	ListPage(ctx context.Context, limit, offset int) ([]domain.Trip, error)
}

var tripColumns = []string{"id", "name", "start_date", "end_date", "notes", "created_at", "updated_at"}

// psql builds Postgres-flavoured statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q, args, err := psql.Insert("trips").
		Columns("name", "start_date", "end_date", "notes").
		Values(trip.Name, trip.StartDate, trip.EndDate, trip.Notes).
		Suffix("RETURNING " + strings.Join(tripColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: build: %w", err)
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// Count returns the total number of trips.
func (r *pgTripRepo) Count(ctx context.Context) (int64, error) {
	q, args, err := psql.Select("count(*)").From("trips").ToSql()
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: build: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", err)
	}
	return n, nil
}

// ListPage returns one window of trips, most recent first.
func (r *pgTripRepo) ListPage(ctx context.Context, limit, offset int) ([]domain.Trip, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: limit=%d offset=%d: %w", limit, offset, domain.ErrValidation)
	}

	q, args, err := listPageQuery(limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: build: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: %w", err)
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0, limit)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListPage: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: rows: %w", err)
	}

	return trips, nil
}

func listPageQuery(limit, offset int) sq.SelectBuilder {
	return psql.Select(tripColumns...).
		From("trips").
		OrderBy("start_date DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable end_date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t       domain.Trip
		id      pgtype.UUID
		endDate pgtype.Date
		sdRaw   pgtype.Date
	)

	err := s.Scan(&id, &t.Name, &sdRaw, &endDate, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = sdRaw.Time
	if endDate.Valid {
		ed := endDate.Time
		t.EndDate = &ed
	}

	return t, nil
}
