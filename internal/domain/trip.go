// Package domain contains the core data types shared by the repo, service and
// handler packages. It depends on nothing else inside the module.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is one row of the paged trip listing.
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil when trip is still in progress
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
