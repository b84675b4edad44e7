// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a location does not exist for the tenant.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location-related database operations.
// Locations are managed elsewhere; this service only reads them and stamps sync times.
type LocationRepository interface {
	// FindByID retrieves a location owned by tenantID.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Location, error)

	// ListIDsByTenant returns the ids of every location of a tenant.
	ListIDsByTenant(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)

	// MarkReviewsSynced records when reviews were last pulled for a location.
	MarkReviewsSynced(ctx context.Context, id uuid.UUID, at time.Time) error
}
