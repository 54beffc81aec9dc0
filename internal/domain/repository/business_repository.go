// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the business directory.
var (
	// ErrBusinessNotFound is returned when a user owns no business record.
	ErrBusinessNotFound = errors.New("business not found")
)

// BusinessRepository is the read side of the business directory plus the few writes the
// marketplace owns. Records come back with business_types.name already joined.
type BusinessRepository interface {
	// FindBusinessByUserID retrieves the business owned by userID.
	FindBusinessByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessRecord, error)

	// FindVerifiedBusinessesByCountry retrieves every verified and approved business in a country,
	// ordered by business name.
	FindVerifiedBusinessesByCountry(ctx context.Context, countryCode string) ([]*entity.BusinessRecord, error)

	// UpdateBusinessCategories replaces the preferred categories of the business owned by userID.
	UpdateBusinessCategories(ctx context.Context, userID uuid.UUID, categories []string) error

	// FindBusinessTypes lists the business_types lookup table.
	FindBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error)
}
