package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessUsecase covers the business owner's view of their directory record.
type BusinessUsecase interface {
	GetBusiness(ctx context.Context, userID uuid.UUID) (*entity.BusinessRecord, error)

	// UpdateCategories replaces the preferred categories after trimming and de-duplicating them.
	UpdateCategories(ctx context.Context, userID uuid.UUID, categories []string) ([]string, error)

	ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error)
}
