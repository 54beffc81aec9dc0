// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// TargetingUsecase decides which businesses hear about a request.
type TargetingUsecase interface {
	// GetBusinessesToNotify returns the ranked candidates for req. A directory failure is an
	// ErrBusinessLookupFailed error, never an empty result.
	GetBusinessesToNotify(ctx context.Context, req *entity.RequestDescriptor) (*entity.TargetingResult, error)
}

// AccessRightsUsecase resolves what a business account may do.
type AccessRightsUsecase interface {
	// GetAccessRights returns all-false rights for accounts without a business.
	GetAccessRights(ctx context.Context, userID uuid.UUID) (*entity.AccessRights, error)
}
