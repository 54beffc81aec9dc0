package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// NewBusinessService creates the business owner use case.
func NewBusinessService(businessRepo repository.BusinessRepository, logger *slog.Logger) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (s *businessService) GetBusiness(ctx context.Context, userID uuid.UUID) (*entity.BusinessRecord, error) {
	business, err := s.businessRepo.FindBusinessByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Join(domainerrors.ErrBusinessLookupFailed, err)
	}

	return business, nil
}

func (s *businessService) UpdateCategories(ctx context.Context, userID uuid.UUID, categories []string) ([]string, error) {
	cleaned := normalizeCategories(categories)
	if len(cleaned) > constants.MaxBusinessCategories {
		return nil, domainerrors.ErrInvalidCategories.WithDetails(
			fmt.Sprintf("at most %d categories are allowed, got %d", constants.MaxBusinessCategories, len(cleaned)),
		)
	}

	if err := s.businessRepo.UpdateBusinessCategories(ctx, userID, cleaned); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to update business categories")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Business categories updated",
		slog.String("user_id", userID.String()),
		slog.Int("category_count", len(cleaned)),
	)

	return cleaned, nil
}

func (s *businessService) ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error) {
	types, err := s.businessRepo.FindBusinessTypes(ctx)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrBusinessLookupFailed, err)
	}

	return types, nil
}

// normalizeCategories trims ids, drops blanks and keeps the first occurrence of each.
func normalizeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	cleaned := make([]string, 0, len(categories))

	for _, category := range categories {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		if _, dup := seen[category]; dup {
			continue
		}

		seen[category] = struct{}{}
		cleaned = append(cleaned, category)
	}

	return cleaned
}
