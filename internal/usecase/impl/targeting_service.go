// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

const (
	lookupOperationTargeting = "targeting"
	lookupOperationRights    = "access_rights"
)

type targetingService struct {
	businessRepo repository.BusinessRepository
	metrics      *metrics.Collector
	logger       *slog.Logger
}

// NewTargetingService creates the targeting use case. collector may be nil.
func NewTargetingService(
	businessRepo repository.BusinessRepository,
	collector *metrics.Collector,
	logger *slog.Logger,
) usecase.TargetingUsecase {
	return &targetingService{
		businessRepo: businessRepo,
		metrics:      collector,
		logger:       logger,
	}
}

func (s *targetingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *targetingService) GetBusinessesToNotify(ctx context.Context, req *entity.RequestDescriptor) (*entity.TargetingResult, error) {
	if req == nil || req.RequestType == "" {
		return nil, domainerrors.ErrInvalidRequestDescriptor
	}

	started := time.Now()
	rule := policy.RuleFor(req.RequestType)
	if policy.NeedsDirectory(rule) && policy.NormalizeCountry(req.CountryCode) == "" {
		return nil, domainerrors.ErrInvalidRequestDescriptor.WithDetails("country_code is required")
	}

	var pool []*entity.BusinessRecord
	if policy.NeedsDirectory(rule) {
		var err error
		pool, err = s.businessRepo.FindVerifiedBusinessesByCountry(ctx, policy.NormalizeCountry(req.CountryCode))
		if err != nil {
			s.metrics.LookupFailed(lookupOperationTargeting)
			s.log(ctx).Error("Business directory lookup failed",
				slog.String("request_id", req.RequestID),
				slog.String("request_type", req.RequestType.String()),
				slog.String("country", req.CountryCode),
				slog.Any("error", err),
			)

			return nil, errors.Join(domainerrors.ErrBusinessLookupFailed, err)
		}
	}

	result := policy.SelectCandidates(req, pool)
	s.metrics.ObserveTargeting(result, time.Since(started))

	s.log(ctx).Debug("Targeting computed",
		slog.String("request_id", req.RequestID),
		slog.String("rule", string(result.Rule)),
		slog.Int("pool_size", len(pool)),
		slog.Int("candidate_count", len(result.Candidates)),
	)

	return result, nil
}

type accessRightsService struct {
	businessRepo repository.BusinessRepository
	metrics      *metrics.Collector
	logger       *slog.Logger
}

// NewAccessRightsService creates the access rights use case. collector may be nil.
func NewAccessRightsService(
	businessRepo repository.BusinessRepository,
	collector *metrics.Collector,
	logger *slog.Logger,
) usecase.AccessRightsUsecase {
	return &accessRightsService{
		businessRepo: businessRepo,
		metrics:      collector,
		logger:       logger,
	}
}

func (s *accessRightsService) GetAccessRights(ctx context.Context, userID uuid.UUID) (*entity.AccessRights, error) {
	business, err := s.businessRepo.FindBusinessByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return policy.NoAccess(userID), nil
		}

		s.metrics.LookupFailed(lookupOperationRights)
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Business lookup for access rights failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Join(domainerrors.ErrBusinessLookupFailed, err)
	}

	return policy.ResolveAccessRights(business), nil
}
