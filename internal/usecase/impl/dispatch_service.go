package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	targeting    usecase.TargetingUsecase
	dispatchRepo repository.DispatchRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewDispatchService creates the request dispatch use case.
func NewDispatchService(
	targeting usecase.TargetingUsecase,
	dispatchRepo repository.DispatchRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		targeting:    targeting,
		dispatchRepo: dispatchRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *dispatchService) DispatchRequest(ctx context.Context, req *entity.RequestDescriptor) (*usecase.DispatchOutcome, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	result, err := s.targeting.GetBusinessesToNotify(ctx, req)
	if err != nil {
		return nil, err
	}

	status := entity.DispatchNoCandidates
	if len(result.Candidates) > 0 {
		status = entity.DispatchPublished
	}

	dispatch := &entity.RequestDispatch{
		RequestID:      req.RequestID,
		RequestType:    req.RequestType,
		CountryCode:    result.CountryCode,
		Rule:           result.Rule,
		CandidateCount: len(result.Candidates),
		Status:         status,
	}
	if err := s.dispatchRepo.CreateDispatch(ctx, dispatch); err != nil {
		return nil, errors.Join(domainerrors.ErrDispatchFailed, err)
	}

	if status == entity.DispatchPublished {
		event := newRequestNotificationEvent(ctx, dispatch, req, result)
		if err := s.publisher.PublishRequestNotification(ctx, event); err != nil {
			logger.Error("Failed to publish request notification",
				slog.String("dispatch_id", dispatch.ID.String()),
				slog.Any("error", err),
			)

			return nil, errors.Join(domainerrors.ErrDispatchFailed, err)
		}
	}

	logger.Info("Request dispatched",
		slog.String("dispatch_id", dispatch.ID.String()),
		slog.String("request_id", req.RequestID),
		slog.String("rule", string(result.Rule)),
		slog.Int("candidate_count", dispatch.CandidateCount),
	)

	return &usecase.DispatchOutcome{Dispatch: dispatch, Result: result}, nil
}

func (s *dispatchService) GetDispatch(ctx context.Context, id uuid.UUID) (*entity.RequestDispatch, error) {
	dispatch, err := s.dispatchRepo.FindDispatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDispatchNotFound) {
			return nil, domainerrors.ErrDispatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find dispatch")
	}

	return dispatch, nil
}

func newRequestNotificationEvent(
	ctx context.Context,
	dispatch *entity.RequestDispatch,
	req *entity.RequestDescriptor,
	result *entity.TargetingResult,
) *service.RequestNotificationEvent {
	candidates := make([]service.EventCandidate, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, service.EventCandidate{
			UserID: c.UserID.String(),
			Reason: string(c.Reason),
		})
	}

	return &service.RequestNotificationEvent{
		TraceID:       deliverycontext.GetRequestIDFromContext(ctx),
		DispatchID:    dispatch.ID.String(),
		RequestID:     req.RequestID,
		RequestType:   string(req.RequestType),
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		CountryCode:   result.CountryCode,
		Candidates:    candidates,
	}
}
