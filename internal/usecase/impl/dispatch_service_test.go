package impl

import (
	"context"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchFixtures struct {
	targeting    *mockUsecase.MockTargetingUsecase
	dispatchRepo *mockRepo.MockDispatchRepository
	publisher    *mockSvc.MockEventPublisher
	service      usecase.DispatchUsecase
}

func createTestDispatchService(t *testing.T) *dispatchFixtures {
	fx := &dispatchFixtures{
		targeting:    mockUsecase.NewMockTargetingUsecase(t),
		dispatchRepo: mockRepo.NewMockDispatchRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewDispatchService(fx.targeting, fx.dispatchRepo, fx.publisher, discardLogger())

	return fx
}

func TestDispatchService_DispatchRequest_Publishes(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "trace-123")
	dispatchID := uuid.New()
	candidate := &entity.NotificationCandidate{UserID: uuid.New(), BusinessName: "Swift", Reason: entity.ReasonDeliveryService}

	req := &entity.RequestDescriptor{RequestID: "req-1", RequestType: entity.RequestTypeDelivery, CountryCode: "LK"}
	fx.targeting.EXPECT().GetBusinessesToNotify(ctx, req).Return(&entity.TargetingResult{
		RequestID:   "req-1",
		RequestType: entity.RequestTypeDelivery,
		CountryCode: "LK",
		Rule:        entity.RuleDeliveryOnly,
		Candidates:  []*entity.NotificationCandidate{candidate},
	}, nil)

	fx.dispatchRepo.EXPECT().
		CreateDispatch(ctx, mock.MatchedBy(func(d *entity.RequestDispatch) bool {
			return d.Status == entity.DispatchPublished && d.CandidateCount == 1 && d.Rule == entity.RuleDeliveryOnly
		})).
		Run(func(_ context.Context, d *entity.RequestDispatch) { d.ID = dispatchID }).
		Return(nil)

	fx.publisher.EXPECT().
		PublishRequestNotification(ctx, mock.MatchedBy(func(e *service.RequestNotificationEvent) bool {
			return e.DispatchID == dispatchID.String() &&
				e.TraceID == "trace-123" &&
				len(e.Candidates) == 1 &&
				e.Candidates[0].UserID == candidate.UserID.String() &&
				e.Candidates[0].Reason == string(entity.ReasonDeliveryService)
		})).
		Return(nil)

	outcome, err := fx.service.DispatchRequest(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, dispatchID, outcome.Dispatch.ID)
	assert.Equal(t, entity.DispatchPublished, outcome.Dispatch.Status)
	assert.Len(t, outcome.Result.Candidates, 1)
}

func TestDispatchService_DispatchRequest_NoCandidates(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	req := &entity.RequestDescriptor{RequestID: "req-2", RequestType: entity.RequestTypeRide}
	fx.targeting.EXPECT().GetBusinessesToNotify(ctx, req).Return(&entity.TargetingResult{
		RequestID:   "req-2",
		RequestType: entity.RequestTypeRide,
		Rule:        entity.RuleRideExcluded,
		Candidates:  []*entity.NotificationCandidate{},
	}, nil)
	fx.dispatchRepo.EXPECT().
		CreateDispatch(ctx, mock.MatchedBy(func(d *entity.RequestDispatch) bool {
			return d.Status == entity.DispatchNoCandidates && d.CandidateCount == 0
		})).
		Return(nil)

	outcome, err := fx.service.DispatchRequest(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, entity.DispatchNoCandidates, outcome.Dispatch.Status)
}

func TestDispatchService_DispatchRequest_TargetingError(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	req := &entity.RequestDescriptor{RequestID: "req-3", RequestType: entity.RequestTypeItem, CountryCode: "LK"}

	fx.targeting.EXPECT().GetBusinessesToNotify(ctx, req).Return(nil, domainerrors.ErrBusinessLookupFailed)

	outcome, err := fx.service.DispatchRequest(ctx, req)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessLookupFailed)
}

func TestDispatchService_DispatchRequest_PublishError(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	req := &entity.RequestDescriptor{RequestID: "req-4", RequestType: entity.RequestTypePrice, CountryCode: "LK"}

	fx.targeting.EXPECT().GetBusinessesToNotify(ctx, req).Return(&entity.TargetingResult{
		CountryCode: "LK",
		Rule:        entity.RuleProductSellers,
		Candidates:  []*entity.NotificationCandidate{{UserID: uuid.New(), Reason: entity.ReasonProductSeller}},
	}, nil)
	fx.dispatchRepo.EXPECT().CreateDispatch(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishRequestNotification(ctx, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.DispatchRequest(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrDispatchFailed)
}

func TestDispatchService_GetDispatch(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	dispatch := &entity.RequestDispatch{ID: uuid.New(), Status: entity.DispatchDelivered, TotalSent: 3}

	fx.dispatchRepo.EXPECT().FindDispatchByID(ctx, dispatch.ID).Return(dispatch, nil)

	got, err := fx.service.GetDispatch(ctx, dispatch.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalSent)
}

func TestDispatchService_GetDispatch_NotFound(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.dispatchRepo.EXPECT().FindDispatchByID(ctx, id).Return(nil, repository.ErrDispatchNotFound)

	_, err := fx.service.GetDispatch(ctx, id)

	assert.Equal(t, domainerrors.ErrDispatchNotFound, err)
}
