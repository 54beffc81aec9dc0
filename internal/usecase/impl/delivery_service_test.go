package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/cache"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixtures struct {
	deviceRepo      *mockRepo.MockDeviceRepository
	txDeviceRepo    *mockRepo.MockDeviceRepository
	txDispatchRepo  *mockRepo.MockDispatchRepository
	txFactory       *mockRepo.MockRepositoryFactory
	txManager       *mockRepo.MockTransactionManager
	notificationSvc *mockSvc.MockNotificationService
	guard           *mockSvc.MockDispatchGuard
	service         usecase.DeliveryUsecase
}

func createTestDeliveryService(t *testing.T, batchSize int) *deliveryFixtures {
	fx := &deliveryFixtures{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		txDeviceRepo:    mockRepo.NewMockDeviceRepository(t),
		txDispatchRepo:  mockRepo.NewMockDispatchRepository(t),
		txFactory:       mockRepo.NewMockRepositoryFactory(t),
		txManager:       mockRepo.NewMockTransactionManager(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
		guard:           mockSvc.NewMockDispatchGuard(t),
	}

	fx.service = NewDeliveryService(DeliveryServiceParams{
		Config:          &config.Config{Dispatch: config.DispatchConfig{BatchSize: batchSize}},
		Logger:          discardLogger(),
		DeviceRepo:      fx.deviceRepo,
		TxManager:       fx.txManager,
		NotificationSvc: fx.notificationSvc,
		Guard:           fx.guard,
	})

	return fx
}

// expectTransaction runs the transaction body against the tx-bound mocks.
func (fx *deliveryFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewDispatchRepository().Return(fx.txDispatchRepo)
	fx.txFactory.EXPECT().NewDeviceRepository().Return(fx.txDeviceRepo)
}

func newTestEvent(dispatchID uuid.UUID, candidates ...service.EventCandidate) *service.RequestNotificationEvent {
	return &service.RequestNotificationEvent{
		DispatchID:  dispatchID.String(),
		RequestID:   "req-1",
		RequestType: "delivery",
		CountryCode: "LK",
		Candidates:  candidates,
	}
}

func TestDeliveryService_DeliverDispatch_Success(t *testing.T) {
	fx := createTestDeliveryService(t, 500)
	ctx := context.Background()
	dispatchID := uuid.New()
	owner := uuid.New()
	good := &entity.BusinessDevice{ID: uuid.New(), UserID: owner, FCMToken: "good"}
	dead := &entity.BusinessDevice{ID: uuid.New(), UserID: owner, FCMToken: "dead"}

	event := newTestEvent(dispatchID, service.EventCandidate{UserID: owner.String(), Reason: string(entity.ReasonDeliveryService)})

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(true, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{owner}).Return([]*entity.BusinessDevice{good, dead}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good", "dead"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Data["dispatch_id"] == dispatchID.String() &&
				msg.Data["notification_reason"] == string(entity.ReasonDeliveryService)
		})).
		Return([]service.PushResult{
			{Token: "good", Delivered: true},
			{Token: "dead", Invalid: true, Error: "unregistered"},
		}, nil)

	fx.expectTransaction(ctx)
	fx.txDispatchRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			return len(logs) == 2 &&
				logs[0].Status == entity.NotificationLogSent &&
				logs[1].Status == entity.NotificationLogFailed &&
				logs[1].Reason == entity.ReasonDeliveryService
		})).
		Return(nil)
	fx.txDeviceRepo.EXPECT().DeleteDevice(ctx, dead.ID).Return(nil)
	fx.txDispatchRepo.EXPECT().UpdateDispatchResult(ctx, dispatchID, 1, 1).Return(nil)
	fx.guard.EXPECT().Complete(mock.Anything, dispatchID.String()).Return(nil)

	report, err := fx.service.DeliverDispatch(ctx, event)

	require.NoError(t, err)
	assert.False(t, report.Duplicate)
	assert.Equal(t, 2, report.Devices)
	assert.Equal(t, 1, report.TotalSent)
	assert.Equal(t, 1, report.TotalFailed)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestDeliveryService_DeliverDispatch_Duplicate(t *testing.T) {
	fx := createTestDeliveryService(t, 500)
	ctx := context.Background()
	dispatchID := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(false, nil)

	report, err := fx.service.DeliverDispatch(ctx, newTestEvent(dispatchID))

	require.NoError(t, err)
	assert.True(t, report.Duplicate)
}

func TestDeliveryService_DeliverDispatch_MalformedID(t *testing.T) {
	fx := createTestDeliveryService(t, 500)

	_, err := fx.service.DeliverDispatch(context.Background(), &service.RequestNotificationEvent{DispatchID: "not-a-uuid"})

	assert.ErrorIs(t, err, usecase.ErrMalformedEvent)
}

func TestDeliveryService_DeliverDispatch_BatchesPerReason(t *testing.T) {
	fx := createTestDeliveryService(t, 2)
	ctx := context.Background()
	dispatchID := uuid.New()
	matched, general := uuid.New(), uuid.New()

	devices := []*entity.BusinessDevice{
		{ID: uuid.New(), UserID: matched, FCMToken: "m1"},
		{ID: uuid.New(), UserID: general, FCMToken: "g1"},
		{ID: uuid.New(), UserID: matched, FCMToken: "m2"},
		{ID: uuid.New(), UserID: matched, FCMToken: "m3"},
	}

	event := newTestEvent(dispatchID,
		service.EventCandidate{UserID: matched.String(), Reason: string(entity.ReasonCategoryMatch)},
		service.EventCandidate{UserID: general.String(), Reason: string(entity.ReasonGeneralBusiness)},
	)

	delivered := func(tokens ...string) []service.PushResult {
		out := make([]service.PushResult, 0, len(tokens))
		for _, token := range tokens {
			out = append(out, service.PushResult{Token: token, Delivered: true})
		}

		return out
	}

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(true, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{matched, general}).Return(devices, nil)
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, []string{"m1", "m2"}, mock.Anything).Return(delivered("m1", "m2"), nil).Once()
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, []string{"m3"}, mock.Anything).Return(delivered("m3"), nil).Once()
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, []string{"g1"}, mock.Anything).Return(delivered("g1"), nil).Once()

	fx.expectTransaction(ctx)
	fx.txDispatchRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	fx.txDispatchRepo.EXPECT().UpdateDispatchResult(ctx, dispatchID, 4, 0).Return(nil)
	fx.guard.EXPECT().Complete(mock.Anything, dispatchID.String()).Return(nil)

	report, err := fx.service.DeliverDispatch(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalSent)
}

func TestDeliveryService_DeliverDispatch_BatchErrorMarksFailed(t *testing.T) {
	fx := createTestDeliveryService(t, 500)
	ctx := context.Background()
	dispatchID := uuid.New()
	owner := uuid.New()
	device := &entity.BusinessDevice{ID: uuid.New(), UserID: owner, FCMToken: "t1"}

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(true, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{owner}).Return([]*entity.BusinessDevice{device}, nil)
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, []string{"t1"}, mock.Anything).Return(nil, errors.New("quota exceeded"))

	fx.expectTransaction(ctx)
	fx.txDispatchRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			return len(logs) == 1 && logs[0].Status == entity.NotificationLogFailed && logs[0].ErrorMessage != ""
		})).
		Return(nil)
	fx.txDispatchRepo.EXPECT().UpdateDispatchResult(ctx, dispatchID, 0, 1).Return(nil)
	fx.guard.EXPECT().Complete(mock.Anything, dispatchID.String()).Return(errors.New("redis unavailable"))

	report, err := fx.service.DeliverDispatch(ctx, newTestEvent(dispatchID,
		service.EventCandidate{UserID: owner.String(), Reason: string(entity.ReasonProductSeller)},
	))

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalFailed)
	assert.Zero(t, report.InvalidTokens)
}

func TestDeliveryService_DeliverDispatch_DeviceLookupReleasesClaim(t *testing.T) {
	fx := createTestDeliveryService(t, 500)
	ctx := context.Background()
	dispatchID := uuid.New()
	owner := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(true, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{owner}).Return(nil, errors.New("db down"))
	fx.guard.EXPECT().Release(mock.Anything, dispatchID.String()).Return(nil)

	_, err := fx.service.DeliverDispatch(ctx, newTestEvent(dispatchID,
		service.EventCandidate{UserID: owner.String(), Reason: string(entity.ReasonGeneralBusiness)},
	))

	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrMalformedEvent)
}

func TestDeliveryService_DeliverDispatch_UnknownDispatch(t *testing.T) {
	fx := createTestDeliveryService(t, 500)
	ctx := context.Background()
	dispatchID := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, dispatchID.String()).Return(true, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{}).Return(nil, nil)
	fx.expectTransaction(ctx)
	fx.txDispatchRepo.EXPECT().UpdateDispatchResult(ctx, dispatchID, 0, 0).Return(repository.ErrDispatchNotFound)
	fx.guard.EXPECT().Release(mock.Anything, dispatchID.String()).Return(nil)

	_, err := fx.service.DeliverDispatch(ctx, newTestEvent(dispatchID))

	assert.ErrorIs(t, err, usecase.ErrMalformedEvent)
}

func TestDeliveryService_DeliverDispatch_CanceledDeliveryCanBeRetried(t *testing.T) {
	server := miniredis.RunT(t)
	guard := cache.NewRedisDispatchGuard(redis.NewClient(&redis.Options{Addr: server.Addr()}), time.Minute, 24*time.Hour)

	fx := createTestDeliveryService(t, 500)
	fx.service = NewDeliveryService(DeliveryServiceParams{
		Config:          &config.Config{Dispatch: config.DispatchConfig{BatchSize: 500}},
		Logger:          discardLogger(),
		DeviceRepo:      fx.deviceRepo,
		TxManager:       fx.txManager,
		NotificationSvc: fx.notificationSvc,
		Guard:           guard,
	})

	dispatchID := uuid.New()
	key := "dispatch:" + dispatchID.String()
	event := newTestEvent(dispatchID)

	// First attempt: the push deadline cancels the request while devices load.
	pushCtx, cancel := context.WithCancel(context.Background())
	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(pushCtx, []uuid.UUID{}).
		RunAndReturn(func(context.Context, []uuid.UUID) ([]*entity.BusinessDevice, error) {
			cancel()

			return nil, context.Canceled
		}).
		Once()

	_, err := fx.service.DeliverDispatch(pushCtx, event)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, server.Exists(key), "claim must be released after a failed delivery")

	// Redelivery goes through and the dispatch is then remembered for the dedup window.
	retryCtx := context.Background()
	fx.deviceRepo.EXPECT().FindActiveDevicesForUsers(retryCtx, []uuid.UUID{}).Return(nil, nil).Once()
	fx.expectTransaction(retryCtx)
	fx.txDispatchRepo.EXPECT().UpdateDispatchResult(retryCtx, dispatchID, 0, 0).Return(nil)

	report, err := fx.service.DeliverDispatch(retryCtx, event)

	require.NoError(t, err)
	assert.False(t, report.Duplicate)
	assert.Equal(t, 24*time.Hour, server.TTL(key))
}
