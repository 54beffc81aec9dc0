package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// guardUpdateTimeout bounds guard writes made after the request context may be gone.
const guardUpdateTimeout = 5 * time.Second

type deliveryService struct {
	batchSize       int
	deviceRepo      repository.DeviceRepository
	txManager       repository.TransactionManager
	notificationSvc service.NotificationService
	guard           service.DispatchGuard
	metrics         *metrics.Collector
	logger          *slog.Logger
}

// DeliveryServiceParams holds the dependencies of NewDeliveryService.
type DeliveryServiceParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	DeviceRepo      repository.DeviceRepository
	TxManager       repository.TransactionManager
	NotificationSvc service.NotificationService
	Guard           service.DispatchGuard
	Metrics         *metrics.Collector `optional:"true"`
}

// NewDeliveryService creates the dispatcher's delivery use case.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	batchSize := params.Config.Dispatch.BatchSize
	if batchSize <= 0 || batchSize > constants.FirebaseBatchSize {
		batchSize = constants.FirebaseBatchSize
	}

	return &deliveryService{
		batchSize:       batchSize,
		deviceRepo:      params.DeviceRepo,
		txManager:       params.TxManager,
		notificationSvc: params.NotificationSvc,
		guard:           params.Guard,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

// deliveryTarget is one device and the reason its owner was targeted.
type deliveryTarget struct {
	device *entity.BusinessDevice
	reason entity.NotificationReason
}

func (s *deliveryService) DeliverDispatch(ctx context.Context, event *service.RequestNotificationEvent) (*usecase.DeliveryReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	dispatchID, err := uuid.Parse(event.DispatchID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "dispatch_id %q", event.DispatchID)
	}

	report := &usecase.DeliveryReport{DispatchID: dispatchID}

	acquired, err := s.guard.Acquire(ctx, event.DispatchID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		logger.Info("Dispatch already delivered, skipping", slog.String("dispatch_id", event.DispatchID))
		s.metrics.ObservePush(metrics.PushDuplicate, 1)
		report.Duplicate = true

		return report, nil
	}

	// The push deadline may have canceled ctx; the guard must still be updated.
	guardCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), guardUpdateTimeout)
	defer cancel()

	if err := s.deliver(ctx, dispatchID, event, report); err != nil {
		if releaseErr := s.guard.Release(guardCtx, event.DispatchID); releaseErr != nil {
			logger.Warn("Failed to release dispatch claim",
				slog.String("dispatch_id", event.DispatchID),
				slog.Any("error", releaseErr),
			)
		}

		return nil, err
	}

	if err := s.guard.Complete(guardCtx, event.DispatchID); err != nil {
		logger.Warn("Failed to extend dispatch claim, a redelivery may push again",
			slog.String("dispatch_id", event.DispatchID),
			slog.Any("error", err),
		)
	}

	logger.Info("Dispatch delivered",
		slog.String("dispatch_id", event.DispatchID),
		slog.Int("devices", report.Devices),
		slog.Int("total_sent", report.TotalSent),
		slog.Int("total_failed", report.TotalFailed),
		slog.Int("invalid_tokens", report.InvalidTokens),
	)

	return report, nil
}

func (s *deliveryService) deliver(ctx context.Context, dispatchID uuid.UUID, event *service.RequestNotificationEvent, report *usecase.DeliveryReport) error {
	reasons := make(map[uuid.UUID]entity.NotificationReason, len(event.Candidates))
	userIDs := make([]uuid.UUID, 0, len(event.Candidates))
	for _, candidate := range event.Candidates {
		userID, err := uuid.Parse(candidate.UserID)
		if err != nil {
			continue
		}
		if _, dup := reasons[userID]; !dup {
			userIDs = append(userIDs, userID)
		}
		reasons[userID] = entity.NotificationReason(candidate.Reason)
	}

	devices, err := s.deviceRepo.FindActiveDevicesForUsers(ctx, userIDs)
	if err != nil {
		return errors.Wrap(err, "failed to load candidate devices")
	}
	report.Devices = len(devices)

	// FCM multicast carries one payload, so devices are batched per notification reason.
	groups := make(map[entity.NotificationReason][]deliveryTarget)
	var order []entity.NotificationReason
	for _, device := range devices {
		reason := reasons[device.UserID]
		if _, ok := groups[reason]; !ok {
			order = append(order, reason)
		}
		groups[reason] = append(groups[reason], deliveryTarget{device: device, reason: reason})
	}

	var (
		logs           []*entity.NotificationLog
		invalidDevices []uuid.UUID
	)
	for _, reason := range order {
		targets := groups[reason]
		for start := 0; start < len(targets); start += s.batchSize {
			batch := targets[start:min(start+s.batchSize, len(targets))]
			batchLogs, batchInvalid := s.sendBatch(ctx, dispatchID, event, reason, batch)
			logs = append(logs, batchLogs...)
			invalidDevices = append(invalidDevices, batchInvalid...)
		}
	}

	for _, entry := range logs {
		if entry.Status == entity.NotificationLogSent {
			report.TotalSent++
		} else {
			report.TotalFailed++
		}
	}
	report.InvalidTokens = len(invalidDevices)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		dispatchRepo := factory.NewDispatchRepository()
		deviceRepo := factory.NewDeviceRepository()

		if len(logs) > 0 {
			if err := dispatchRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
				return err
			}
		}

		for _, deviceID := range invalidDevices {
			if err := deviceRepo.DeleteDevice(ctx, deviceID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
				return err
			}
		}

		return dispatchRepo.UpdateDispatchResult(ctx, dispatchID, report.TotalSent, report.TotalFailed)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDispatchNotFound) {
			return errors.Wrapf(usecase.ErrMalformedEvent, "dispatch %s does not exist", dispatchID)
		}

		return errors.Wrap(err, "failed to save delivery results")
	}

	s.metrics.ObservePush(metrics.PushSent, report.TotalSent)
	s.metrics.ObservePush(metrics.PushFailed, report.TotalFailed-report.InvalidTokens)
	s.metrics.ObservePush(metrics.PushInvalid, report.InvalidTokens)

	return nil
}

// sendBatch pushes one batch and returns a log entry per device plus the devices whose token is dead.
func (s *deliveryService) sendBatch(
	ctx context.Context,
	dispatchID uuid.UUID,
	event *service.RequestNotificationEvent,
	reason entity.NotificationReason,
	batch []deliveryTarget,
) ([]*entity.NotificationLog, []uuid.UUID) {
	tokens := make([]string, len(batch))
	for idx, target := range batch {
		tokens[idx] = target.device.FCMToken
	}

	results, sendErr := s.notificationSvc.SendBatchNotification(ctx, tokens, buildPushMessage(event, reason))
	if sendErr != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to send push batch",
			slog.String("dispatch_id", event.DispatchID),
			slog.Int("batch_size", len(batch)),
			slog.Any("error", sendErr),
		)
	}

	now := time.Now()
	logs := make([]*entity.NotificationLog, 0, len(batch))
	var invalid []uuid.UUID

	for idx, target := range batch {
		entry := &entity.NotificationLog{
			DispatchID: dispatchID,
			UserID:     target.device.UserID,
			DeviceID:   target.device.ID,
			Reason:     reason,
			Status:     entity.NotificationLogFailed,
			SentAt:     now,
		}

		switch {
		case sendErr != nil:
			entry.ErrorMessage = fmt.Sprintf("batch send error: %v", sendErr)
		case idx >= len(results):
			entry.ErrorMessage = "no result reported"
		case results[idx].Delivered:
			entry.Status = entity.NotificationLogSent
		default:
			entry.ErrorMessage = results[idx].Error
			if results[idx].Invalid {
				entry.ErrorMessage = "invalid or unregistered token"
				invalid = append(invalid, target.device.ID)
			}
		}

		logs = append(logs, entry)
	}

	return logs, invalid
}

func buildPushMessage(event *service.RequestNotificationEvent, reason entity.NotificationReason) service.PushMessage {
	return service.PushMessage{
		Title: fmt.Sprintf("New %s request", event.RequestType),
		Body:  fmt.Sprintf("A customer in %s is looking for a business like yours.", event.CountryCode),
		Data: map[string]string{
			"dispatch_id":         event.DispatchID,
			"request_id":          event.RequestID,
			"request_type":        event.RequestType,
			"category_id":         event.CategoryID,
			"subcategory_id":      event.SubcategoryID,
			"notification_reason": string(reason),
		},
	}
}
