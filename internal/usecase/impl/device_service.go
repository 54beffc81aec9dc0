package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice refreshes the token of a device the owner already registered, or creates it.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.BusinessDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if device.FCMToken != deviceInfo.FCMToken {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	device := &entity.BusinessDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token is registered to another device")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Business device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

func (s *deviceService) GetDevices(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
