package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for business device persistence.
type DeviceRepository interface {
	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.BusinessDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.BusinessDevice, error)

	// FindDevicesByUser retrieves the active devices of one business owner.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessDevice, error)

	// FindActiveDevicesForUsers retrieves the active devices of many business owners.
	FindActiveDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.BusinessDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
