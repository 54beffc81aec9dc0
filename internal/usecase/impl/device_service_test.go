package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(deviceRepo, discardLogger()), deviceRepo
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.BusinessDevice{}, nil)
	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(d *entity.BusinessDevice) bool {
			return d.UserID == userID && d.FCMToken == "token-1" && d.IsActive
		})).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "pixel-7",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, "pixel-7", device.DeviceID)
	assert.Equal(t, "android", device.Platform)
}

func TestDeviceService_RegisterDevice_RefreshesToken(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.BusinessDevice{ID: uuid.New(), UserID: userID, DeviceID: "pixel-7", FCMToken: "old"}
	refreshed := &entity.BusinessDevice{ID: existing.ID, UserID: userID, DeviceID: "pixel-7", FCMToken: "new", IsActive: true}

	deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.BusinessDevice{existing}, nil)
	deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "pixel-7", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, "new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_DuplicateToken(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
	deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "taken", DeviceID: "ipad", Platform: "ios"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	device := &entity.BusinessDevice{ID: uuid.New(), UserID: userID}

	deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	require.NoError(t, service.DeactivateDevice(ctx, userID, device.ID))
}

func TestDeviceService_DeactivateDevice_NotOwner(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	device := &entity.BusinessDevice{ID: uuid.New(), UserID: uuid.New()}

	deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	err := service.DeactivateDevice(ctx, uuid.New(), device.ID)

	assert.Equal(t, domainerrors.ErrDeviceOwnershipViolation, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}
