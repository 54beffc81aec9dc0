package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (usecase.BusinessUsecase, *mockRepo.MockBusinessRepository) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	return NewBusinessService(businessRepo, discardLogger()), businessRepo
}

func TestBusinessService_GetBusiness(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	business := verifiedBusiness("Corner Shop", "LK", nil)

	businessRepo.EXPECT().FindBusinessByUserID(ctx, business.UserID).Return(business, nil)

	got, err := service.GetBusiness(ctx, business.UserID)

	require.NoError(t, err)
	assert.Equal(t, business, got)
}

func TestBusinessService_GetBusiness_NotFound(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	userID := uuid.New()

	businessRepo.EXPECT().FindBusinessByUserID(ctx, userID).Return(nil, repository.ErrBusinessNotFound)

	got, err := service.GetBusiness(ctx, userID)

	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrBusinessNotFound, err)
}

func TestBusinessService_UpdateCategories_Normalizes(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	userID := uuid.New()

	businessRepo.EXPECT().
		UpdateBusinessCategories(ctx, userID, []string{"cat-1", "cat-2"}).
		Return(nil)

	got, err := service.UpdateCategories(ctx, userID, []string{" cat-1 ", "", "cat-2", "cat-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"cat-1", "cat-2"}, got)
}

func TestBusinessService_UpdateCategories_Empty(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	userID := uuid.New()

	businessRepo.EXPECT().UpdateBusinessCategories(ctx, userID, []string{}).Return(nil)

	got, err := service.UpdateCategories(ctx, userID, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBusinessService_UpdateCategories_TooMany(t *testing.T) {
	service, _ := createTestBusinessService(t)

	categories := make([]string, 51)
	for i := range categories {
		categories[i] = fmt.Sprintf("cat-%d", i)
	}

	_, err := service.UpdateCategories(context.Background(), uuid.New(), categories)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategories)
}

func TestBusinessService_UpdateCategories_NotFound(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	userID := uuid.New()

	businessRepo.EXPECT().
		UpdateBusinessCategories(ctx, userID, []string{"cat-1"}).
		Return(repository.ErrBusinessNotFound)

	_, err := service.UpdateCategories(ctx, userID, []string{"cat-1"})

	assert.Equal(t, domainerrors.ErrBusinessNotFound, err)
}

func TestBusinessService_ListBusinessTypes(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()
	types := []*entity.BusinessType{{ID: uuid.New(), Name: "Delivery Service"}}

	businessRepo.EXPECT().FindBusinessTypes(ctx).Return(types, nil)

	got, err := service.ListBusinessTypes(ctx)

	require.NoError(t, err)
	assert.Equal(t, types, got)
}

func TestBusinessService_ListBusinessTypes_Error(t *testing.T) {
	service, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().FindBusinessTypes(ctx).Return(nil, errors.New("db down"))

	_, err := service.ListBusinessTypes(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessLookupFailed)
}
