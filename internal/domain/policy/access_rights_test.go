package policy

import (
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveAccessRights_BothTypeApproved(t *testing.T) {
	record := &entity.BusinessRecord{
		UserID:     uuid.New(),
		LegacyType: entity.LegacyTypeBoth,
		IsVerified: true,
		Status:     entity.StatusApproved,
	}

	rights := ResolveAccessRights(record)

	assert.Equal(t, record.UserID, rights.UserID)
	assert.True(t, rights.Verified)
	assert.True(t, rights.CanAddPrices)
	assert.True(t, rights.CanRespondToDelivery)
	assert.True(t, rights.CanSendItemRequests)
	assert.True(t, rights.CanRespondToOther)
	assert.False(t, rights.CanRespondToRide)
	assert.False(t, rights.CanSendRideRequests)
}

func TestResolveAccessRights_GenericBusinessIsOpenExceptTyped(t *testing.T) {
	rights := ResolveAccessRights(&entity.BusinessRecord{
		BusinessTypeName: "Tutor",
		IsVerified:       true,
		Status:           entity.StatusApproved,
	})

	assert.True(t, rights.Verified)
	assert.True(t, rights.CanSendItemRequests)
	assert.True(t, rights.CanSendServiceRequests)
	assert.True(t, rights.CanSendRentRequests)
	assert.True(t, rights.CanSendDeliveryRequests)
	assert.True(t, rights.CanRespondToOther)
	assert.False(t, rights.CanAddPrices)
	assert.False(t, rights.CanRespondToDelivery)
}

func TestResolveAccessRights_NotVerifiedDeniesEverything(t *testing.T) {
	cases := map[string]*entity.BusinessRecord{
		"unverified": {LegacyType: entity.LegacyTypeBoth, IsVerified: false, Status: entity.StatusApproved},
		"pending":    {LegacyType: entity.LegacyTypeBoth, IsVerified: true, Status: entity.StatusPending},
		"rejected":   {LegacyType: entity.LegacyTypeBoth, IsVerified: true, Status: entity.StatusRejected},
	}

	for name, record := range cases {
		t.Run(name, func(t *testing.T) {
			rights := ResolveAccessRights(record)

			assert.False(t, rights.Verified)
			assert.False(t, rights.CanAddPrices)
			assert.False(t, rights.CanSendItemRequests)
			assert.False(t, rights.CanSendServiceRequests)
			assert.False(t, rights.CanSendRentRequests)
			assert.False(t, rights.CanSendDeliveryRequests)
			assert.False(t, rights.CanRespondToDelivery)
			assert.False(t, rights.CanRespondToOther)
			assert.False(t, rights.CanSendRideRequests)
			assert.False(t, rights.CanRespondToRide)
			// Classification is still reported for display.
			assert.True(t, rights.IsProductSeller)
			assert.True(t, rights.IsDeliveryService)
		})
	}
}

func TestResolveAccessRights_RideIsNeverGranted(t *testing.T) {
	records := []*entity.BusinessRecord{
		nil,
		{},
		{LegacyType: entity.LegacyTypeBoth, IsVerified: true, Status: entity.StatusApproved},
		{BusinessTypeName: "delivery", IsVerified: true, Status: entity.StatusApproved},
	}

	for _, record := range records {
		rights := ResolveAccessRights(record)
		assert.False(t, rights.CanSendRideRequests)
		assert.False(t, rights.CanRespondToRide)
	}
}

func TestResolveAccessRights_Idempotent(t *testing.T) {
	record := &entity.BusinessRecord{
		UserID:         uuid.New(),
		LegacyCategory: "product seller",
		IsVerified:     true,
		Status:         entity.StatusApproved,
	}

	assert.Equal(t, ResolveAccessRights(record), ResolveAccessRights(record))
}

func TestNoAccess(t *testing.T) {
	userID := uuid.New()

	rights := NoAccess(userID)

	assert.Equal(t, &entity.AccessRights{UserID: userID}, rights)
}
