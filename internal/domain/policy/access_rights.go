package policy

import (
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// NoAccess is the rights of an account without a business record.
func NoAccess(userID uuid.UUID) *entity.AccessRights {
	return &entity.AccessRights{UserID: userID}
}

// ResolveAccessRights derives the capability set of a business. A nil record yields NoAccess.
// Ride capabilities are never granted: rides belong to individual drivers.
func ResolveAccessRights(b *entity.BusinessRecord) *entity.AccessRights {
	if b == nil {
		return NoAccess(uuid.Nil)
	}

	verified := b.IsVerifiedAndApproved()
	class := ClassifyBusiness(b)

	return &entity.AccessRights{
		UserID:                  b.UserID,
		Verified:                verified,
		IsProductSeller:         class.IsProductSeller,
		IsDeliveryService:       class.IsDeliveryService,
		CanAddPrices:            verified && class.IsProductSeller,
		CanSendItemRequests:     verified,
		CanSendServiceRequests:  verified,
		CanSendRentRequests:     verified,
		CanSendDeliveryRequests: verified,
		CanSendRideRequests:     false,
		CanRespondToDelivery:    verified && class.IsDeliveryService,
		CanRespondToRide:        false,
		CanRespondToOther:       verified,
	}
}
