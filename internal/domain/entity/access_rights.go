package entity

import "github.com/google/uuid"

// AccessRights is what a business may do on the marketplace.
// Everything is open to verified businesses except price listing, delivery responses and rides.
type AccessRights struct {
	UserID                  uuid.UUID `json:"user_id"`
	Verified                bool      `json:"verified"`
	IsProductSeller         bool      `json:"is_product_seller"`
	IsDeliveryService       bool      `json:"is_delivery_service"`
	CanAddPrices            bool      `json:"can_add_prices"`
	CanSendItemRequests     bool      `json:"can_send_item_requests"`
	CanSendServiceRequests  bool      `json:"can_send_service_requests"`
	CanSendRentRequests     bool      `json:"can_send_rent_requests"`
	CanSendDeliveryRequests bool      `json:"can_send_delivery_requests"`
	CanSendRideRequests     bool      `json:"can_send_ride_requests"`
	CanRespondToDelivery    bool      `json:"can_respond_to_delivery"`
	CanRespondToRide        bool      `json:"can_respond_to_ride"`
	CanRespondToOther       bool      `json:"can_respond_to_other"`
}
