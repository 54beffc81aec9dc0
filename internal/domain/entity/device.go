package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessDevice is a device of a business owner registered for push notifications.
type BusinessDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`   // Owner of the business.
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"` // Client-side identifier, stable across token refreshes.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
