package entity

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus is the lifecycle state of a request dispatch.
type DispatchStatus string

const (
	DispatchNoCandidates DispatchStatus = "no_candidates"
	DispatchPublished    DispatchStatus = "published"
	DispatchDelivered    DispatchStatus = "delivered"
)

// RequestDispatch records one fan-out of a request to its targeted businesses.
type RequestDispatch struct {
	ID             uuid.UUID      `json:"id"`
	RequestID      string         `json:"request_id"`
	RequestType    RequestType    `json:"request_type"`
	CountryCode    string         `json:"country_code"`
	Rule           TargetingRule  `json:"rule"`
	CandidateCount int            `json:"candidate_count"`
	Status         DispatchStatus `json:"status"`
	TotalSent      int            `json:"total_sent"`
	TotalFailed    int            `json:"total_failed"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Notification log statuses.
const (
	NotificationLogSent   = "sent"
	NotificationLogFailed = "failed"
)

// NotificationLog is the outcome of one push to one business device.
type NotificationLog struct {
	ID           uuid.UUID          `json:"id"`
	DispatchID   uuid.UUID          `json:"dispatch_id"`
	UserID       uuid.UUID          `json:"user_id"`
	DeviceID     uuid.UUID          `json:"device_id"`
	Reason       NotificationReason `json:"notification_reason"`
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	SentAt       time.Time          `json:"sent_at"`
}
