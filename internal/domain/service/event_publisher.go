package service

import (
	"context"
)

// EventCandidate is one targeted business inside a RequestNotificationEvent.
type EventCandidate struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// RequestNotificationEvent asks the dispatcher to push a request to its targeted businesses.
type RequestNotificationEvent struct {
	TraceID       string           `json:"trace_id,omitempty"` // X-Request-Id of the originating API call.
	DispatchID    string           `json:"dispatch_id"`
	RequestID     string           `json:"request_id"`
	RequestType   string           `json:"request_type"`
	CategoryID    string           `json:"category_id,omitempty"`
	SubcategoryID string           `json:"subcategory_id,omitempty"`
	CountryCode   string           `json:"country_code"`
	Candidates    []EventCandidate `json:"candidates"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestNotification publishes a dispatch for async delivery
	PublishRequestNotification(ctx context.Context, event *RequestNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
