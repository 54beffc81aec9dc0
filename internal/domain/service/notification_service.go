package service

import "context"

// PushMessage is the visible notification plus its data payload.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult is the outcome for one device token, in request order.
type PushResult struct {
	Token     string
	Delivered bool
	// Invalid marks tokens the provider reported as unregistered or malformed.
	Invalid bool
	Error   string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one message to at most 500 device tokens.
	// A non-nil error means the whole batch failed and no result is reported.
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) ([]PushResult, error)
}
