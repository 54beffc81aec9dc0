package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMalformedEvent marks a delivery event that can never succeed and must not be retried.
var ErrMalformedEvent = errors.New("malformed request notification event")

// DispatchOutcome is a persisted dispatch together with the targeting that produced it.
type DispatchOutcome struct {
	Dispatch *entity.RequestDispatch `json:"dispatch"`
	Result   *entity.TargetingResult `json:"targeting"`
}

// DispatchUsecase fans a request out to its targeted businesses.
type DispatchUsecase interface {
	// DispatchRequest targets req, records the dispatch and publishes it for delivery.
	DispatchRequest(ctx context.Context, req *entity.RequestDescriptor) (*DispatchOutcome, error)

	GetDispatch(ctx context.Context, id uuid.UUID) (*entity.RequestDispatch, error)
}

// DeliveryReport summarises one processed dispatch event.
type DeliveryReport struct {
	DispatchID    uuid.UUID `json:"dispatch_id"`
	Duplicate     bool      `json:"duplicate"`
	Devices       int       `json:"devices"`
	TotalSent     int       `json:"total_sent"`
	TotalFailed   int       `json:"total_failed"`
	InvalidTokens int       `json:"invalid_tokens"`
}

// DeliveryUsecase pushes a published dispatch to the candidates' devices.
type DeliveryUsecase interface {
	// DeliverDispatch is safe to call again for the same event; repeats are reported as Duplicate.
	// ErrMalformedEvent is returned for events that cannot be processed; other errors are transient.
	DeliverDispatch(ctx context.Context, event *service.RequestNotificationEvent) (*DeliveryReport, error)
}
