package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for dispatch persistence.
var (
	// ErrDispatchNotFound is returned when a dispatch is not found.
	ErrDispatchNotFound = errors.New("dispatch not found")
)

// DispatchRepository persists request dispatches and their per-device notification logs.
type DispatchRepository interface {
	// CreateDispatch persists a new dispatch.
	CreateDispatch(ctx context.Context, dispatch *entity.RequestDispatch) error

	// FindDispatchByID retrieves a dispatch by its unique ID.
	FindDispatchByID(ctx context.Context, id uuid.UUID) (*entity.RequestDispatch, error)

	// UpdateDispatchResult records delivery totals and marks the dispatch delivered.
	UpdateDispatchResult(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error

	// BatchCreateNotificationLogs persists notification log entries in batches.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
