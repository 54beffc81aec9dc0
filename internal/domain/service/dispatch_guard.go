package service

import "context"

// DispatchGuard makes dispatch delivery at-most-once across message redeliveries.
//
// A claim is short-lived until Complete is called, so a worker that dies mid-delivery
// does not block the redelivery for the whole dedup window.
type DispatchGuard interface {
	// Acquire claims the dispatch. It returns false when another delivery already holds it.
	Acquire(ctx context.Context, dispatchID string) (bool, error)

	// Complete marks a claimed dispatch as delivered and keeps it for the dedup window.
	Complete(ctx context.Context, dispatchID string) error

	// Release gives the claim back so a retried delivery can proceed.
	Release(ctx context.Context, dispatchID string) error
}
