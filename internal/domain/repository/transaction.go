package repository

import "context"

// TransactionManager runs use case work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls it back, nil commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the surrounding transaction.
type RepositoryFactory interface {
	// NewDispatchRepository returns a DispatchRepository bound to the current transaction.
	NewDispatchRepository() DispatchRepository

	// NewDeviceRepository returns a DeviceRepository bound to the current transaction.
	NewDeviceRepository() DeviceRepository
}
