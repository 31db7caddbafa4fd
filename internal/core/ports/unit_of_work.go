package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Units are never shared
// between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one transaction over the hub, courier and shipment stores. Callers
// pair Begin with a deferred Rollback and finish with Commit. Rollback after Commit
// returns an error that callers ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories returned here share the transaction opened by Begin. Outside a
	// transaction they run against the plain connection.
	CourierRepository() CourierRepository
	HubRepository() HubRepository
	ShipmentRepository() ShipmentRepository
}
