// Package ports defines repository interfaces for the routing domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAvailableAtHub retrieves active, available couriers whose home hub is hubCode.
	// Ranking and vehicle filtering are left to the dispatcher.
	GetAvailableAtHub(ctx context.Context, hubCode string) ([]*courier.Courier, error)

	// ClaimIfAvailable atomically flips the courier from available to busy.
	// It returns false, without error, when another request claimed the courier first
	// or the courier went offline.
	//
	// Example:
	//   claimed, err := repo.ClaimIfAvailable(ctx, candidate.ID())
	//   if err != nil {
	//       return err
	//   }
	//   if !claimed {
	//       // try the next candidate
	//   }
	ClaimIfAvailable(ctx context.Context, id kernel.UUID) (bool, error)
}
