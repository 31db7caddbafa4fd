package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Legs are stored with their shipment and saved together.
type ShipmentRepository interface {
	Add(ctx context.Context, shipment *shipment.Shipment) error

	// Update persists leg status and courier bindings.
	Update(ctx context.Context, shipment *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// ListWithReadyLeg pages through active shipments, oldest first, whose next pending
	// leg can be staffed now. An empty page means there are no more.
	ListWithReadyLeg(ctx context.Context, offset, limit int) ([]*shipment.Shipment, error)
}
