package ports

import (
	"context"

	"logistics/internal/core/domain/model/hub"
)

// HubRepository defines the persistence contract for hub reference data.
type HubRepository interface {
	// Add persists a new hub. Codes are unique.
	Add(ctx context.Context, hub *hub.Hub) error

	// Update persists changes to an existing hub, including deactivation.
	Update(ctx context.Context, hub *hub.Hub) error

	// Get retrieves a hub by code, active or not.
	Get(ctx context.Context, code string) (*hub.Hub, error)

	// GetAllActive retrieves every active hub ordered by code. Route planning reads
	// this once per request to build a hub.Directory.
	GetAllActive(ctx context.Context) ([]*hub.Hub, error)
}
