package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetShipmentRouteQueryIsNotConstructed = errors.New(
		"GetShipmentRouteQuery must be created via NewGetShipmentRouteQuery constructor",
	)
)

// GetShipmentRouteQuery reads a shipment with its legs in order.
type GetShipmentRouteQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentRouteQuery(shipmentID kernel.UUID) (GetShipmentRouteQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentRouteQuery{}, err
	}

	return GetShipmentRouteQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentRouteQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q GetShipmentRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentRouteQueryIsNotConstructed)
}

type GetShipmentRouteQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	Zone               zone.ShippingZone
	Tier               zone.DeliveryTier
	Weight             float64
	Fee                float64
	EstimatedDelivery  time.Time
	OriginHubCode      string
	DestinationHubCode string
	CreatedAt          time.Time
	Legs               []ShipmentLegResponse
}

type ShipmentLegResponse struct {
	Number    int
	Type      route.LegType
	From      route.Endpoint
	To        route.Endpoint
	Status    route.LegStatus
	CourierID *kernel.UUID
}
