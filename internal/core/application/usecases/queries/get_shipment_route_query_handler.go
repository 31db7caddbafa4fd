package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentRouteQueryHandler(db *gorm.DB) GetShipmentRouteQueryHandler {
	return GetShipmentRouteQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the shipment does not exist.
func (h GetShipmentRouteQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentRouteQuery,
) (GetShipmentRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentRouteQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.ShipmentID().Bytes()

	var (
		response           GetShipmentRouteQueryResponse
		zoneCode, tierCode string
		originHub, destHub sql.NullString
	)
	err := db.Raw(`
		SELECT
			status,
			zone,
			tier,
			weight,
			fee,
			estimated_delivery,
			origin_hub_code,
			destination_hub_code,
			created_at
		FROM shipments
		WHERE id = ?
	`, id).Row().Scan(
		&response.Status,
		&zoneCode,
		&tierCode,
		&response.Weight,
		&response.Fee,
		&response.EstimatedDelivery,
		&originHub,
		&destHub,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentRouteQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentRouteQueryResponse{}, err
	}

	response.ID = query.ShipmentID()
	response.OriginHubCode = originHub.String
	response.DestinationHubCode = destHub.String
	if response.Zone, err = zone.ParseShippingZone(zoneCode); err != nil {
		return GetShipmentRouteQueryResponse{}, err
	}
	if response.Tier, err = zone.ParseDeliveryTier(tierCode); err != nil {
		return GetShipmentRouteQueryResponse{}, err
	}

	response.Legs, err = h.readLegs(db, id)
	if err != nil {
		return GetShipmentRouteQueryResponse{}, err
	}

	return response, nil
}

func (h GetShipmentRouteQueryHandler) readLegs(db *gorm.DB, shipmentID uuid.UUID) ([]ShipmentLegResponse, error) {
	rows, err := db.Raw(`
		SELECT
			number,
			type,
			from_name, from_address, from_hub_code, from_lat, from_lng,
			to_name, to_address, to_hub_code, to_lat, to_lng,
			status,
			courier_id
		FROM shipment_legs
		WHERE shipment_id = ?
		ORDER BY number
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	legs := make([]ShipmentLegResponse, 0)
	for rows.Next() {
		var (
			leg             ShipmentLegResponse
			legType, status string
			from, to        endpointColumns
			courierID       uuid.NullUUID
		)
		err = rows.Scan(
			&leg.Number,
			&legType,
			&from.name, &from.address, &from.hubCode, &from.lat, &from.lng,
			&to.name, &to.address, &to.hubCode, &to.lat, &to.lng,
			&status,
			&courierID,
		)
		if err != nil {
			return nil, err
		}

		if leg.Type, err = route.ParseLegType(legType); err != nil {
			return nil, err
		}
		if leg.Status, err = route.ParseLegStatus(status); err != nil {
			return nil, err
		}
		if leg.From, err = from.toEndpoint(); err != nil {
			return nil, err
		}
		if leg.To, err = to.toEndpoint(); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cid, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			leg.CourierID = &cid
		}

		legs = append(legs, leg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return legs, nil
}

type endpointColumns struct {
	name, address, hubCode sql.NullString
	lat, lng               sql.NullFloat64
}

func (c endpointColumns) toEndpoint() (route.Endpoint, error) {
	point, err := pointFromColumns(c.lat, c.lng)
	if err != nil {
		return route.Endpoint{}, err
	}
	return route.RestoreEndpoint(c.name.String, c.address.String, c.hubCode.String, point)
}
