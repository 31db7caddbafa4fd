package queries

import (
	"context"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler reads the available couriers of one hub and ranks
// them with the dispatcher.
type GetAvailableCouriersQueryHandler struct {
	db     *gorm.DB
	engine services.Engine
}

func NewGetAvailableCouriersQueryHandler(db *gorm.DB, engine services.Engine) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db, engine: engine}
}

func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fleet, err := h.readHubFleet(ctx, query.Request().HubCode)
	if err != nil {
		return nil, err
	}

	candidates, err := h.engine.Dispatcher.FindAvailableDrivers(query.Request(), fleet)
	if err != nil {
		return nil, err
	}

	response := make([]GetAvailableCouriersQueryResponse, 0, len(candidates))
	for _, c := range candidates {
		response = append(response, GetAvailableCouriersQueryResponse{
			ID:             c.ID(),
			Name:           c.Name(),
			DriverType:     c.DriverType(),
			VehicleType:    c.Vehicle().Type(),
			MaxWeight:      c.Vehicle().MaxWeight(),
			Rating:         c.Rating(),
			CompletedCount: c.CompletedCount(),
		})
	}

	return response, nil
}

func (h GetAvailableCouriersQueryHandler) readHubFleet(ctx context.Context, hubCode string) (courier.Fleet, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			home_hub_code,
			driver_type,
			vehicle_type,
			vehicle_max_weight,
			rating,
			completed_count
		FROM couriers
		WHERE home_hub_code = ? AND status = ? AND active
	`, hubCode, courier.Available.String()).Rows()
	if err != nil {
		return courier.Fleet{}, err
	}
	defer rows.Close()

	couriers := make([]*courier.Courier, 0)
	for rows.Next() {
		var (
			id                               uuid.UUID
			name, homeHub, driver, vehicleTp string
			maxWeight, rating                float64
			completed                        int
		)
		err = rows.Scan(&id, &name, &homeHub, &driver, &vehicleTp, &maxWeight, &rating, &completed)
		if err != nil {
			return courier.Fleet{}, err
		}

		c, restoreErr := restoreCourier(id, name, homeHub, driver, vehicleTp, maxWeight, rating, completed)
		if restoreErr != nil {
			return courier.Fleet{}, restoreErr
		}
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return courier.Fleet{}, err
	}

	return courier.NewFleet(couriers), nil
}

func restoreCourier(
	id uuid.UUID,
	name, homeHub, driver, vehicleType string,
	maxWeight, rating float64,
	completed int,
) (*courier.Courier, error) {
	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	driverType, err := courier.ParseDriverType(driver)
	if err != nil {
		return nil, err
	}
	vt, err := courier.ParseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}
	vehicle, err := courier.NewVehicle(vt, maxWeight)
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(courierID, name, homeHub, driverType, vehicle, courier.Available, rating, completed, true)
}
