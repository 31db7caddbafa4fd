// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Enumerations are stored by their text codes so read models can use them directly.
type CourierDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	HomeHubCode    string     `gorm:"type:varchar(32);not null;index:idx_couriers_dispatch,priority:1"`
	DriverType     string     `gorm:"type:varchar(16);not null"`
	Vehicle        VehicleDTO `gorm:"embedded;embeddedPrefix:vehicle_"`
	Status         string     `gorm:"type:varchar(16);not null;index:idx_couriers_dispatch,priority:2"`
	Rating         float64    `gorm:"type:numeric(3,2);not null;default:0"`
	CompletedCount int        `gorm:"type:int;not null;default:0"`
	Active         bool       `gorm:"not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// VehicleDTO is the embedded vehicle of a courier.
type VehicleDTO struct {
	Type      string  `gorm:"type:varchar(16);not null"`
	MaxWeight float64 `gorm:"type:double precision;not null"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		HomeHubCode: c.HomeHubCode(),
		DriverType:  c.DriverType().String(),
		Vehicle: VehicleDTO{
			Type:      c.Vehicle().Type().String(),
			MaxWeight: c.Vehicle().MaxWeight(),
		},
		Status:         c.Status().String(),
		Rating:         c.Rating(),
		CompletedCount: c.CompletedCount(),
		Active:         c.IsActive(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverType, err := courier.ParseDriverType(dto.DriverType)
	if err != nil {
		return nil, err
	}

	vehicleType, err := courier.ParseVehicleType(dto.Vehicle.Type)
	if err != nil {
		return nil, err
	}
	vehicle, err := courier.NewVehicle(vehicleType, dto.Vehicle.MaxWeight)
	if err != nil {
		return nil, err
	}

	status, err := courier.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.HomeHubCode, driverType, vehicle,
		status, dto.Rating, dto.CompletedCount, dto.Active)
}
