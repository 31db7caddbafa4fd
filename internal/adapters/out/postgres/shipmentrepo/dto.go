// Package shipmentrepo persists shipments and their legs. A shipment row carries the
// quote and schedule; legs live in their own table keyed by shipment and number.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/fee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Status is derived from the legs and stored for filtering only.
type ShipmentDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Pickup             LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery           LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Weight             float64     `gorm:"type:double precision;not null"`
	PackageSize        string      `gorm:"type:varchar(16);not null"`
	Zone               string      `gorm:"type:varchar(32);not null"`
	Tier               string      `gorm:"type:varchar(16);not null"`
	Fee                float64     `gorm:"type:numeric(10,2);not null"`
	MinimumOrder       float64     `gorm:"type:numeric(10,2);not null"`
	MeetsMinimum       bool        `gorm:"not null"`
	EstimatedDays      string      `gorm:"type:varchar(16)"`
	EstimatedDelivery  time.Time   `gorm:"not null"`
	OriginHubCode      string      `gorm:"type:varchar(32)"`
	DestinationHubCode string      `gorm:"type:varchar(32)"`
	LocalHubCode       string      `gorm:"type:varchar(32)"`
	Status             string      `gorm:"type:varchar(16);not null;index"`
	CreatedAt          time.Time   `gorm:"not null;index"`
	Legs               []LegDTO    `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LegDTO is one hop of a shipment.
type LegDTO struct {
	ShipmentID uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number     int         `gorm:"primaryKey;autoIncrement:false"`
	Type       string      `gorm:"type:varchar(16);not null"`
	From       EndpointDTO `gorm:"embedded;embeddedPrefix:from_"`
	To         EndpointDTO `gorm:"embedded;embeddedPrefix:to_"`
	Status     string      `gorm:"type:varchar(16);not null;index"`
	CourierID  *uuid.UUID  `gorm:"type:uuid;index"`
}

func (LegDTO) TableName() string {
	return "shipment_legs"
}

type LocationDTO struct {
	Line     string   `gorm:"type:varchar(512)"`
	City     string   `gorm:"type:varchar(255)"`
	Province string   `gorm:"type:varchar(255)"`
	Lat      *float64 `gorm:"type:double precision"`
	Lng      *float64 `gorm:"type:double precision"`
}

type EndpointDTO struct {
	Name    string   `gorm:"type:varchar(255)"`
	Address string   `gorm:"type:varchar(512)"`
	HubCode string   `gorm:"type:varchar(32)"`
	Lat     *float64 `gorm:"type:double precision"`
	Lng     *float64 `gorm:"type:double precision"`
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	id := s.ID().Bytes()
	quote := s.Quote()

	legs := make([]LegDTO, 0, len(s.Legs()))
	for _, l := range s.Legs() {
		legs = append(legs, legFromDomain(id, l))
	}

	return ShipmentDTO{
		ID:                 id,
		Pickup:             locationFromDomain(s.Pickup()),
		Delivery:           locationFromDomain(s.Delivery()),
		Weight:             s.Weight(),
		PackageSize:        s.PackageSize().String(),
		Zone:               s.Zone().String(),
		Tier:               s.Tier().String(),
		Fee:                quote.Fee,
		MinimumOrder:       quote.MinimumOrder,
		MeetsMinimum:       quote.MeetsMinimum,
		EstimatedDays:      quote.EstimatedDays,
		EstimatedDelivery:  s.EstimatedDelivery().UTC(),
		OriginHubCode:      s.OriginHubCode(),
		DestinationHubCode: s.DestinationHubCode(),
		LocalHubCode:       s.LocalHubCode(),
		Status:             s.Status().String(),
		CreatedAt:          s.CreatedAt().UTC(),
		Legs:               legs,
	}
}

func legFromDomain(shipmentID uuid.UUID, l *route.Leg) LegDTO {
	var courierID *uuid.UUID
	if id := l.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return LegDTO{
		ShipmentID: shipmentID,
		Number:     l.Number(),
		Type:       l.Type().String(),
		From:       endpointFromDomain(l.From()),
		To:         endpointFromDomain(l.To()),
		Status:     l.Status().String(),
		CourierID:  courierID,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := dto.Pickup.toDomain()
	if err != nil {
		return nil, err
	}
	delivery, err := dto.Delivery.toDomain()
	if err != nil {
		return nil, err
	}

	z, err := zone.ParseShippingZone(dto.Zone)
	if err != nil {
		return nil, err
	}
	tier, err := zone.ParseDeliveryTier(dto.Tier)
	if err != nil {
		return nil, err
	}

	legs := make([]*route.Leg, 0, len(dto.Legs))
	for _, legDTO := range dto.Legs {
		l, legErr := legToDomain(legDTO)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, l)
	}

	details := shipment.Details{
		Zone: z,
		Quote: fee.Quote{
			Fee:           dto.Fee,
			MinimumOrder:  dto.MinimumOrder,
			MeetsMinimum:  dto.MeetsMinimum,
			EstimatedDays: dto.EstimatedDays,
			Zone:          z,
			ZoneName:      z.DisplayName(),
		},
		EstimatedDelivery: dto.EstimatedDelivery.UTC(),
		LocalHubCode:      dto.LocalHubCode,
	}

	return shipment.RestoreShipment(id, pickup, delivery, dto.Weight, tier, details,
		dto.OriginHubCode, dto.DestinationHubCode, legs, dto.CreatedAt.UTC())
}

func legToDomain(dto LegDTO) (*route.Leg, error) {
	legType, err := route.ParseLegType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := route.ParseLegStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	from, err := dto.From.toDomain()
	if err != nil {
		return nil, err
	}
	to, err := dto.To.toDomain()
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if idErr != nil {
			return nil, idErr
		}
		courierID = &cID
	}

	return route.RestoreLeg(dto.Number, legType, from, to, status, courierID)
}

func locationFromDomain(l kernel.Location) LocationDTO {
	dto := LocationDTO{
		Line:     l.Line(),
		City:     l.City(),
		Province: l.Province(),
	}
	dto.Lat, dto.Lng = pointColumns(l.Point())
	return dto
}

func (dto LocationDTO) toDomain() (kernel.Location, error) {
	point, err := pointFromColumns(dto.Lat, dto.Lng)
	if err != nil {
		return kernel.Location{}, err
	}
	return kernel.NewLocation(dto.Line, dto.City, dto.Province, point)
}

func endpointFromDomain(e route.Endpoint) EndpointDTO {
	dto := EndpointDTO{
		Name:    e.Name(),
		Address: e.Address(),
		HubCode: e.HubCode(),
	}
	dto.Lat, dto.Lng = pointColumns(e.Coordinates())
	return dto
}

func (dto EndpointDTO) toDomain() (route.Endpoint, error) {
	point, err := pointFromColumns(dto.Lat, dto.Lng)
	if err != nil {
		return route.Endpoint{}, err
	}
	return route.RestoreEndpoint(dto.Name, dto.Address, dto.HubCode, point)
}

func pointColumns(p *kernel.GeoPoint) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lng := p.Lat(), p.Lng()
	return &lat, &lng
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
