// Package hubrepo persists the hub network. Hubs are reference data keyed by their
// code; coverage keywords live in a postgres text array.
package hubrepo

import (
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// HubDTO represents the database structure for persisting hubs.
type HubDTO struct {
	Code             string         `gorm:"type:varchar(32);primaryKey"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Address          LocationDTO    `gorm:"embedded;embeddedPrefix:address_"`
	CoverageKeywords pq.StringArray `gorm:"type:text[]"`
	Active           bool           `gorm:"not null;index"`
}

func (HubDTO) TableName() string {
	return "hubs"
}

// LocationDTO is the embedded hub address.
type LocationDTO struct {
	Line     string   `gorm:"type:varchar(512)"`
	City     string   `gorm:"type:varchar(255)"`
	Province string   `gorm:"type:varchar(255)"`
	Lat      *float64 `gorm:"type:double precision"`
	Lng      *float64 `gorm:"type:double precision"`
}

func fromDomain(h *hub.Hub) HubDTO {
	return HubDTO{
		Code:             h.Code(),
		Name:             h.Name(),
		Address:          locationFromDomain(h.Address()),
		CoverageKeywords: pq.StringArray(h.CoverageKeywords()),
		Active:           h.IsActive(),
	}
}

func toDomain(dto HubDTO) (*hub.Hub, error) {
	address, err := dto.Address.toDomain()
	if err != nil {
		return nil, err
	}
	return hub.RestoreHub(dto.Code, dto.Name, address, dto.CoverageKeywords, dto.Active)
}

func locationFromDomain(l kernel.Location) LocationDTO {
	dto := LocationDTO{
		Line:     l.Line(),
		City:     l.City(),
		Province: l.Province(),
	}
	if p := l.Point(); p != nil {
		lat, lng := p.Lat(), p.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}
	return dto
}

// toDomain rebuilds the location. Coordinates are kept only when both are present.
func (dto LocationDTO) toDomain() (kernel.Location, error) {
	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if err != nil {
			return kernel.Location{}, err
		}
		point = &p
	}
	return kernel.NewLocation(dto.Line, dto.City, dto.Province, point)
}
