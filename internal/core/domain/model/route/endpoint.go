package route

import (
	"strings"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrEndpointIsNotConstructed = errs.NewValueIsRequiredError("endpoint must be created via NewEndpoint or HubEndpoint")
	ErrEndpointIsEmpty          = errs.NewValueIsRequiredError("endpoint name or address")
)

// Endpoint is one end of a leg: a seller, a buyer, or a hub.
type Endpoint struct {
	name        string
	address     string
	hubCode     string
	coordinates *kernel.GeoPoint
	guard       guard.ConstructorGuard
}

// NewEndpoint builds a non-hub endpoint. A blank name defaults to the address.
func NewEndpoint(name, address string, coordinates *kernel.GeoPoint) (Endpoint, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" && address == "" {
		return Endpoint{}, ErrEndpointIsEmpty
	}
	if name == "" {
		name = address
	}

	e := Endpoint{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return Endpoint{}, err
		}
		c := *coordinates
		e.coordinates = &c
	}
	return e, nil
}

// HubEndpoint builds the endpoint that references h.
func HubEndpoint(h *hub.Hub) (Endpoint, error) {
	if err := h.Validate(); err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		name:        h.Name(),
		address:     h.Address().CityProvince(),
		hubCode:     h.Code(),
		coordinates: h.Coordinates(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreEndpoint rebuilds an endpoint from storage.
func RestoreEndpoint(name, address, hubCode string, coordinates *kernel.GeoPoint) (Endpoint, error) {
	e, err := NewEndpoint(name, address, coordinates)
	if err != nil {
		return Endpoint{}, err
	}
	e.hubCode = hubCode
	return e, nil
}

func (e Endpoint) Validate() error {
	return e.guard.Validate(ErrEndpointIsNotConstructed)
}

func (e Endpoint) Name() string {
	return e.name
}

func (e Endpoint) Address() string {
	return e.address
}

// HubCode is empty for seller and buyer endpoints.
func (e Endpoint) HubCode() string {
	return e.hubCode
}

func (e Endpoint) IsHub() bool {
	return e.hubCode != ""
}

func (e Endpoint) Coordinates() *kernel.GeoPoint {
	if e.coordinates == nil {
		return nil
	}
	c := *e.coordinates
	return &c
}

// IsEqual compares every field, coordinates included.
func (e Endpoint) IsEqual(other Endpoint) bool {
	if e.name != other.name || e.address != other.address || e.hubCode != other.hubCode {
		return false
	}
	if e.coordinates == nil || other.coordinates == nil {
		return e.coordinates == nil && other.coordinates == nil
	}
	return e.coordinates.IsEqual(*other.coordinates)
}

func (e Endpoint) String() string {
	if e.hubCode != "" {
		return e.hubCode + " " + e.name
	}
	return e.name
}
