package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound a valid latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound a valid longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var (
	// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
	ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")
	// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
	ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")
	// ErrLocationIsEmpty is returned when neither an address nor a city is supplied.
	ErrLocationIsEmpty = errs.NewValueIsRequiredError("address or city")
)

// GeoPoint is an immutable latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates the coordinate ranges and returns a GeoPoint.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(14.8433, 120.8114) // Malolos
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	var errList []error
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		errList = append(errList, errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax))
	}
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		errList = append(errList, errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax))
	}
	if err := errors.Join(errList...); err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the point was built through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 { return p.lat }

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 { return p.lng }

// IsEqual compares two points by value.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// Location is a pickup or delivery place as supplied by the storefront: a free-text
// address plus optional structured city, province and coordinates.
//
// Locations are deliberately loosely structured. Zone classification and hub lookup
// fall back to text matching on the address when the structured fields are empty.
//
// Example:
//
//	loc, err := kernel.NewLocation("123 Paseo del Congreso, Malolos, Bulacan", "Malolos", "Bulacan", nil)
type Location struct { //nolint:recvcheck // pointer receivers only for setters
	address  string
	city     string
	province string
	point    *GeoPoint
	guard    guard.ConstructorGuard
}

// NewLocation builds a Location. At least one of address and city must be non-blank.
// Surrounding whitespace is trimmed from all text fields. A non-nil point must be valid.
func NewLocation(address, city, province string, point *GeoPoint) (Location, error) {
	loc := Location{
		address:  strings.TrimSpace(address),
		city:     strings.TrimSpace(city),
		province: strings.TrimSpace(province),
		guard:    guard.NewConstructorGuard(),
	}

	if loc.address == "" && loc.city == "" {
		return Location{}, ErrLocationIsEmpty
	}

	if err := loc.setPoint(point); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports whether the location was built through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Address returns the free-text address, or the composed "city, province" when the
// caller supplied only structured fields.
func (l Location) Address() string {
	if l.address != "" {
		return l.address
	}
	return l.CityProvince()
}

// Line returns the free-text address exactly as supplied, possibly empty.
func (l Location) Line() string { return l.address }

// City returns the structured city, possibly empty.
func (l Location) City() string { return l.city }

// Province returns the structured province or state, possibly empty.
func (l Location) Province() string { return l.province }

// Point returns the coordinates, or nil when unknown.
func (l Location) Point() *GeoPoint {
	if l.point == nil {
		return nil
	}
	p := *l.point
	return &p
}

// CityProvince composes "city, province" from the structured fields. When the city is
// missing the free-text address is returned so classification still has text to match.
func (l Location) CityProvince() string {
	switch {
	case l.city != "" && l.province != "":
		return l.city + ", " + l.province
	case l.city != "":
		return l.city
	default:
		return l.address
	}
}

// IsEqual compares two locations by value.
func (l Location) IsEqual(other Location) bool {
	if l.address != other.address || l.city != other.city || l.province != other.province {
		return false
	}
	if l.point == nil || other.point == nil {
		return l.point == nil && other.point == nil
	}
	return l.point.IsEqual(*other.point)
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%s)", l.Address())
}

func (l *Location) setPoint(point *GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	p := *point
	l.point = &p
	return nil
}
