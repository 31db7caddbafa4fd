package zone

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// ShippingZone is the geographic relationship between a seller and a buyer.
// It prices a shipment and selects its delivery tier.
type ShippingZone int

const (
	// ZoneUnknown is the zero value and never produced by classification.
	ZoneUnknown ShippingZone = iota
	SameCity
	SameProvince
	CentralRegion
	Metro
	OtherRegion
	IslandGroupA
	IslandGroupB
)

func getZoneCodes() map[ShippingZone]string {
	return map[ShippingZone]string{
		ZoneUnknown:   "unknown",
		SameCity:      "same_city",
		SameProvince:  "same_province",
		CentralRegion: "central_region",
		Metro:         "metro",
		OtherRegion:   "other_region",
		IslandGroupA:  "island_group_a",
		IslandGroupB:  "island_group_b",
	}
}

func getZoneNames() map[ShippingZone]string {
	//nolint:exhaustive // ZoneUnknown has no display name
	return map[ShippingZone]string{
		SameCity:      "Same City",
		SameProvince:  "Same Province",
		CentralRegion: "Central Luzon",
		Metro:         "Metro Manila",
		OtherRegion:   "Other Region",
		IslandGroupA:  "Visayas",
		IslandGroupB:  "Mindanao",
	}
}

// AllZones lists the classifiable zones in ascending distance order.
func AllZones() []ShippingZone {
	return []ShippingZone{SameCity, SameProvince, CentralRegion, Metro, OtherRegion, IslandGroupA, IslandGroupB}
}

// ParseShippingZone maps a wire code such as "same_city" back to a zone.
func ParseShippingZone(code string) (ShippingZone, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for z, c := range getZoneCodes() {
		if z != ZoneUnknown && c == code {
			return z, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("shipping zone", fmt.Errorf("%q is not a known zone", code))
}

// Validate rejects ZoneUnknown and out-of-range values.
func (z ShippingZone) Validate() error {
	if _, ok := getZoneNames()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipping zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the wire code, e.g. "island_group_a".
func (z ShippingZone) String() string {
	if code, ok := getZoneCodes()[z]; ok {
		return code
	}
	return "unknown"
}

// DisplayName returns the customer-facing zone name.
func (z ShippingZone) DisplayName() string {
	if name, ok := getZoneNames()[z]; ok {
		return name
	}
	return getZoneNames()[OtherRegion]
}
