package courier

import (
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// DriverType is the kind of legs a courier works.
type DriverType int

const (
	DriverTypeUnknown DriverType = iota
	PickupDriver
	DeliveryDriver
	// LineHaulDriver couriers form a separate pool and never take local legs.
	LineHaulDriver
	// AllRoundDriver couriers take any local leg, but not line-haul.
	AllRoundDriver
)

func getDriverTypeStrings() map[DriverType]string {
	return map[DriverType]string{
		DriverTypeUnknown: "unknown",
		PickupDriver:      "pickup",
		DeliveryDriver:    "delivery",
		LineHaulDriver:    "line_haul",
		AllRoundDriver:    "all_round",
	}
}

func ParseDriverType(code string) (DriverType, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for d, str := range getDriverTypeStrings() {
		if d != DriverTypeUnknown && str == code {
			return d, nil
		}
	}
	return DriverTypeUnknown, errs.NewValueIsInvalidErrorWithCause("driver type", fmt.Errorf("%q is not a valid driver type", code))
}

func (d DriverType) Validate() error {
	if d < PickupDriver || d > AllRoundDriver {
		return errs.NewValueIsInvalidErrorWithCause("driver type", fmt.Errorf("%d is not a valid driver type", d))
	}
	return nil
}

func (d DriverType) String() string {
	if str, ok := getDriverTypeStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// ServesLeg reports whether this driver type may work a leg of the given type.
// Line-haul legs need a line-haul driver; local legs take a matching or all-round one.
func (d DriverType) ServesLeg(legType route.LegType) bool {
	switch legType {
	case route.LineHaul:
		return d == LineHaulDriver
	case route.Pickup:
		return d == PickupDriver || d == AllRoundDriver
	case route.Delivery:
		return d == DeliveryDriver || d == AllRoundDriver
	default:
		return false
	}
}
