package zone

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// DeliveryTier is the coarse routing strategy derived from a zone.
//
//	Direct     no hub, one delivery leg
//	SingleHub  one hub, pickup + delivery legs
//	HubToHub   one or two hubs, two or three legs
type DeliveryTier int

const (
	// TierUnknown is the zero value and never produced by DeliveryTierFor.
	TierUnknown DeliveryTier = iota
	Direct
	SingleHub
	HubToHub
)

func getTierCodes() map[DeliveryTier]string {
	return map[DeliveryTier]string{
		TierUnknown: "unknown",
		Direct:      "direct",
		SingleHub:   "single_hub",
		HubToHub:    "hub_to_hub",
	}
}

// DeliveryTierFor maps a zone to its tier. The mapping is fixed:
// same city is direct, same province goes through one hub, everything else is hub to hub.
func DeliveryTierFor(z ShippingZone) DeliveryTier {
	switch z { //nolint:exhaustive // every other zone is hub to hub
	case SameCity:
		return Direct
	case SameProvince:
		return SingleHub
	default:
		return HubToHub
	}
}

// ParseDeliveryTier maps a wire code such as "single_hub" back to a tier.
func ParseDeliveryTier(code string) (DeliveryTier, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for t, c := range getTierCodes() {
		if t != TierUnknown && c == code {
			return t, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause("delivery tier", fmt.Errorf("%q is not a known tier", code))
}

// Validate rejects TierUnknown and out-of-range values.
func (t DeliveryTier) Validate() error {
	if t != Direct && t != SingleHub && t != HubToHub {
		return errs.NewValueIsInvalidErrorWithCause("delivery tier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

func (t DeliveryTier) String() string {
	if code, ok := getTierCodes()[t]; ok {
		return code
	}
	return "unknown"
}
