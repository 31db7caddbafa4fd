package route

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// LegType is the kind of physical movement a leg represents.
type LegType int

const (
	LegTypeUnknown LegType = iota
	// Pickup moves a parcel from the seller to a hub.
	Pickup
	// LineHaul moves a parcel between two hubs.
	LineHaul
	// Delivery moves a parcel to the buyer, from a hub or straight from the seller.
	Delivery
)

func getLegTypeStrings() map[LegType]string {
	return map[LegType]string{
		LegTypeUnknown: "unknown",
		Pickup:         "pickup",
		LineHaul:       "line_haul",
		Delivery:       "delivery",
	}
}

func ParseLegType(code string) (LegType, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for t, str := range getLegTypeStrings() {
		if t != LegTypeUnknown && str == code {
			return t, nil
		}
	}
	return LegTypeUnknown, errs.NewValueIsInvalidErrorWithCause("leg type", fmt.Errorf("%q is not a valid leg type", code))
}

func (t LegType) Validate() error {
	if t != Pickup && t != LineHaul && t != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("leg type", fmt.Errorf("%d is not a valid leg type", t))
	}
	return nil
}

func (t LegType) String() string {
	if str, ok := getLegTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
