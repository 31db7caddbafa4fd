package fee

import "logistics/internal/core/domain/model/zone"

// Quote is the priced result of a fee lookup.
type Quote struct {
	Fee           float64
	MinimumOrder  float64
	MeetsMinimum  bool
	EstimatedDays string
	Zone          zone.ShippingZone
	ZoneName      string
}
