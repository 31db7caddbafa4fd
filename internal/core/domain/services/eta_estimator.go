package services

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// TransitTable is the fixed transit time per delivery tier.
type TransitTable struct {
	Direct    time.Duration
	SingleHub time.Duration
	HubToHub  time.Duration
}

func DefaultTransitTable() TransitTable {
	return TransitTable{
		Direct:    12 * time.Hour,
		SingleHub: 36 * time.Hour,
		HubToHub:  72 * time.Hour,
	}
}

func (t TransitTable) For(tier zone.DeliveryTier) (time.Duration, error) {
	switch tier {
	case zone.Direct:
		return t.Direct, nil
	case zone.SingleHub:
		return t.SingleHub, nil
	case zone.HubToHub:
		return t.HubToHub, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("delivery tier", fmt.Errorf("%d is not a valid tier", tier))
	}
}

// ETAEstimator adds the tier's transit time to a start time. Hubs do not work
// weekends: an arrival on Saturday moves two days later, on Sunday one day later.
type ETAEstimator struct {
	transit TransitTable
	now     func() time.Time
}

// NewETAEstimator uses now when Estimate gets no start time. A nil now means time.Now.
func NewETAEstimator(transit TransitTable, now func() time.Time) ETAEstimator {
	if now == nil {
		now = time.Now
	}
	return ETAEstimator{transit: transit, now: now}
}

func (e ETAEstimator) Estimate(tier zone.DeliveryTier, start *time.Time) (time.Time, error) {
	transit, err := e.transit.For(tier)
	if err != nil {
		return time.Time{}, err
	}

	from := e.now()
	if start != nil {
		from = *start
	}

	eta := from.Add(transit)
	switch eta.Weekday() {
	case time.Saturday:
		eta = eta.AddDate(0, 0, 2)
	case time.Sunday:
		eta = eta.AddDate(0, 0, 1)
	default:
	}
	return eta, nil
}
