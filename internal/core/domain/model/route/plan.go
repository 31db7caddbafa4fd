package route

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

var (
	ErrPlanHasNoLegs   = errs.NewValueIsRequiredError("route legs")
	ErrLegChainBroken  = errors.New("route legs are not connected")
	ErrLegCountInvalid = errors.New("leg count does not match delivery tier")
)

// Plan is the routing decision for one shipment. A failed plan keeps the tier and
// any hub that was resolved, carries the failure, and has no legs.
type Plan struct {
	originHub      *hub.Hub
	destinationHub *hub.Hub
	tier           zone.DeliveryTier
	legs           []*Leg
	estimatedDays  int
	err            error
}

// NewPlan validates a successful plan: legs are numbered 1..n, connected, and their
// count matches the tier (direct 1, single hub 2, hub-to-hub 2 or 3).
func NewPlan(
	tier zone.DeliveryTier,
	originHub, destinationHub *hub.Hub,
	legs []*Leg,
	estimatedDays int,
) (Plan, error) {
	if err := tier.Validate(); err != nil {
		return Plan{}, err
	}
	if len(legs) == 0 {
		return Plan{}, ErrPlanHasNoLegs
	}
	if estimatedDays < 1 {
		return Plan{}, errs.NewValueIsOutOfRangeError("estimated days", estimatedDays, 1, nil)
	}

	if err := ValidateLegs(legs); err != nil {
		return Plan{}, err
	}

	p := Plan{
		originHub:      originHub,
		destinationHub: destinationHub,
		tier:           tier,
		legs:           legs,
		estimatedDays:  estimatedDays,
	}
	if want := p.expectedLegCount(); len(legs) != want {
		return Plan{}, fmt.Errorf("%w: %s route has %d legs, want %d", ErrLegCountInvalid, tier, len(legs), want)
	}

	return p, nil
}

// ValidateLegs checks that legs are numbered 1..n and that each leg starts where the
// previous one ended.
func ValidateLegs(legs []*Leg) error {
	if len(legs) == 0 {
		return ErrPlanHasNoLegs
	}
	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return err
		}
		if leg.Number() != i+1 {
			return fmt.Errorf("%w: leg %d is numbered %d", ErrLegChainBroken, i+1, leg.Number())
		}
		if i > 0 && !legs[i-1].To().IsEqual(leg.From()) {
			return fmt.Errorf("%w: leg %d ends at %s, leg %d starts at %s",
				ErrLegChainBroken, i, legs[i-1].To(), i+1, leg.From())
		}
	}
	return nil
}

// FailedPlan records an unresolved route. cause must be non-nil.
func FailedPlan(tier zone.DeliveryTier, originHub, destinationHub *hub.Hub, cause error) Plan {
	if cause == nil {
		cause = errors.New("route planning failed")
	}
	return Plan{
		originHub:      originHub,
		destinationHub: destinationHub,
		tier:           tier,
		err:            cause,
	}
}

// Success reports whether the plan has legs. Callers must check it before Legs.
func (p Plan) Success() bool {
	return p.err == nil && len(p.legs) > 0
}

// Err returns the failure of an unsuccessful plan, or nil.
func (p Plan) Err() error {
	return p.err
}

// ErrorMessage is the human-readable failure, empty on success.
func (p Plan) ErrorMessage() string {
	if p.err == nil {
		return ""
	}
	return p.err.Error()
}

// OriginHub is nil for direct routes.
func (p Plan) OriginHub() *hub.Hub {
	return p.originHub
}

// DestinationHub is nil for direct routes.
func (p Plan) DestinationHub() *hub.Hub {
	return p.destinationHub
}

// IsSameHub is true for direct and single-hub routes, and for hub-to-hub routes whose
// ends resolve to one hub.
func (p Plan) IsSameHub() bool {
	if p.tier == zone.Direct {
		return true
	}
	return p.originHub != nil && p.originHub.IsEqual(p.destinationHub)
}

func (p Plan) IsDirect() bool {
	return p.tier == zone.Direct
}

func (p Plan) Tier() zone.DeliveryTier {
	return p.tier
}

func (p Plan) EstimatedDays() int {
	return p.estimatedDays
}

// Legs returns copies of the legs; a plan is immutable.
func (p Plan) Legs() []*Leg {
	out := make([]*Leg, len(p.legs))
	for i, l := range p.legs {
		out[i] = l.clone()
	}
	return out
}

func (p Plan) expectedLegCount() int {
	switch p.tier {
	case zone.Direct:
		return 1
	case zone.SingleHub:
		return 2
	default:
		if p.IsSameHub() {
			return 2
		}
		return 3
	}
}
