package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/fee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	ErrPlanIsNotSuccessful      = errors.New("shipment needs a successfully planned route")
	ErrLegNotFound              = errors.New("leg not found")
	ErrLocalHubIsRequired       = errs.NewValueIsRequiredError("local hub code")
)

// Shipment is the routed record of one parcel: where it goes, what it costs, when it
// should arrive and which courier carries each leg.
type Shipment struct {
	id                 kernel.UUID
	pickup             kernel.Location
	delivery           kernel.Location
	weight             float64
	size               courier.PackageSize
	zone               zone.ShippingZone
	tier               zone.DeliveryTier
	quote              fee.Quote
	estimatedDelivery  time.Time
	originHubCode      string
	destinationHubCode string
	localHubCode       string
	legs               []*route.Leg
	createdAt          time.Time
	guard              guard.ConstructorGuard
}

// Details carries the priced and scheduled parts of a shipment.
type Details struct {
	Zone              zone.ShippingZone
	Quote             fee.Quote
	EstimatedDelivery time.Time
	// LocalHubCode is the hub whose couriers work a direct route. Ignored for hub routes.
	LocalHubCode string
}

// NewShipment records a successful plan.
func NewShipment(
	id kernel.UUID,
	pickup, delivery kernel.Location,
	weight float64,
	plan route.Plan,
	details Details,
	now time.Time,
) (*Shipment, error) {
	if !plan.Success() {
		if plan.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrPlanIsNotSuccessful, plan.Err())
		}
		return nil, ErrPlanIsNotSuccessful
	}

	var originHubCode, destinationHubCode string
	if h := plan.OriginHub(); h != nil {
		originHubCode = h.Code()
	}
	if h := plan.DestinationHub(); h != nil {
		destinationHubCode = h.Code()
	}

	return RestoreShipment(id, pickup, delivery, weight, plan.Tier(), details,
		originHubCode, destinationHubCode, plan.Legs(), now)
}

// RestoreShipment rebuilds a shipment from storage.
func RestoreShipment(
	id kernel.UUID,
	pickup, delivery kernel.Location,
	weight float64,
	tier zone.DeliveryTier,
	details Details,
	originHubCode, destinationHubCode string,
	legs []*route.Leg,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		zone:               details.Zone,
		quote:              details.Quote,
		estimatedDelivery:  details.EstimatedDelivery,
		originHubCode:      originHubCode,
		destinationHubCode: destinationHubCode,
		localHubCode:       strings.ToUpper(strings.TrimSpace(details.LocalHubCode)),
		createdAt:          createdAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setLocations(pickup, delivery),
		s.setWeight(weight),
		details.Zone.Validate(),
		s.setTier(tier),
		s.setLegs(legs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Pickup() kernel.Location {
	return s.pickup
}

func (s *Shipment) Delivery() kernel.Location {
	return s.delivery
}

func (s *Shipment) Weight() float64 {
	return s.weight
}

func (s *Shipment) PackageSize() courier.PackageSize {
	return s.size
}

func (s *Shipment) Zone() zone.ShippingZone {
	return s.zone
}

func (s *Shipment) Tier() zone.DeliveryTier {
	return s.tier
}

func (s *Shipment) Quote() fee.Quote {
	return s.quote
}

func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

func (s *Shipment) OriginHubCode() string {
	return s.originHubCode
}

func (s *Shipment) DestinationHubCode() string {
	return s.destinationHubCode
}

func (s *Shipment) LocalHubCode() string {
	return s.localHubCode
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Legs returns the shipment's legs in order. The legs are shared, not copied; change
// them through the shipment's methods.
func (s *Shipment) Legs() []*route.Leg {
	out := make([]*route.Leg, len(s.legs))
	copy(out, s.legs)
	return out
}

// Leg returns the leg with the given 1-based number.
func (s *Shipment) Leg(number int) (*route.Leg, error) {
	if number < 1 || number > len(s.legs) {
		return nil, fmt.Errorf("%w: shipment %s has no leg %d", ErrLegNotFound, s.id, number)
	}
	return s.legs[number-1], nil
}

// FirstPendingLeg returns the lowest numbered pending leg, or nil.
func (s *Shipment) FirstPendingLeg() *route.Leg {
	for _, l := range s.legs {
		if l.Status() == route.Pending {
			return l
		}
	}
	return nil
}

// ReadyLeg returns the leg that needs a courier now: the first pending leg, when it is
// leg 1 or the leg before it is already in transit or completed. Later legs wait so
// their couriers are not held for the whole relay. Failed shipments have no ready leg.
func (s *Shipment) ReadyLeg() *route.Leg {
	if s.Status() == Failed {
		return nil
	}
	for i, l := range s.legs {
		if l.Status() != route.Pending {
			continue
		}
		if i == 0 {
			return l
		}
		if prev := s.legs[i-1].Status(); prev == route.InTransit || prev == route.Completed {
			return l
		}
		return nil
	}
	return nil
}

// DispatchHubCode returns the hub whose couriers work the leg: pickup and line-haul
// legs leave from the origin hub, delivery legs from the destination hub, and direct
// routes use the local hub.
func (s *Shipment) DispatchHubCode(leg *route.Leg) string {
	if s.tier == zone.Direct {
		return s.localHubCode
	}
	if leg.Type() == route.Delivery {
		return s.destinationHubCode
	}
	return s.originHubCode
}

// Status is derived from the legs.
func (s *Shipment) Status() Status {
	allPending := true
	for _, l := range s.legs {
		if l.Status() == route.Failed {
			return Failed
		}
		if l.Status() != route.Pending {
			allPending = false
		}
	}
	if allPending {
		return Planned
	}
	if s.legs[len(s.legs)-1].Status() == route.Completed {
		return Delivered
	}
	return InProgress
}

// AssignLeg binds a courier to a leg. Earlier legs must not have failed.
func (s *Shipment) AssignLeg(number int, courierID kernel.UUID) error {
	leg, err := s.Leg(number)
	if err != nil {
		return err
	}
	if s.Status() == Failed {
		return errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("shipment %s has a failed leg", s.id))
	}
	return leg.Assign(courierID)
}

// UpdateLegStatus moves a leg to in_transit, completed or failed. A leg cannot start
// before the previous leg is completed.
func (s *Shipment) UpdateLegStatus(number int, status route.LegStatus) error {
	leg, err := s.Leg(number)
	if err != nil {
		return err
	}

	switch status {
	case route.InTransit:
		if number > 1 && s.legs[number-2].Status() != route.Completed {
			return errs.NewValueIsInvalidErrorWithCause("leg status",
				fmt.Errorf("leg %d cannot start before leg %d is completed", number, number-1))
		}
		return leg.Start()
	case route.Completed:
		return leg.Complete()
	case route.Failed:
		return leg.Fail()
	default:
		return errs.NewValueIsInvalidErrorWithCause("leg status",
			fmt.Errorf("%s cannot be set directly", status))
	}
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setLocations(pickup, delivery kernel.Location) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	s.pickup = pickup
	s.delivery = delivery
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	s.weight = weight
	s.size = courier.PackageSizeForWeight(weight)
	return nil
}

func (s *Shipment) setTier(tier zone.DeliveryTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	if tier == zone.Direct && s.localHubCode == "" {
		return ErrLocalHubIsRequired
	}
	s.tier = tier
	return nil
}

func (s *Shipment) setLegs(legs []*route.Leg) error {
	if err := route.ValidateLegs(legs); err != nil {
		return err
	}
	s.legs = legs
	return nil
}
