package route

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLegIsNotConstructed = errors.New("Leg must be created via a Chain or RestoreLeg")

// Leg is one physical movement of a shipment.
type Leg struct {
	number    int
	legType   LegType
	from      Endpoint
	to        Endpoint
	status    LegStatus
	courierID *kernel.UUID
	guard     guard.ConstructorGuard
}

func newLeg(number int, legType LegType, from, to Endpoint) (*Leg, error) {
	return RestoreLeg(number, legType, from, to, Pending, nil)
}

// RestoreLeg rebuilds a leg from storage, validating status/courier consistency.
func RestoreLeg(
	number int,
	legType LegType,
	from, to Endpoint,
	status LegStatus,
	courierID *kernel.UUID,
) (*Leg, error) {
	l := &Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setNumber(number),
		l.setType(legType),
		l.setEndpoints(from, to),
		l.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Leg) Validate() error {
	if l == nil {
		return ErrLegIsNotConstructed
	}
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Number is 1-based and contiguous within a plan.
func (l *Leg) Number() int {
	return l.number
}

func (l *Leg) Type() LegType {
	return l.legType
}

func (l *Leg) From() Endpoint {
	return l.from
}

func (l *Leg) To() Endpoint {
	return l.to
}

func (l *Leg) Status() LegStatus {
	return l.status
}

// CourierID is nil while the leg is pending.
func (l *Leg) CourierID() *kernel.UUID {
	if l.courierID == nil {
		return nil
	}
	id := *l.courierID
	return &id
}

// Assign binds a courier, replacing any courier already bound to an assigned leg.
func (l *Leg) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	next, err := l.status.Assign()
	if err != nil {
		return err
	}

	l.status = next
	l.courierID = &courierID
	return nil
}

func (l *Leg) Start() error {
	next, err := l.status.Start()
	if err != nil {
		return err
	}
	l.status = next
	return nil
}

func (l *Leg) Complete() error {
	next, err := l.status.Complete()
	if err != nil {
		return err
	}
	l.status = next
	return nil
}

// Fail marks the leg failed. The courier binding is kept for the record.
func (l *Leg) Fail() error {
	next, err := l.status.Fail()
	if err != nil {
		return err
	}
	l.status = next
	return nil
}

func (l *Leg) clone() *Leg {
	c := *l
	c.courierID = l.CourierID()
	return &c
}

func (l *Leg) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("leg number", number, 1, maxLegs)
	}
	l.number = number
	return nil
}

func (l *Leg) setType(legType LegType) error {
	if err := legType.Validate(); err != nil {
		return err
	}
	l.legType = legType
	return nil
}

func (l *Leg) setEndpoints(from, to Endpoint) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if legType := l.legType; legType == LineHaul && (!from.IsHub() || !to.IsHub()) {
		return errs.NewValueIsInvalidErrorWithCause("leg endpoints",
			fmt.Errorf("%s leg must connect two hubs", legType))
	}
	l.from = from
	l.to = to
	return nil
}

func (l *Leg) setStatus(status LegStatus, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
		id := *courierID
		l.courierID = &id
	}
	l.status = status
	return nil
}
