package courier

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrHomeHubIsRequired       = errs.NewValueIsRequiredError("home hub code")
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	ErrCourierIsNotAvailable   = errors.New("courier is not available")
	ErrCourierIsNotBusy        = errors.New("courier is not busy")
)

// Courier is a member of the fleet, attached to one home hub.
//
// Status changes (MarkBusy, Release, CompleteJob) belong to the assignment workflow.
// Selection in the dispatcher only reads couriers.
type Courier struct {
	id             kernel.UUID
	name           string
	homeHubCode    string
	driverType     DriverType
	vehicle        Vehicle
	status         Status
	rating         float64
	completedCount int
	active         bool
	guard          guard.ConstructorGuard
}

// NewCourier registers an active, available courier with no rating and no jobs.
func NewCourier(
	id kernel.UUID,
	name string,
	homeHubCode string,
	driverType DriverType,
	vehicle Vehicle,
) (*Courier, error) {
	return RestoreCourier(id, name, homeHubCode, driverType, vehicle, Available, MinRating, 0, true)
}

// RestoreCourier rebuilds a courier from storage.
func RestoreCourier(
	id kernel.UUID,
	name string,
	homeHubCode string,
	driverType DriverType,
	vehicle Vehicle,
	status Status,
	rating float64,
	completedCount int,
	active bool,
) (*Courier, error) {
	c := &Courier{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setHomeHubCode(homeHubCode),
		c.setDriverType(driverType),
		c.setVehicle(vehicle),
		c.setStatus(status),
		c.SetRating(rating),
		c.setCompletedCount(completedCount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) HomeHubCode() string {
	return c.homeHubCode
}

func (c *Courier) DriverType() DriverType {
	return c.driverType
}

func (c *Courier) Vehicle() Vehicle {
	return c.vehicle
}

func (c *Courier) Status() Status {
	return c.status
}

func (c *Courier) Rating() float64 {
	return c.rating
}

func (c *Courier) CompletedCount() int {
	return c.completedCount
}

func (c *Courier) IsActive() bool {
	return c.active
}

// IsAvailable is true for active couriers in the Available status.
func (c *Courier) IsAvailable() bool {
	return c.active && c.status == Available
}

// CanCarry checks the payload limit and the vehicle type against table for size.
func (c *Courier) CanCarry(size PackageSize, weight float64, table CapabilityTable) bool {
	return c.vehicle.CanLift(weight) && table.Allows(size, c.vehicle.Type())
}

// IsEligible applies every dispatch filter: home hub, availability, vehicle and
// driver type.
func (c *Courier) IsEligible(
	hubCode string,
	legType route.LegType,
	size PackageSize,
	weight float64,
	table CapabilityTable,
) bool {
	return strings.EqualFold(c.homeHubCode, hubCode) &&
		c.IsAvailable() &&
		c.CanCarry(size, weight, table) &&
		c.driverType.ServesLeg(legType)
}

// MarkBusy claims an available courier for a leg.
func (c *Courier) MarkBusy() error {
	if !c.IsAvailable() {
		return fmt.Errorf("%w: %s is %s", ErrCourierIsNotAvailable, c.id, c.status)
	}
	c.status = Busy
	return nil
}

// Release frees a busy courier without counting a job.
func (c *Courier) Release() error {
	if c.status != Busy {
		return fmt.Errorf("%w: %s is %s", ErrCourierIsNotBusy, c.id, c.status)
	}
	c.status = Available
	return nil
}

// CompleteJob frees a busy courier and counts the finished leg.
func (c *Courier) CompleteJob() error {
	if err := c.Release(); err != nil {
		return err
	}
	c.completedCount++
	return nil
}

// GoOffline takes the courier out of dispatch. A busy courier must be released first.
func (c *Courier) GoOffline() error {
	if c.status == Busy {
		return fmt.Errorf("%w: %s is busy", ErrCourierIsNotAvailable, c.id)
	}
	c.status = Offline
	return nil
}

func (c *Courier) GoOnline() {
	if c.status == Offline {
		c.status = Available
	}
}

func (c *Courier) Deactivate() {
	c.active = false
}

func (c *Courier) SetRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	c.rating = rating
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setHomeHubCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrHomeHubIsRequired
	}
	c.homeHubCode = code
	return nil
}

func (c *Courier) setDriverType(driverType DriverType) error {
	if err := driverType.Validate(); err != nil {
		return err
	}
	c.driverType = driverType
	return nil
}

func (c *Courier) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setCompletedCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completed count", fmt.Errorf("%d is negative", count))
	}
	c.completedCount = count
	return nil
}
