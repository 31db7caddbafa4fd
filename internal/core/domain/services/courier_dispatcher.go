package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// ErrNoDriverAvailable is returned when no courier at the hub passes every filter.
// Callers may retry later, broaden the vehicle set or escalate to manual assignment.
var ErrNoDriverAvailable = errors.New("no available driver")

// DispatchRequest describes the leg that needs a courier.
type DispatchRequest struct {
	HubCode string
	LegType route.LegType
	Size    courier.PackageSize
	Weight  float64
}

func (r DispatchRequest) Validate() error {
	var weightErr error
	if r.Weight <= 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", r.Weight))
	}
	var hubErr error
	if strings.TrimSpace(r.HubCode) == "" {
		hubErr = errs.NewValueIsRequiredError("hub code")
	}
	return errors.Join(hubErr, r.LegType.Validate(), r.Size.Validate(), weightErr)
}

// Assignment is the outcome of AutoAssignDriver. It names a candidate, it does not
// reserve one: the caller claims the courier in its own transaction.
type Assignment struct {
	Success bool
	Courier *courier.Courier
	Err     error
}

// CourierDispatcher selects couriers for legs. It never changes courier state, so it is
// safe to call for previews and from concurrent requests.
type CourierDispatcher struct {
	capabilities courier.CapabilityTable
}

func NewCourierDispatcher(capabilities courier.CapabilityTable) CourierDispatcher {
	return CourierDispatcher{capabilities: capabilities}
}

// RequiredVehicles is the vehicle set allowed to carry size.
func (d CourierDispatcher) RequiredVehicles(size courier.PackageSize) []courier.VehicleType {
	return d.capabilities.RequiredVehicles(size)
}

// FindAvailableDrivers returns every eligible courier, best first.
//
// A courier is eligible when its home hub matches, it is active and available, its
// vehicle type is allowed for the size and lifts the weight, and its driver type
// serves the leg. Candidates are ranked by rating, then completed jobs, both
// descending, then by id.
func (d CourierDispatcher) FindAvailableDrivers(req DispatchRequest, fleet courier.Fleet) ([]*courier.Courier, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var candidates []*courier.Courier
	for _, c := range fleet.AtHub(req.HubCode) {
		if c.IsEligible(req.HubCode, req.LegType, req.Size, req.Weight, d.capabilities) {
			candidates = append(candidates, c)
		}
	}

	slices.SortFunc(candidates, func(a, b *courier.Courier) int {
		return cmp.Or(
			cmp.Compare(b.Rating(), a.Rating()),
			cmp.Compare(b.CompletedCount(), a.CompletedCount()),
			a.ID().Compare(b.ID()),
		)
	})

	return candidates, nil
}

// AutoAssignDriver returns the best candidate, or a failed Assignment whose error
// names the leg type and the vehicle types that were required.
func (d CourierDispatcher) AutoAssignDriver(req DispatchRequest, fleet courier.Fleet) Assignment {
	candidates, err := d.FindAvailableDrivers(req, fleet)
	if err != nil {
		return Assignment{Err: err}
	}

	if len(candidates) == 0 {
		return Assignment{Err: d.NoDriverError(req)}
	}

	return Assignment{Success: true, Courier: candidates[0]}
}

// NoDriverError wraps ErrNoDriverAvailable with the leg type, hub and required vehicles.
func (d CourierDispatcher) NoDriverError(req DispatchRequest) error {
	vehicles := d.capabilities.RequiredVehicles(req.Size)
	names := make([]string, len(vehicles))
	for i, v := range vehicles {
		names[i] = v.String()
	}
	return fmt.Errorf("%w for %s leg at %s: %s package of %vkg needs one of [%s]",
		ErrNoDriverAvailable, req.LegType, strings.ToUpper(req.HubCode), req.Size, req.Weight, strings.Join(names, ", "))
}
