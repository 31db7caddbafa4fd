package services

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// ErrHubNotFound is returned, together with a failed plan, when a location resolves
// to no active hub. Repeated failures usually mean the default sorting hub is missing.
var ErrHubNotFound = errors.New("no hub found")

// Estimated days per route shape.
const (
	directDays        = 1
	singleHubDays     = 2
	sameHubRelayDays  = 3
	hubToHubRelayDays = 5
)

// Stop is one end of a route request.
type Stop struct {
	City     string
	Province string
	// Name is the display name of the seller or buyer. Defaults to the address.
	Name        string
	Coordinates *kernel.GeoPoint
}

// Address composes "city, province" for classification and display.
func (s Stop) Address() string {
	city := strings.TrimSpace(s.City)
	province := strings.TrimSpace(s.Province)
	switch {
	case city != "" && province != "":
		return city + ", " + province
	case city != "":
		return city
	default:
		return province
	}
}

func (s Stop) validate(param string) error {
	if s.Address() == "" {
		return errs.NewValueIsRequiredError(param + " city or province")
	}
	return nil
}

type RouteRequest struct {
	Pickup   Stop
	Delivery Stop
}

func (r RouteRequest) Validate() error {
	return errors.Join(r.Pickup.validate("pickup"), r.Delivery.validate("delivery"))
}

// RoutePlanner turns a pickup/delivery pair into an ordered list of legs.
//
// The tier decides how many hubs are consulted:
//   - direct: none, one delivery leg from seller to buyer
//   - single_hub: the pickup hub, a pickup leg then a delivery leg
//   - hub_to_hub: pickup and delivery hubs, resolved independently; a line-haul leg
//     is added between them unless both resolve to the same hub
//
// The planner is stateless and safe for concurrent use.
type RoutePlanner struct {
	classifier zone.Classifier
}

func NewRoutePlanner(classifier zone.Classifier) RoutePlanner {
	return RoutePlanner{classifier: classifier}
}

// CalculateRoute plans a route against a snapshot of the hub directory.
//
// An unresolved hub is an expected outcome: the returned plan has Success() == false,
// keeps whichever hub was found, and the error wraps ErrHubNotFound. Invalid requests
// return a zero plan and a validation error.
func (p RoutePlanner) CalculateRoute(directory hub.Directory, req RouteRequest) (route.Plan, error) {
	if err := req.Validate(); err != nil {
		return route.Plan{}, err
	}

	tier := p.classifier.DeliveryTier(req.Pickup.Address(), req.Delivery.Address())

	seller, err := route.NewEndpoint(req.Pickup.Name, req.Pickup.Address(), req.Pickup.Coordinates)
	if err != nil {
		return route.Plan{}, err
	}
	buyer, err := route.NewEndpoint(req.Delivery.Name, req.Delivery.Address(), req.Delivery.Coordinates)
	if err != nil {
		return route.Plan{}, err
	}

	switch tier {
	case zone.Direct:
		return p.planDirect(seller, buyer)
	case zone.SingleHub:
		return p.planSingleHub(directory, req, seller, buyer)
	default:
		return p.planHubToHub(directory, req, seller, buyer)
	}
}

func (p RoutePlanner) planDirect(seller, buyer route.Endpoint) (route.Plan, error) {
	legs, err := route.NewChain(seller).
		To(route.Delivery, buyer).
		Legs()
	if err != nil {
		return route.Plan{}, err
	}
	return route.NewPlan(zone.Direct, nil, nil, legs, directDays)
}

func (p RoutePlanner) planSingleHub(
	directory hub.Directory,
	req RouteRequest,
	seller, buyer route.Endpoint,
) (route.Plan, error) {
	h := directory.FindHubForLocation(req.Pickup.City, req.Pickup.Province)
	if h == nil {
		err := hubNotFound("pickup", req.Pickup)
		return route.FailedPlan(zone.SingleHub, nil, nil, err), err
	}

	at, err := route.HubEndpoint(h)
	if err != nil {
		return route.Plan{}, err
	}

	legs, err := route.NewChain(seller).
		To(route.Pickup, at).
		To(route.Delivery, buyer).
		Legs()
	if err != nil {
		return route.Plan{}, err
	}
	return route.NewPlan(zone.SingleHub, h, h, legs, singleHubDays)
}

func (p RoutePlanner) planHubToHub(
	directory hub.Directory,
	req RouteRequest,
	seller, buyer route.Endpoint,
) (route.Plan, error) {
	origin := directory.FindHubForLocation(req.Pickup.City, req.Pickup.Province)
	destination := directory.FindHubForLocation(req.Delivery.City, req.Delivery.Province)

	var missing []error
	if origin == nil {
		missing = append(missing, hubNotFound("pickup", req.Pickup))
	}
	if destination == nil {
		missing = append(missing, hubNotFound("delivery", req.Delivery))
	}
	if len(missing) > 0 {
		err := errors.Join(missing...)
		return route.FailedPlan(zone.HubToHub, origin, destination, err), err
	}

	originEnd, err := route.HubEndpoint(origin)
	if err != nil {
		return route.Plan{}, err
	}

	chain := route.NewChain(seller).To(route.Pickup, originEnd)
	days := sameHubRelayDays
	if !origin.IsEqual(destination) {
		destinationEnd, hubErr := route.HubEndpoint(destination)
		if hubErr != nil {
			return route.Plan{}, hubErr
		}
		chain = chain.To(route.LineHaul, destinationEnd)
		days = hubToHubRelayDays
	}

	legs, err := chain.To(route.Delivery, buyer).Legs()
	if err != nil {
		return route.Plan{}, err
	}
	return route.NewPlan(zone.HubToHub, origin, destination, legs, days)
}

func hubNotFound(side string, stop Stop) error {
	return fmt.Errorf("%w for %s location %q", ErrHubNotFound, side, stop.Address())
}
