package queries

import (
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrPreviewRouteQueryIsNotConstructed = errors.New(
		"PreviewRouteQuery must be created via NewPreviewRouteQuery constructor",
	)
)

// PreviewRouteQuery plans a route without creating a shipment.
//
// Example:
//
//	query, err := NewPreviewRouteQuery(
//	    services.Stop{City: "Angeles", Province: "Pampanga"},
//	    services.Stop{City: "Cebu City", Province: "Cebu"},
//	)
//	plan, err := handler.Handle(ctx, query)
//	if !plan.Success() {
//	    fmt.Println(plan.ErrorMessage())
//	}
type PreviewRouteQuery struct {
	request services.RouteRequest

	guard guard.ConstructorGuard
}

func NewPreviewRouteQuery(pickup, delivery services.Stop) (PreviewRouteQuery, error) {
	request := services.RouteRequest{Pickup: pickup, Delivery: delivery}
	if err := request.Validate(); err != nil {
		return PreviewRouteQuery{}, err
	}

	return PreviewRouteQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q PreviewRouteQuery) Request() services.RouteRequest {
	return q.request
}

func (q PreviewRouteQuery) Validate() error {
	return q.guard.Validate(ErrPreviewRouteQueryIsNotConstructed)
}
