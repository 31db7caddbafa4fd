package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
		"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
	)
)

// GetAvailableCouriersQuery lists the couriers at a hub that could take a leg, best
// first. It is a preview: nobody is reserved.
type GetAvailableCouriersQuery struct {
	request services.DispatchRequest

	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery derives the package size from the weight when size is
// PackageSizeUnknown.
func NewGetAvailableCouriersQuery(
	hubCode string,
	legType route.LegType,
	size courier.PackageSize,
	weight float64,
) (GetAvailableCouriersQuery, error) {
	if size == courier.PackageSizeUnknown {
		size = courier.PackageSizeForWeight(weight)
	}

	request := services.DispatchRequest{
		HubCode: strings.ToUpper(strings.TrimSpace(hubCode)),
		LegType: legType,
		Size:    size,
		Weight:  weight,
	}
	if err := request.Validate(); err != nil {
		return GetAvailableCouriersQuery{}, err
	}

	return GetAvailableCouriersQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableCouriersQuery) Request() services.DispatchRequest {
	return q.request
}

func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

// GetAvailableCouriersQueryResponse is one ranked candidate.
type GetAvailableCouriersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	DriverType     courier.DriverType
	VehicleType    courier.VehicleType
	MaxWeight      float64
	Rating         float64
	CompletedCount int
}
