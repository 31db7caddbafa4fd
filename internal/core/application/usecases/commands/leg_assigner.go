package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

var (
	ErrLegIsNotPending = errors.New("leg is not pending")
	// ErrAllCandidatesClaimed means every ranked courier was taken by a concurrent
	// assignment between the read and the claim. Retrying usually succeeds.
	ErrAllCandidatesClaimed = fmt.Errorf("%w: every candidate was claimed concurrently", services.ErrNoDriverAvailable)
)

// assignLeg ranks the couriers at the leg's dispatch hub and claims the first one that
// is still available. The dispatcher only proposes candidates; the claim is a
// compare-and-set in the courier repository, so two assignments never share a courier.
func assignLeg(
	ctx context.Context,
	uow UoW,
	dispatcher services.CourierDispatcher,
	entity *shipment.Shipment,
	leg *route.Leg,
) (kernel.UUID, error) {
	if leg.Status() != route.Pending {
		return kernel.UUID{}, fmt.Errorf("%w: leg %d is %s", ErrLegIsNotPending, leg.Number(), leg.Status())
	}

	req := services.DispatchRequest{
		HubCode: entity.DispatchHubCode(leg),
		LegType: leg.Type(),
		Size:    entity.PackageSize(),
		Weight:  entity.Weight(),
	}

	courierRepo := uow.CourierRepository()
	available, err := courierRepo.GetAvailableAtHub(ctx, req.HubCode)
	if err != nil {
		return kernel.UUID{}, err
	}

	candidates, err := dispatcher.FindAvailableDrivers(req, courier.NewFleet(available))
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(candidates) == 0 {
		return kernel.UUID{}, dispatcher.NoDriverError(req)
	}

	for _, candidate := range candidates {
		claimed, claimErr := courierRepo.ClaimIfAvailable(ctx, candidate.ID())
		if claimErr != nil {
			return kernel.UUID{}, claimErr
		}
		if !claimed {
			continue
		}

		if err = entity.AssignLeg(leg.Number(), candidate.ID()); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.ShipmentRepository().Update(ctx, entity); err != nil {
			return kernel.UUID{}, err
		}
		return candidate.ID(), nil
	}

	return kernel.UUID{}, ErrAllCandidatesClaimed
}
