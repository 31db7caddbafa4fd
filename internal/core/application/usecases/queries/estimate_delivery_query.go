package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/guard"
)

var (
	ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
		"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
	)
)

// EstimateDeliveryQuery asks when a shipment of the given tier would arrive. A nil
// start means now.
type EstimateDeliveryQuery struct {
	tier  zone.DeliveryTier
	start *time.Time

	guard guard.ConstructorGuard
}

func NewEstimateDeliveryQuery(tier zone.DeliveryTier, start *time.Time) (EstimateDeliveryQuery, error) {
	if err := tier.Validate(); err != nil {
		return EstimateDeliveryQuery{}, err
	}

	return EstimateDeliveryQuery{
		tier:  tier,
		start: start,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q EstimateDeliveryQuery) Tier() zone.DeliveryTier {
	return q.tier
}

func (q EstimateDeliveryQuery) Start() *time.Time {
	return q.start
}

func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

type EstimateDeliveryQueryResponse struct {
	Tier              zone.DeliveryTier
	EstimatedDelivery time.Time
}
