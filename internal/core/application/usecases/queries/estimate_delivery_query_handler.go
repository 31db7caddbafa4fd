package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type EstimateDeliveryQueryHandler struct {
	engine services.Engine
}

func NewEstimateDeliveryQueryHandler(engine services.Engine) EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{engine: engine}
}

func (h EstimateDeliveryQueryHandler) Handle(
	_ context.Context,
	query EstimateDeliveryQuery,
) (EstimateDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	eta, err := h.engine.ETA.Estimate(query.Tier(), query.Start())
	if err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	return EstimateDeliveryQueryResponse{Tier: query.Tier(), EstimatedDelivery: eta}, nil
}
