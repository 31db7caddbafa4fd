package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

// QuoteFeeQueryHandler answers fee quotes from the in-memory tables. It never touches
// the database.
type QuoteFeeQueryHandler struct {
	engine services.Engine
}

func NewQuoteFeeQueryHandler(engine services.Engine) QuoteFeeQueryHandler {
	return QuoteFeeQueryHandler{engine: engine}
}

func (h QuoteFeeQueryHandler) Handle(_ context.Context, query QuoteFeeQuery) (QuoteFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteFeeQueryResponse{}, err
	}

	quote := h.engine.QuoteFee(query.SellerLocation(), query.BuyerLocation(), query.Subtotal())

	return QuoteFeeQueryResponse{
		Fee:           quote.Fee,
		MinimumOrder:  quote.MinimumOrder,
		MeetsMinimum:  quote.MeetsMinimum,
		EstimatedDays: quote.EstimatedDays,
		Zone:          quote.Zone,
		ZoneName:      quote.ZoneName,
		Tier:          h.engine.Classifier.DeliveryTier(query.SellerLocation(), query.BuyerLocation()),
	}, nil
}
