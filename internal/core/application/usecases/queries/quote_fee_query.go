package queries

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrQuoteFeeQueryIsNotConstructed = errors.New(
		"QuoteFeeQuery must be created via NewQuoteFeeQuery constructor",
	)
)

// QuoteFeeQuery prices a seller/buyer pair for a given order subtotal.
//
// Example:
//
//	query, err := NewQuoteFeeQuery("Quezon City, Metro Manila", "Cebu City, Cebu", 1500)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
type QuoteFeeQuery struct {
	sellerLocation string
	buyerLocation  string
	subtotal       float64

	guard guard.ConstructorGuard
}

// NewQuoteFeeQuery validates its input. Locations may be blank; a blank pair is
// classified as unknown and priced at the highest rate.
func NewQuoteFeeQuery(sellerLocation, buyerLocation string, subtotal float64) (QuoteFeeQuery, error) {
	if subtotal < 0 {
		return QuoteFeeQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"subtotal", fmt.Errorf("%v is negative", subtotal),
		)
	}

	return QuoteFeeQuery{
		sellerLocation: strings.TrimSpace(sellerLocation),
		buyerLocation:  strings.TrimSpace(buyerLocation),
		subtotal:       subtotal,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteFeeQuery) SellerLocation() string {
	return q.sellerLocation
}

func (q QuoteFeeQuery) BuyerLocation() string {
	return q.buyerLocation
}

func (q QuoteFeeQuery) Subtotal() float64 {
	return q.subtotal
}

func (q QuoteFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteFeeQueryIsNotConstructed)
}

// QuoteFeeQueryResponse is the priced quote for a location pair.
type QuoteFeeQueryResponse struct {
	Fee           float64
	MinimumOrder  float64
	MeetsMinimum  bool
	EstimatedDays string
	Zone          zone.ShippingZone
	ZoneName      string
	Tier          zone.DeliveryTier
}
