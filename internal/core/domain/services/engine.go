package services

import (
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/fee"
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/zone"
)

// Tables is the static reference data the engine is built from. It is loaded once at
// startup; tests pass alternate tables.
type Tables struct {
	Regions      zone.RegionTable
	Fees         fee.Table
	Routing      hub.RoutingTable
	Capabilities courier.CapabilityTable
	Transit      TransitTable
	// Now is the clock used for ETAs and timestamps. Nil means time.Now.
	Now func() time.Time
}

func DefaultTables() Tables {
	return Tables{
		Regions:      zone.DefaultRegionTable(),
		Fees:         fee.DefaultTable(),
		Routing:      hub.DefaultRoutingTable(),
		Capabilities: courier.DefaultCapabilityTable(),
		Transit:      DefaultTransitTable(),
		Now:          time.Now,
	}
}

// Engine bundles the routing services built from one set of tables.
type Engine struct {
	Classifier zone.Classifier
	Planner    RoutePlanner
	Dispatcher CourierDispatcher
	ETA        ETAEstimator

	fees    fee.Table
	routing hub.RoutingTable
	now     func() time.Time
}

func NewEngine(tables Tables) Engine {
	now := tables.Now
	if now == nil {
		now = time.Now
	}
	classifier := zone.NewClassifier(tables.Regions)

	return Engine{
		Classifier: classifier,
		Planner:    NewRoutePlanner(classifier),
		Dispatcher: NewCourierDispatcher(tables.Capabilities),
		ETA:        NewETAEstimator(tables.Transit, now),
		fees:       tables.Fees,
		routing:    tables.Routing,
		now:        now,
	}
}

// Directory indexes a freshly loaded set of hubs with the engine's routing table.
func (e Engine) Directory(hubs []*hub.Hub) hub.Directory {
	return hub.NewDirectory(hubs, e.routing)
}

// QuoteFee classifies the pair and prices it.
func (e Engine) QuoteFee(sellerLocation, buyerLocation string, subtotal float64) fee.Quote {
	return e.fees.Quote(e.Classifier.Classify(sellerLocation, buyerLocation), subtotal)
}

func (e Engine) Fees() fee.Table {
	return e.fees
}

func (e Engine) Now() time.Time {
	return e.now()
}
