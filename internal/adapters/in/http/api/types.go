package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type LegType string

const (
	LegTypePickup   LegType = "pickup"
	LegTypeLineHaul LegType = "line_haul"
	LegTypeDelivery LegType = "delivery"
)

type LegStatus string

const (
	LegStatusPending   LegStatus = "pending"
	LegStatusAssigned  LegStatus = "assigned"
	LegStatusInTransit LegStatus = "in_transit"
	LegStatusCompleted LegStatus = "completed"
	LegStatusFailed    LegStatus = "failed"
)

type DeliveryTier string

const (
	DeliveryTierDirect    DeliveryTier = "direct"
	DeliveryTierSingleHub DeliveryTier = "single_hub"
	DeliveryTierHubToHub  DeliveryTier = "hub_to_hub"
)

type PackageSize string

type DriverType string

type VehicleType string

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Stop struct {
	City        string    `json:"city,omitempty"`
	Province    string    `json:"province,omitempty"`
	Name        string    `json:"name,omitempty"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

type Location struct {
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Province    string    `json:"province,omitempty"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

type RouteRequest struct {
	Pickup   Stop `json:"pickup"`
	Delivery Stop `json:"delivery"`
}

type Endpoint struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	HubCode     string    `json:"hubCode,omitempty"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

type Leg struct {
	Number    int                 `json:"number"`
	Type      LegType             `json:"type"`
	From      Endpoint            `json:"from"`
	To        Endpoint            `json:"to"`
	Status    LegStatus           `json:"status"`
	CourierId *openapi_types.UUID `json:"courierId,omitempty"` //nolint:revive,stylecheck // generated naming
}

type RoutePlan struct {
	Success        bool         `json:"success"`
	Error          string       `json:"error,omitempty"`
	Tier           DeliveryTier `json:"tier"`
	OriginHub      string       `json:"originHub,omitempty"`
	DestinationHub string       `json:"destinationHub,omitempty"`
	IsDirect       bool         `json:"isDirect"`
	IsSameHub      bool         `json:"isSameHub"`
	EstimatedDays  int          `json:"estimatedDays,omitempty"`
	Legs           []Leg        `json:"legs"`
}

type QuoteRequest struct {
	SellerLocation string  `json:"sellerLocation,omitempty"`
	BuyerLocation  string  `json:"buyerLocation,omitempty"`
	Subtotal       float64 `json:"subtotal"`
}

type Quote struct {
	Fee           float64      `json:"fee"`
	MinimumOrder  float64      `json:"minimumOrder"`
	MeetsMinimum  bool         `json:"meetsMinimum"`
	EstimatedDays string       `json:"estimatedDays"`
	Zone          string       `json:"zone"`
	ZoneName      string       `json:"zoneName"`
	Tier          DeliveryTier `json:"tier"`
}

type EstimateRequest struct {
	Tier  DeliveryTier `json:"tier"`
	Start *time.Time   `json:"start,omitempty"`
}

type Estimate struct {
	Tier              DeliveryTier `json:"tier"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
}

type Hub struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Address          Location `json:"address"`
	CoverageKeywords []string `json:"coverageKeywords"`
}

type NewHub struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Address          Location `json:"address"`
	CoverageKeywords []string `json:"coverageKeywords,omitempty"`
}

type NewCourier struct {
	Name        string      `json:"name"`
	HomeHubCode string      `json:"homeHubCode"`
	DriverType  DriverType  `json:"driverType"`
	VehicleType VehicleType `json:"vehicleType"`
	MaxWeight   float64     `json:"maxWeight"`
	Rating      *float64    `json:"rating,omitempty"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"` //nolint:revive,stylecheck // generated naming
}

type CourierCandidate struct {
	Id             openapi_types.UUID `json:"id"` //nolint:revive,stylecheck // generated naming
	Name           string             `json:"name"`
	DriverType     DriverType         `json:"driverType"`
	VehicleType    VehicleType        `json:"vehicleType"`
	MaxWeight      float64            `json:"maxWeight"`
	Rating         float64            `json:"rating"`
	CompletedCount int                `json:"completedCount"`
}

type NewShipment struct {
	Pickup   Stop     `json:"pickup"`
	Delivery Stop     `json:"delivery"`
	Weight   float64  `json:"weight"`
	Subtotal *float64 `json:"subtotal,omitempty"`
}

type Shipment struct {
	Id                openapi_types.UUID `json:"id"` //nolint:revive,stylecheck // generated naming
	Status            string             `json:"status"`
	Zone              string             `json:"zone"`
	Tier              DeliveryTier       `json:"tier"`
	Weight            float64            `json:"weight"`
	Fee               float64            `json:"fee"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	OriginHub         string             `json:"originHub,omitempty"`
	DestinationHub    string             `json:"destinationHub,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	Legs              []Leg              `json:"legs"`
}

type LegAssignment struct {
	CourierId openapi_types.UUID `json:"courierId"` //nolint:revive,stylecheck // generated naming
}

type LegStatusUpdate struct {
	Status LegStatus `json:"status"`
}

// GetHubCouriersParams defines parameters for GetHubCouriers.
type GetHubCouriersParams struct {
	LegType LegType      `form:"legType" json:"legType"`
	Weight  float64      `form:"weight" json:"weight"`
	Size    *PackageSize `form:"size,omitempty" json:"size,omitempty"`
}
