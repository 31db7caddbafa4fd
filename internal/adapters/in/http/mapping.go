package http

import (
	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func geoPointFromAPI(p *api.GeoPoint) (*kernel.GeoPoint, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // coordinates are optional
	}
	point, err := kernel.NewGeoPoint(p.Lat, p.Lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func geoPointToAPI(p *kernel.GeoPoint) *api.GeoPoint {
	if p == nil {
		return nil
	}
	return &api.GeoPoint{Lat: p.Lat(), Lng: p.Lng()}
}

func stopFromAPI(s api.Stop) (services.Stop, error) {
	point, err := geoPointFromAPI(s.Coordinates)
	if err != nil {
		return services.Stop{}, err
	}
	return services.Stop{
		City:        s.City,
		Province:    s.Province,
		Name:        s.Name,
		Coordinates: point,
	}, nil
}

func locationFromAPI(l api.Location) (kernel.Location, error) {
	point, err := geoPointFromAPI(l.Coordinates)
	if err != nil {
		return kernel.Location{}, err
	}
	return kernel.NewLocation(l.Address, l.City, l.Province, point)
}

func locationToAPI(l kernel.Location) api.Location {
	return api.Location{
		Address:     l.Address(),
		City:        l.City(),
		Province:    l.Province(),
		Coordinates: geoPointToAPI(l.Point()),
	}
}

func endpointToAPI(e route.Endpoint) api.Endpoint {
	return api.Endpoint{
		Name:        e.Name(),
		Address:     e.Address(),
		HubCode:     e.HubCode(),
		Coordinates: geoPointToAPI(e.Coordinates()),
	}
}

func courierIDToAPI(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func planToAPI(plan route.Plan) api.RoutePlan {
	response := api.RoutePlan{
		Success:   plan.Success(),
		Error:     plan.ErrorMessage(),
		Tier:      api.DeliveryTier(plan.Tier().String()),
		IsDirect:  plan.IsDirect(),
		IsSameHub: plan.IsSameHub(),
		Legs:      make([]api.Leg, 0, len(plan.Legs())),
	}
	if h := plan.OriginHub(); h != nil {
		response.OriginHub = h.Code()
	}
	if h := plan.DestinationHub(); h != nil {
		response.DestinationHub = h.Code()
	}
	if !plan.Success() {
		return response
	}

	response.EstimatedDays = plan.EstimatedDays()
	for _, l := range plan.Legs() {
		response.Legs = append(response.Legs, api.Leg{
			Number:    l.Number(),
			Type:      api.LegType(l.Type().String()),
			From:      endpointToAPI(l.From()),
			To:        endpointToAPI(l.To()),
			Status:    api.LegStatus(l.Status().String()),
			CourierId: courierIDToAPI(l.CourierID()),
		})
	}
	return response
}

func shipmentToAPI(s queries.GetShipmentRouteQueryResponse) api.Shipment {
	response := api.Shipment{
		Id:                s.ID.Bytes(),
		Status:            s.Status,
		Zone:              s.Zone.String(),
		Tier:              api.DeliveryTier(s.Tier.String()),
		Weight:            s.Weight,
		Fee:               s.Fee,
		EstimatedDelivery: s.EstimatedDelivery,
		OriginHub:         s.OriginHubCode,
		DestinationHub:    s.DestinationHubCode,
		CreatedAt:         s.CreatedAt,
		Legs:              make([]api.Leg, 0, len(s.Legs)),
	}
	for _, l := range s.Legs {
		response.Legs = append(response.Legs, api.Leg{
			Number:    l.Number,
			Type:      api.LegType(l.Type.String()),
			From:      endpointToAPI(l.From),
			To:        endpointToAPI(l.To),
			Status:    api.LegStatus(l.Status.String()),
			CourierId: courierIDToAPI(l.CourierID),
		})
	}
	return response
}
