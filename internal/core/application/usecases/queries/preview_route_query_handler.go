package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

// PreviewRouteQueryHandler plans against the active hubs in the database.
type PreviewRouteQueryHandler struct {
	db     *gorm.DB
	engine services.Engine
}

func NewPreviewRouteQueryHandler(db *gorm.DB, engine services.Engine) PreviewRouteQueryHandler {
	return PreviewRouteQueryHandler{db: db, engine: engine}
}

// Handle returns the planned route. An unresolved hub is not an error here: the plan
// comes back with Success() == false and its error message set.
func (h PreviewRouteQueryHandler) Handle(ctx context.Context, query PreviewRouteQuery) (route.Plan, error) {
	if err := query.Validate(); err != nil {
		return route.Plan{}, err
	}

	hubs, err := readActiveHubs(ctx, h.db)
	if err != nil {
		return route.Plan{}, err
	}

	plan, err := h.engine.Planner.CalculateRoute(h.engine.Directory(hubs), query.Request())
	if err != nil && !errors.Is(err, services.ErrHubNotFound) {
		return route.Plan{}, err
	}

	return plan, nil
}
