package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	engine     services.Engine
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	tables := services.DefaultTables()
	if config.DefaultHubCode != "" {
		tables.Routing = hub.NewRoutingTable(tables.Routing.Entries(), config.DefaultHubCode)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		engine:     services.NewEngine(tables),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) Engine() services.Engine {
	return c.engine
}

func (c *CompositionRoot) CreateCreateHubCommandHandler() commands.CreateHubCommandHandler {
	var f commands.HubUoWFactory = FuncHubUoWFactory(func() commands.HubUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateHubCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanShipmentCommandHandler() commands.PlanShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanShipmentCommandHandler(f, c.engine)
}

func (c *CompositionRoot) CreateAssignLegCourierCommandHandler() commands.AssignLegCourierCommandHandler {
	return commands.NewAssignLegCourierCommandHandler(c.uowFactoryForAssignments(), c.engine.Dispatcher)
}

func (c *CompositionRoot) CreateAssignPendingLegCommandHandler() commands.AssignPendingLegCommandHandler {
	return commands.NewAssignPendingLegCommandHandler(c.uowFactoryForAssignments(), c.engine.Dispatcher)
}

func (c *CompositionRoot) CreateUpdateLegStatusCommandHandler() commands.UpdateLegStatusCommandHandler {
	return commands.NewUpdateLegStatusCommandHandler(c.uowFactoryForAssignments())
}

func (c *CompositionRoot) uowFactoryForAssignments() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePreviewRouteQueryHandler() queries.PreviewRouteQueryHandler {
	return queries.NewPreviewRouteQueryHandler(c.gormDB, c.engine)
}

func (c *CompositionRoot) CreateQuoteFeeQueryHandler() queries.QuoteFeeQueryHandler {
	return queries.NewQuoteFeeQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() queries.EstimateDeliveryQueryHandler {
	return queries.NewEstimateDeliveryQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetActiveHubsQueryHandler() queries.GetActiveHubsQueryHandler {
	return queries.NewGetActiveHubsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.gormDB, c.engine)
}

func (c *CompositionRoot) CreateGetShipmentRouteQueryHandler() queries.GetShipmentRouteQueryHandler {
	return queries.NewGetShipmentRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateHub:        c.CreateCreateHubCommandHandler(),
			CreateCourier:    c.CreateCreateCourierCommandHandler(),
			PlanShipment:     c.CreatePlanShipmentCommandHandler(),
			AssignLegCourier: c.CreateAssignLegCourierCommandHandler(),
			UpdateLegStatus:  c.CreateUpdateLegStatusCommandHandler(),
		},
		httpin.Queries{
			PreviewRoute:         c.CreatePreviewRouteQueryHandler(),
			QuoteFee:             c.CreateQuoteFeeQueryHandler(),
			EstimateDelivery:     c.CreateEstimateDeliveryQueryHandler(),
			GetActiveHubs:        c.CreateGetActiveHubsQueryHandler(),
			GetAvailableCouriers: c.CreateGetAvailableCouriersQueryHandler(),
			GetShipmentRoute:     c.CreateGetShipmentRouteQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignPendingLegCommandHandler(), c.config.AssignmentSchedule, c.logger)
}

type FuncHubUoWFactory func() commands.HubUoW

func (f FuncHubUoWFactory) Create() commands.HubUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
