package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	estimator  services.DistanceEstimator
	pricing    services.PricingEngine
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	estimator, err := services.NewDistanceEstimator(config.RoadFactor)
	if err != nil {
		return CompositionRoot{}, err
	}

	pricing, err := services.NewPricingEngine(config.MinimumPrice, config.DriverShare)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  estimator,
		pricing:    pricing,
	}, nil
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.estimator, c.pricing)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateReceiverCommandHandler() commands.UpdateReceiverCommandHandler {
	return commands.NewUpdateReceiverCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateReleaseStaleDeliveriesCommandHandler() commands.ReleaseStaleDeliveriesCommandHandler {
	return commands.NewReleaseStaleDeliveriesCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetSenderDeliveriesQueryHandler() queries.GetSenderDeliveriesQueryHandler {
	return queries.NewGetSenderDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateUpdateReceiverCommandHandler(),
		c.CreateGetAvailableDeliveriesQueryHandler(),
		c.CreateGetDriverDeliveriesQueryHandler(),
		c.CreateGetSenderDeliveriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReleaseStaleDeliveriesCommandHandler(),
		c.config.StaleAfter,
		logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
