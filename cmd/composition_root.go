package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "laborders/internal/adapters/in/http"
	"laborders/internal/adapters/out/credentials"
	"laborders/internal/adapters/out/postgres"
	"laborders/internal/adapters/out/postgres/orderrepo"
	"laborders/internal/adapters/out/postgres/userrepo"
	"laborders/internal/core/application/usecases/orders"
	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/application/usecases/users"
	"laborders/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	logger   *slog.Logger
	registry *prometheus.Registry

	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     *credentials.BcryptHasher
	tokens     *credentials.JWTIssuer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	hasher, err := credentials.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return nil, err
	}

	tokens, err := credentials.NewJWTIssuer(config.JWTSecret, config.JWTExpiresIn)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     hasher,
		tokens:     tokens,
	}, nil
}

func (c *CompositionRoot) CreateOrderRunners() (orders.Runners, error) {
	return orders.NewRunners(
		c.uowFactory,
		userrepo.NewGormUserRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUserRunners() (users.Runners, error) {
	return users.NewRunners(
		c.uowFactory,
		userrepo.NewGormUserRepository(c.gormDB),
		c.hasher,
		c.tokens,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCountOrdersByStateQueryHandler() queries.CountOrdersByStateQueryHandler {
	return queries.NewCountOrdersByStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStateQueryHandler(), c.config.StatsSchedule, c.registry, c.logger)
}

// CreateRouter wires every use case into the echo router.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	orderRunners, err := c.CreateOrderRunners()
	if err != nil {
		return nil, fmt.Errorf("order use cases: %w", err)
	}

	userRunners, err := c.CreateUserRunners()
	if err != nil {
		return nil, fmt.Errorf("user use cases: %w", err)
	}

	server := httpadapter.NewServer(
		httpadapter.OrderUseCases{
			Create:     orderRunners.Create,
			Get:        orderRunners.Get,
			List:       orderRunners.List,
			PatchState: orderRunners.PatchState,
		},
		httpadapter.UserUseCases{
			Register: userRunners.Register,
			Login:    userRunners.Login,
		},
	)
	return httpadapter.NewRouter(server, c.tokens, c.registry, c.logger), nil
}
