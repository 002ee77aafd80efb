package di

import (
	"github.com/google/wire"

	"seograph-backend/interfaces/http/rest/handlers"
	"seograph-backend/internal/repository"
	"seograph-backend/internal/repository/sqlite"
	"seograph-backend/internal/service/cluster"
	"seograph-backend/internal/service/explorer"
)

// ConfigProviders provides configuration-related dependencies.
var ConfigProviders = wire.NewSet(
	provideLogger,
	provideMetrics,
)

// StorageProviders provides the analytical store.
var StorageProviders = wire.NewSet(
	wire.Bind(new(repository.ClusterRepository), new(*sqlite.Store)),
)

// ServiceProviders provides the data service and expansion controller.
var ServiceProviders = wire.NewSet(
	cluster.NewService,
	cluster.NewZapNotifier,
	explorer.NewController,
	wire.Bind(new(handlers.ClusterService), new(*cluster.Service)),
	wire.Bind(new(handlers.Explorer), new(*explorer.Controller)),
	wire.Bind(new(explorer.Expander), new(*cluster.Service)),
)

// SuperSet combines all provider sets for the complete application. The
// sets mirror the manual container wiring so components can also be
// assembled piecemeal in tests and tools.
var SuperSet = wire.NewSet(
	ConfigProviders,
	StorageProviders,
	ServiceProviders,
)
