//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"shoplist-backend/application/commands/bus"
	"shoplist-backend/application/ports"
	querybus "shoplist-backend/application/queries/bus"
	"shoplist-backend/infrastructure/config"
	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	ListRepo       ports.ListRepository
	EventPublisher ports.EventPublisher
	Resolver       auth.PrincipalResolver
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	Metrics        *observability.Metrics
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideTracer,
	ProvideListRepository,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvidePrincipalResolver,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
