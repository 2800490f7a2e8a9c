package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/commands/bus"
	commandhandlers "shoplist-backend/application/commands/handlers"
	"shoplist-backend/application/ports"
	"shoplist-backend/application/queries"
	querybus "shoplist-backend/application/queries/bus"
	queryhandlers "shoplist-backend/application/queries/handlers"
	"shoplist-backend/infrastructure/config"
	"shoplist-backend/infrastructure/messaging/eventbridge"
	"shoplist-backend/infrastructure/persistence/dynamodb"
	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideTracer creates the tracer. A nil tracer disables subsegment
// capture when the feature flag is off.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("shoplist-backend")
}

// ProvideListRepository creates the DynamoDB-backed list repository
func ProvideListRepository(client *awsdynamodb.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.ListRepository {
	return dynamodb.NewListRepository(client, cfg.DynamoDBTable, tracer, logger)
}

// ProvideEventPublisher creates the EventBridge-backed event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewEventBridgePublisher(client, cfg.EventBusName, tracer, logger)
}

// ProvideMetrics creates the metrics instance. Publishing is disabled when
// the feature flag is off.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	namespace := fmt.Sprintf("Shoplist/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil)
	}
	return observability.NewMetrics(namespace, client)
}

// ProvidePrincipalResolver selects the identity source: JWT validation when a
// secret is configured, otherwise the development directory with its
// configurable fallback principal.
func ProvidePrincipalResolver(cfg *config.Config) auth.PrincipalResolver {
	if cfg.JWTSecret != "" {
		return auth.NewJWTResolver(auth.JWTConfig{
			SecretKey: cfg.JWTSecret,
			Issuer:    cfg.JWTIssuer,
		})
	}
	return auth.NewDirectoryResolver(auth.DefaultDirectory(), cfg.FallbackPrincipalID)
}

// ProvideCommandBus creates a command bus with all mutation handlers
// registered
func ProvideCommandBus(
	repo ports.ListRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	createHandler := commandhandlers.NewCreateListHandler(repo, publisher, logger)
	commandBus.Register(commands.CreateListCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.CreateListCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return createHandler.Handle(ctx, c)
	}))

	renameHandler := commandhandlers.NewRenameListHandler(repo, publisher, logger)
	commandBus.Register(commands.RenameListCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.RenameListCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return renameHandler.Handle(ctx, c)
	}))

	archiveHandler := commandhandlers.NewSetArchivedHandler(repo, publisher, logger)
	commandBus.Register(commands.SetArchivedCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.SetArchivedCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return archiveHandler.Handle(ctx, c)
	}))

	deleteHandler := commandhandlers.NewDeleteListHandler(repo, publisher, logger)
	commandBus.Register(commands.DeleteListCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.DeleteListCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return deleteHandler.Handle(ctx, c)
	}))

	addMemberHandler := commandhandlers.NewAddMemberHandler(repo, publisher, logger)
	commandBus.Register(commands.AddMemberCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.AddMemberCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return addMemberHandler.Handle(ctx, c)
	}))

	removeMemberHandler := commandhandlers.NewRemoveMemberHandler(repo, publisher, logger)
	commandBus.Register(commands.RemoveMemberCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.RemoveMemberCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return removeMemberHandler.Handle(ctx, c)
	}))

	leaveHandler := commandhandlers.NewLeaveListHandler(repo, publisher, logger)
	commandBus.Register(commands.LeaveListCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.LeaveListCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return leaveHandler.Handle(ctx, c)
	}))

	addItemHandler := commandhandlers.NewAddItemHandler(repo, publisher, logger)
	commandBus.Register(commands.AddItemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.AddItemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return addItemHandler.Handle(ctx, c)
	}))

	removeItemHandler := commandhandlers.NewRemoveItemHandler(repo, publisher, logger)
	commandBus.Register(commands.RemoveItemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.RemoveItemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return removeItemHandler.Handle(ctx, c)
	}))

	resolveItemHandler := commandhandlers.NewResolveItemHandler(repo, publisher, logger)
	commandBus.Register(commands.ResolveItemCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.ResolveItemCommand)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return resolveItemHandler.Handle(ctx, c)
	}))

	return commandBus
}

// ProvideQueryBus creates a query bus with all read handlers registered
func ProvideQueryBus(
	repo ports.ListRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getListHandler := queryhandlers.NewGetListHandler(repo, logger)
	queryBus.Register(queries.GetListQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		q, ok := query.(queries.GetListQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return getListHandler.Handle(ctx, q)
	}))

	listListsHandler := queryhandlers.NewListListsHandler(repo, logger)
	queryBus.Register(queries.ListListsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		q, ok := query.(queries.ListListsQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return listListsHandler.Handle(ctx, q)
	}))

	listItemsHandler := queryhandlers.NewListItemsHandler(repo, logger)
	queryBus.Register(queries.ListItemsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		q, ok := query.(queries.ListItemsQuery)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return listItemsHandler.Handle(ctx, q)
	}))

	return queryBus
}
