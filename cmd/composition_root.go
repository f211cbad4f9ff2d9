package cmd

import (
	"orders/internal/adapters/out/events"
	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/auth"

	"go.uber.org/zap"
)

// CompositionRoot wires every adapter and use case handler of the service.
// Shared dependencies are created once and handed out through the Create*
// factory methods.
type CompositionRoot struct {
	config Config
	log    *zap.SugaredLogger

	orderRepository *orderrepo.Repository
	eventPublisher  *events.LogPublisher
}

func NewCompositionRoot(config Config, log *zap.SugaredLogger) CompositionRoot {
	return CompositionRoot{
		config:          config,
		log:             log,
		orderRepository: orderrepo.NewRepository(),
		eventPublisher:  events.NewLogPublisher(ServiceName, log),
	}
}

func (c *CompositionRoot) CreateTokenAuthenticator() *auth.TokenAuthenticator {
	return auth.NewTokenAuthenticator(c.config.JWTSecret, c.log)
}

func (c *CompositionRoot) CreateScopeAuthorizer() *auth.ScopeAuthorizer {
	return auth.NewScopeAuthorizer(c.log)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository, c.eventPublisher, c.log)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderRepository, c.eventPublisher, c.log)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository, c.log)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository, c.log)
}
