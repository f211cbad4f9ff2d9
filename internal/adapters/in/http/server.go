// Package http exposes the order management API over HTTP.
//
// Every request runs through the same pipeline: the scope guard
// authenticates the bearer credential and authorizes the operation, the
// handler orchestrates commands and queries, and any failure
// short-circuits to the centralized problem handler.
package http

import (
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/auth"
	"orders/internal/pkg/errs"
)

// Pagination defaults applied when the query parameters are absent.
const (
	defaultLimit  = 10
	defaultOffset = 0
)

// Server implements the HTTP handlers for the orders API.
// It coordinates between HTTP requests and the application use cases.
type Server struct {
	serviceName    string
	serviceVersion string
	apiDoc         *openapi3.T

	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	log *zap.SugaredLogger
}

// NewServer creates the HTTP server with the required command and query
// handlers. apiDoc may be nil, in which case /openapi.json is not served.
func NewServer(
	serviceName string,
	serviceVersion string,
	apiDoc *openapi3.T,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	log *zap.SugaredLogger,
) *Server {
	return &Server{
		serviceName:              serviceName,
		serviceVersion:           serviceVersion,
		apiDoc:                   apiDoc,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		log:                      log,
	}
}

// RegisterRoutes mounts every route on the echo instance, wrapping the
// order endpoints in the scope guards they require.
func (s *Server) RegisterRoutes(
	e *echo.Echo,
	authenticator *auth.TokenAuthenticator,
	authorizer *auth.ScopeAuthorizer,
) {
	e.GET("/", s.GetServiceInfo)
	e.GET("/healthz", s.Liveness)
	e.GET("/readyz", s.Readiness)
	if s.apiDoc != nil {
		e.GET("/openapi.json", s.OpenAPIDocument)
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	read := RequireScopes(authenticator, authorizer, auth.ScopeOrdersRead)
	write := RequireScopes(authenticator, authorizer, auth.ScopeOrdersWrite)

	orders := e.Group("/orders")
	orders.POST("/", s.CreateOrder, write)
	orders.GET("/", s.ListOrders, read)
	orders.GET("/:id", s.GetOrder, read)
	orders.PATCH("/:id", s.UpdateOrder, write)
}

// GetServiceInfo handles GET / and reports the service name and version.
func (s *Server) GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfoResponse{
		Name:    s.serviceName,
		Version: s.serviceVersion,
	})
}

// Liveness handles GET /healthz.
func (s *Server) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz. The in-memory store has no dependencies
// to probe, so readiness equals liveness here.
func (s *Server) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// OpenAPIDocument handles GET /openapi.json.
func (s *Server) OpenAPIDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, s.apiDoc)
}

// CreateOrder handles POST /orders/.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to create"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ProblemDetails
//	@Failure	401		{object}	ProblemDetails
//	@Failure	403		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/orders/ [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidationErrorWithCause("request body is malformed", err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.Items)
	if err != nil {
		return err
	}

	s.log.Infow("creating order",
		"customer_id", cmd.CustomerID(),
		"items_count", len(cmd.Items()),
		"user", identityFromContext(c).Subject,
	)

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /orders/{id}.
//
//	@Summary	Get an order by id
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("id"))
	if err != nil {
		return err
	}

	aggregate, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// UpdateOrder handles PATCH /orders/{id}.
//
//	@Summary	Update an order's status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order id"
//	@Param		update	body		UpdateOrderRequest	true	"Requested status"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ProblemDetails
//	@Failure	409		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/orders/{id} [patch]
func (s *Server) UpdateOrder(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidationErrorWithCause("request body is malformed", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(c.Param("id"), order.Status(req.Status))
	if err != nil {
		return err
	}

	s.log.Infow("updating order",
		"order_id", cmd.OrderID(),
		"new_status", cmd.Status(),
		"user", identityFromContext(c).Subject,
	)

	updated, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// ListOrders handles GET /orders/ with limit/offset pagination.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (1-100)"	default(10)
//	@Param		offset	query		int	false	"Orders to skip"	default(0)
//	@Success	200		{object}	OrderListResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/orders/ [get]
func (s *Server) ListOrders(c echo.Context) error {
	limit, err := intQueryParam(c, "limit", defaultLimit)
	if err != nil {
		return err
	}
	offset, err := intQueryParam(c, "offset", defaultOffset)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(limit, offset)
	if err != nil {
		return err
	}

	response, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderListResponse(response))
}

// intQueryParam parses an integer query parameter, falling back to def
// when absent. Non-numeric values are validation errors, not defaults.
func intQueryParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationErrorWithCause(name+" must be an integer", err)
	}
	return value, nil
}
