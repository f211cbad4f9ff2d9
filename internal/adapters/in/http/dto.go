package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// CreateOrderRequest is the body of POST /orders/.
type CreateOrderRequest struct {
	CustomerID string   `json:"customerId"`
	Items      []string `json:"items"`
}

// UpdateOrderRequest is the body of PATCH /orders/{id}.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID         string   `json:"id"`
	Status     string   `json:"status"`
	CustomerID string   `json:"customerId"`
	Items      []string `json:"items"`
}

// OrderListResponse is a paginated page of orders.
type OrderListResponse struct {
	Items  []OrderResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ServiceInfoResponse identifies the service at GET /.
type ServiceInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:         aggregate.ID(),
		Status:     aggregate.Status().String(),
		CustomerID: aggregate.CustomerID(),
		Items:      aggregate.Items(),
	}
}

func toOrderListResponse(response queries.ListOrdersQueryResponse) OrderListResponse {
	items := make([]OrderResponse, len(response.Orders))
	for i, aggregate := range response.Orders {
		items[i] = toOrderResponse(aggregate)
	}
	return OrderListResponse{
		Items:  items,
		Total:  response.Total,
		Limit:  response.Limit,
		Offset: response.Offset,
	}
}
