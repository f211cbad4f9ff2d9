// Package events emits order domain events as CloudEvents 1.0 envelopes.
//
// The log publisher writes each event to the structured log instead of a
// broker. Delivery is synchronous fire-and-forget and not transactional
// with the store mutation; a durable transport can replace the publisher
// without changing the envelope.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orders/internal/core/domain/model/order"
)

// Event kinds emitted by the orders service.
const (
	TypeOrderCreated = "order.created"
	TypeOrderUpdated = "order.updated"
)

const (
	specVersion     = "1.0"
	dataContentType = "application/json"
)

// Envelope is a CloudEvents 1.0 structured event.
type Envelope struct {
	SpecVersion     string         `json:"specversion"`
	Type            string         `json:"type"`
	Source          string         `json:"source"`
	ID              string         `json:"id"`
	Time            string         `json:"time"`
	DataContentType string         `json:"datacontenttype"`
	Subject         string         `json:"subject,omitempty"`
	Data            map[string]any `json:"data"`
}

// LogPublisher publishes CloudEvents to the structured log.
type LogPublisher struct {
	source string
	log    *zap.SugaredLogger
	now    func() time.Time
}

// NewLogPublisher creates a publisher whose events claim the given
// service name as their source.
func NewLogPublisher(serviceName string, log *zap.SugaredLogger) *LogPublisher {
	return &LogPublisher{
		source: fmt.Sprintf("urn:service:%s", serviceName),
		log:    log,
		now:    time.Now,
	}
}

// PublishOrderCreated emits an order.created event carrying the full
// order payload.
func (p *LogPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) {
	p.publish(ctx, p.newEnvelope(TypeOrderCreated, aggregate.ID(), map[string]any{
		"id":         aggregate.ID(),
		"customerId": aggregate.CustomerID(),
		"items":      aggregate.Items(),
		"status":     aggregate.Status().String(),
	}))
}

// PublishOrderUpdated emits an order.updated event carrying the new and
// the previous status.
func (p *LogPublisher) PublishOrderUpdated(ctx context.Context, aggregate *order.Order, previousStatus order.Status) {
	p.publish(ctx, p.newEnvelope(TypeOrderUpdated, aggregate.ID(), map[string]any{
		"id":             aggregate.ID(),
		"status":         aggregate.Status().String(),
		"previousStatus": previousStatus.String(),
	}))
}

func (p *LogPublisher) newEnvelope(eventType string, orderID string, data map[string]any) Envelope {
	return Envelope{
		SpecVersion:     specVersion,
		Type:            eventType,
		Source:          p.source,
		ID:              uuid.NewString(),
		Time:            p.now().UTC().Format(time.RFC3339Nano),
		DataContentType: dataContentType,
		Subject:         fmt.Sprintf("orders/%s", orderID),
		Data:            data,
	}
}

// publish writes the envelope to the log. Publish failures never
// propagate to the triggering request.
func (p *LogPublisher) publish(_ context.Context, envelope Envelope) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		p.log.Errorw("cloud event publish failed",
			"event_type", envelope.Type,
			"event_id", envelope.ID,
			"error", err,
		)
		return
	}

	p.log.Infow("cloud event published",
		"event_type", envelope.Type,
		"event_id", envelope.ID,
		"subject", envelope.Subject,
		"event", string(payload),
	)
}
