package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SkipTracePayload announces a completed skip trace so downstream consumers
// (currently the notification worker) can react without blocking the save.
type SkipTracePayload struct {
	LeadID       string    `json:"lead_id"`
	CaseNumber   string    `json:"case_number"`
	ContactID    string    `json:"contact_id"`
	ContactName  string    `json:"contact_name"`
	OperatorName string    `json:"operator_name"`
	CompletedAt  time.Time `json:"completed_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishSkipTrace(ctx context.Context, payload SkipTracePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal skip-trace payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish skip-trace notice: %w", err)
	}
	return nil
}
