package queue

import (
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SkipTraceNotifier delivers the completion notice (email today).
type SkipTraceNotifier interface {
	SendSkipTraceNotice(to string, payload SkipTracePayload) error
}

// Worker consumes skip-trace notices and emails the operations inbox. It is
// fully decoupled from the database: everything it needs rides in the
// payload.
type Worker struct {
	Channel  *amqp.Channel
	Notifier SkipTraceNotifier
	NotifyTo string
	Log      *slog.Logger
}

func NewWorker(ch *amqp.Channel, notifier SkipTraceNotifier, notifyTo string, log *slog.Logger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		NotifyTo: notifyTo,
		Log:      log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		w.Log.Error("register consumer failed", "queue", queueName, "err", err)
		return
	}

	w.Log.Info("worker waiting for skip-trace notices", "queue", queueName)

	for d := range msgs {
		var payload SkipTracePayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Error("invalid notice payload", "err", err)
			// Malformed message: reject without requeue so it dead-letters
			// instead of wedging the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.SendSkipTraceNotice(w.NotifyTo, payload); err != nil {
			w.Log.Error("send notice failed", "lead_id", payload.LeadID, "err", err)
			d.Nack(false, false)
			continue
		}

		w.Log.Info("skip-trace notice sent", "lead_id", payload.LeadID, "contact", payload.ContactName)
		d.Ack(false)
	}
}
