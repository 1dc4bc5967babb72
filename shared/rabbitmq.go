package shared

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ carries click messages from the redirect path to the in-process
// consumer pool. Publishing is best-effort; the redirect never waits on it.
type RabbitMQ struct {
	connectionString string
	connection       *amqp.Connection
}

func NewRabbitMQ(connectionString string) *RabbitMQ {
	return &RabbitMQ{connectionString: connectionString}
}

func (r *RabbitMQ) Connect(delay time.Duration) error {
	if delay > 0 {
		time.Sleep(delay)
	}

	connection, err := amqp.Dial(r.connectionString)
	if err != nil {
		return err
	}
	r.connection = connection
	return nil
}

func (r *RabbitMQ) Close() error {
	return r.connection.Close()
}

func (r *RabbitMQ) Publish(ctx context.Context, queue string, message interface{}) error {
	if r.connection.IsClosed() {
		if err := r.Connect(0); err != nil {
			return err
		}
	}

	channel, err := r.connection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Consume starts workers feeding off the queue and returns. A callback error
// requeues the delivery once via Nack.
func (r *RabbitMQ) Consume(queue string, callback func([]byte) error, workers int) error {
	if r.connection.IsClosed() {
		if err := r.Connect(0); err != nil {
			return err
		}
	}

	channel, err := r.connection.Channel()
	if err != nil {
		return err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return err
	}

	msgs, err := channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return err
	}

	for i := 0; i < workers; i++ {
		go func() {
			for d := range msgs {
				if err := callback(d.Body); err != nil {
					d.Nack(false, !d.Redelivered)
					continue
				}
				d.Ack(false)
			}
		}()
	}

	return nil
}
