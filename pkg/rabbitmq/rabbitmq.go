package rabbitmq

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"starwars/internal/logging"

	"github.com/goccy/go-json"
	amqp "github.com/streadway/amqp"
)

// DefaultQueue receives every entity event.
const DefaultQueue = "entity_events"

// ErrMalformedEvent marks a delivery that can never be processed. Such messages are
// dropped instead of requeued.
var ErrMalformedEvent = errors.New("malformed event")

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the durable event queue.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", cfg.Queue, err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Publish sends a persistent JSON message to the event queue. The event type travels
// in the message Type property.
func (c *Client) Publish(eventType string, body []byte) error {
	if c == nil || c.channel == nil {
		return errors.New("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(
		"",      // exchange: default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		NewPublishing(eventType, body, time.Now()))
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// NewPublishing builds the AMQP message for an event.
func NewPublishing(eventType string, body []byte, at time.Time) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         eventType,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    at,
	}
}

// ConsumeEvents registers a consumer on the event queue and hands every delivery to
// handler in a background goroutine. The goroutine ends when the channel is closed.
func (c *Client) ConsumeEvents(handler func(msg amqp.Delivery) error) error {
	if c == nil || c.channel == nil {
		return errors.New("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack: acknowledged by Dispatch
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logging.Info().Str("queue", c.queue).Msg("waiting for entity events")
	go func() {
		for msg := range msgs {
			Dispatch(msg, handler)
		}
		logging.Info().Str("queue", c.queue).Msg("event consumer stopped")
	}()
	return nil
}

// Dispatch runs handler on msg, then acks it on success. Failures are nacked and
// requeued, except ErrMalformedEvent which is nacked without requeue.
func Dispatch(msg amqp.Delivery, handler func(msg amqp.Delivery) error) {
	err := handler(msg)
	if err == nil {
		if ackErr := msg.Ack(false); ackErr != nil {
			logging.Error().Err(ackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("error acking message")
		}
		return
	}

	requeue := !errors.Is(err, ErrMalformedEvent)
	logging.Warn().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Bool("requeue", requeue).Msg("error processing message")
	if nackErr := msg.Nack(false, requeue); nackErr != nil {
		logging.Error().Err(nackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("error nacking message")
	}
}

type eventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// HandleEventMessage logs a "<entity>.created" event. The event type comes from the
// message Type, or from the body when Type is empty.
func HandleEventMessage(msg amqp.Delivery) error {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	eventType := msg.Type
	if eventType == "" {
		eventType = envelope.Event
	}
	if eventType == "" || len(envelope.Data) == 0 {
		return fmt.Errorf("%w: missing event type or data", ErrMalformedEvent)
	}

	logging.Info().
		Str("event", eventType).
		Uint64("delivery_tag", msg.DeliveryTag).
		Time("published_at", msg.Timestamp).
		RawJSON("data", envelope.Data).
		Msg("received entity event")
	return nil
}
