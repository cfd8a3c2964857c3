package services

import (
	"starwars/internal/logging"

	"github.com/goccy/go-json"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// CreatedEvent is the message published after a successful insert.
type CreatedEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// publishCreated sends a "<entity>.created" event. Failures are logged and swallowed so
// that a broker outage never fails a request whose row was already committed.
func publishCreated(publisher EventPublisher, entity string, data interface{}) {
	if publisher == nil {
		return
	}
	eventType := entity + ".created"
	body, err := json.Marshal(CreatedEvent{Event: eventType, Data: data})
	if err != nil {
		logging.Error().Err(err).Str("event", eventType).Msg("failed to marshal event")
		return
	}
	if err := publisher.Publish(eventType, body); err != nil {
		logging.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
		return
	}
	logging.Debug().Str("event", eventType).Msg("published event")
}
