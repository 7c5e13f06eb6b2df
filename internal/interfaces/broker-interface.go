package interfaces

import "context"

// ProducerHandler publishes domain events to the message broker. The message
// key selects the event type on the consumer side.
type ProducerHandler interface {
	PublishMessage(key, value []byte) error
	Close() error
}

// ConsumerHandler is implemented by workers that process broker messages.
type ConsumerHandler interface {
	HandleMessage(ctx context.Context, key, value []byte) error
}
