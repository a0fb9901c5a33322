package eventbus

import (
	"github.com/google/uuid"

	"github.com/quillrun/procyon/pkg/proc"
)

// Envelope pairs a topic with its payload for delivery to a subscriber.
type Envelope struct {
	Topic   proc.Topic
	Payload any
}

// Bus adapts the broadcaster to proc.EventSink, giving every live gRPC log
// stream (or any other in-process consumer) its own view of the same event
// stream without holding up the pump or reaper goroutine that published it.
type Bus struct {
	b *broadcaster[Envelope]
}

// New returns a running Bus. Call Close when the host is tearing down.
func New() *Bus {
	return &Bus{b: newBroadcaster[Envelope]()}
}

// Emit implements proc.EventSink.
func (bus *Bus) Emit(topic proc.Topic, payload any) {
	logger.Printf("emit %s", topic)
	bus.b.publish(Envelope{Topic: topic, Payload: payload})
}

// Close stops the bus and closes every live subscription's channel.
func (bus *Bus) Close() {
	bus.b.stop()
}

// Subscription is one consumer's view onto the bus. id is only used for
// logging: it lets a StreamLogs disconnect be correlated with the
// subscribe call that preceded it.
type Subscription struct {
	id  uuid.UUID
	ch  chan Envelope
	bus *Bus
}

// C returns the channel to receive envelopes from. It is closed when the
// bus stops or the subscription is closed.
func (s *Subscription) C() <-chan Envelope { return s.ch }

// Close detaches this subscription from the bus.
func (s *Subscription) Close() {
	logger.Printf("%s unsubscribed", s.id)
	s.bus.b.unsubscribe(s.ch)
}

// Subscribe registers a new subscription. Delivery to a slow consumer drops
// the oldest undelivered envelope in favor of the newest, matching the
// core's own "never block the publisher" contract.
func (bus *Bus) Subscribe() (*Subscription, error) {
	ch, err := bus.b.subscribe()
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	logger.Printf("%s subscribed", id)
	return &Subscription{id: id, ch: ch, bus: bus}, nil
}
