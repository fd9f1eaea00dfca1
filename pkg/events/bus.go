package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic carries every core telemetry event. Subscribers filter by
// EventType.
const Topic = "core.telemetry"

// Bus is the in-process pub/sub used for observability events. Publishing
// must never block or fail a storage operation, so Publish drops events
// when the bus is closed and callers treat errors as log-only.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NopLogger{},
		),
	}
}

func (b *Bus) Publish(evt Event) error {
	payload, err := json.Marshal(BaseEvent{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}
	return b.pubSub.Publish(Topic, message.NewMessage(watermill.NewUUID(), payload))
}

// Subscribe returns a channel of decoded events. Messages that fail to
// decode are acked and skipped. The channel closes with ctx.
func (b *Bus) Subscribe(ctx context.Context) (<-chan BaseEvent, error) {
	messages, err := b.pubSub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, err
	}

	out := make(chan BaseEvent)
	go func() {
		defer close(out)
		for msg := range messages {
			var evt BaseEvent
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				msg.Ack()
				continue
			}
			msg.Ack()
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
