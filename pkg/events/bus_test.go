package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evts, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	err = bus.Publish(BaseEvent{
		Type:       TypeAttachmentSwept,
		Data:       map[string]interface{}{"note_id": "abc", "path": "/data/a.png"},
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	select {
	case evt := <-evts:
		assert.Equal(t, TypeAttachmentSwept, evt.Type)
		assert.Equal(t, "abc", evt.Data["note_id"])
		assert.Equal(t, "/data/a.png", evt.Data["path"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscribeClosesWithContext(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	evts, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-evts:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
