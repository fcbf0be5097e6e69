package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus(16)
	t.Cleanup(bus.Shutdown)

	got := make(chan Event, 4)
	bus.Subscribe("route.changed", HandlerFunc{ID: "rec", Fn: func(e Event) { got <- e }})

	bus.Publish(Event{Type: "route.changed", Data: map[string]interface{}{"to": "splash"}})
	bus.Publish(Event{Type: "other"})
	bus.Publish(Event{Type: "route.changed", Data: map[string]interface{}{"to": "profile"}})

	first := receive(t, got)
	second := receive(t, got)
	assert.Equal(t, "splash", first.Data["to"])
	assert.Equal(t, "profile", second.Data["to"])
	assert.False(t, first.Timestamp.IsZero())
}

func TestBusAllTopicsAndPanickingHandler(t *testing.T) {
	bus := NewBus(16)
	t.Cleanup(bus.Shutdown)

	got := make(chan Event, 4)
	bus.Subscribe("splash.step", HandlerFunc{ID: "boom", Fn: func(Event) { panic("boom") }})
	bus.Subscribe(AllTopics, HandlerFunc{ID: "all", Fn: func(e Event) { got <- e }})

	bus.Publish(Event{Type: "splash.step"})
	assert.Equal(t, "splash.step", receive(t, got).Type)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus(16)
	t.Cleanup(bus.Shutdown)

	removed := make(chan Event, 1)
	kept := make(chan Event, 1)
	h := HandlerFunc{ID: "removed", Fn: func(e Event) { removed <- e }}
	bus.Subscribe("x", h)
	bus.Subscribe("x", HandlerFunc{ID: "kept", Fn: func(e Event) { kept <- e }})
	bus.Unsubscribe("x", h)

	bus.Publish(Event{Type: "x"})
	receive(t, kept)
	assert.Empty(t, removed)
}

func TestPublishAfterShutdownIsDropped(t *testing.T) {
	bus := NewBus(1)
	bus.Shutdown()
	bus.Shutdown()

	require.NotPanics(t, func() { bus.Publish(Event{Type: "late"}) })
}
