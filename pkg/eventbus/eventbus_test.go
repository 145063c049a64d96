package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct{ kind string }

func (e testEvent) Type() string { return e.kind }

func TestPublishDeliversInOrder(t *testing.T) {
	bus := NewSimpleBus()
	var got []string

	bus.Subscribe("a", func(_ context.Context, e Event) { got = append(got, "first") })
	bus.Subscribe("a", func(_ context.Context, e Event) { got = append(got, "second") })
	bus.Subscribe("b", func(_ context.Context, e Event) { got = append(got, "other") })

	bus.Publish(context.Background(), testEvent{kind: "a"})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewSimpleBus()
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent{kind: "nobody"})
	})
}
