package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []EventType
	dispatcher.Subscribe(EventLoginSucceeded, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		t.Fatal("unexpected handler")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventLoginSucceeded}))
	assert.Equal(t, []EventType{EventLoginSucceeded}, seen)
}

func TestInMemoryDispatcher_HandlerErrorsDoNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	dispatcher.Subscribe(EventCredentialRegistered, func(context.Context, Event) error {
		calls++
		return boom
	})
	dispatcher.Subscribe(EventCredentialRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventCredentialRegistered})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
