package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairconnect/api/internal/events"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var seen []events.EventType
	dispatcher.Subscribe(events.EventUserBanned, func(_ context.Context, event events.Event) error {
		seen = append(seen, event.Type)
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserBanned, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, []events.EventType{events.EventUserBanned}, seen)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventUserBanned, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserDeleted})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var calls int
	dispatcher.Subscribe(events.EventUserSuspended, func(context.Context, events.Event) error {
		calls++
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(events.EventUserSuspended, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserSuspended})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
