package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyRecipient(t *testing.T) {
	hub := NewHub(4)

	johnEvents, johnDone := hub.Subscribe("user-foh-002")
	defer johnDone()
	janeEvents, janeDone := hub.Subscribe("user-boh-003")
	defer janeDone()

	hub.Publish("user-foh-002", Event{Event: "notification", Data: "shift assigned"})

	require.Len(t, johnEvents, 1)
	got := <-johnEvents
	assert.Equal(t, "user-foh-002", got.StaffID)
	assert.Equal(t, "notification", got.Event)
	assert.Len(t, janeEvents, 0)
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	hub := NewHub(1)
	events, done := hub.Subscribe("user-foh-002")
	defer done()

	hub.Publish("user-foh-002", Event{Event: "a"})
	hub.Publish("user-foh-002", Event{Event: "b"})

	assert.Len(t, events, 1)
	assert.Equal(t, "a", (<-events).Event)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub(0)
	_, done := hub.Subscribe("user-foh-002")
	assert.Equal(t, 1, hub.SubscriberCount("user-foh-002"))

	done()
	done()
	assert.Equal(t, 0, hub.SubscriberCount("user-foh-002"))

	hub.Publish("user-foh-002", Event{Event: "ignored"})
}
