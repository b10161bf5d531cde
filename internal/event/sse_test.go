package event_test

import (
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/event"
)

func TestBroadcast_ReachesRegisteredClients(t *testing.T) {
	server := event.NewSSEServer()
	topic := event.UserTopic("user1")

	client := make(chan event.Event, 1)
	server.Register(topic, client)
	defer server.Unregister(topic, client)

	server.Broadcast(event.Event{Topic: topic, Type: event.TypeBadgeUpdated})

	select {
	case ev := <-client:
		if ev.Type != event.TypeBadgeUpdated {
			t.Fatalf("unexpected event type %s", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("registered client did not receive the event")
	}
}

func TestBroadcast_OtherTopicsUnaffected(t *testing.T) {
	server := event.NewSSEServer()

	client := make(chan event.Event, 1)
	server.Register(event.UserTopic("user1"), client)
	defer server.Unregister(event.UserTopic("user1"), client)

	server.Broadcast(event.Event{Topic: event.UserTopic("user2"), Type: event.TypeBadgeUpdated})

	select {
	case <-client:
		t.Fatal("client received an event for another user's topic")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcast_SlowClientDoesNotBlock(t *testing.T) {
	server := event.NewSSEServer()
	topic := event.UserTopic("user1")

	// Unbuffered channel nobody reads from.
	slow := make(chan event.Event)
	server.Register(topic, slow)
	defer server.Unregister(topic, slow)

	done := make(chan struct{})
	go func() {
		server.Broadcast(event.Event{Topic: topic, Type: event.TypeNotificationReceived})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func TestUnregister_ClosesChannel(t *testing.T) {
	server := event.NewSSEServer()
	topic := event.UserTopic("user1")

	client := make(chan event.Event, 1)
	server.Register(topic, client)
	server.Unregister(topic, client)

	if _, ok := <-client; ok {
		t.Fatal("unregistered channel should be closed")
	}

	// Double unregister must be a no-op, not a double close.
	server.Unregister(topic, client)
}
