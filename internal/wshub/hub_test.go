package wshub

import (
	"livequiz/internal/events"
	"testing"
	"time"
)

func testClient(id string) *Client {
	return &Client{ID: id, Send: make(chan []byte, 16)}
}

func recv(t *testing.T, c *Client) events.Envelope {
	t.Helper()
	select {
	case data := <-c.Send:
		env, err := events.Decode(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		return env
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timed out waiting for message")
	}
	return events.Envelope{}
}

func TestSendTo(t *testing.T) {
	h := NewHub()
	c1 := testClient("c1")
	c2 := testClient("c2")
	h.Register(c1)
	h.Register(c2)

	h.SendTo("c1", events.RoomCreated, "123456")

	env := recv(t, c1)
	if env.Event != events.RoomCreated {
		t.Errorf("Event = %q, want %q", env.Event, events.RoomCreated)
	}

	select {
	case <-c2.Send:
		t.Fatal("c2 should not receive a unicast to c1")
	default:
		// expected
	}
}

func TestBroadcastReachesRoomOnly(t *testing.T) {
	h := NewHub()
	host := testClient("host")
	p1 := testClient("p1")
	outsider := testClient("out")
	h.Register(host)
	h.Register(p1)
	h.Register(outsider)

	h.Join("123456", "host")
	h.Join("123456", "p1")

	h.Broadcast("123456", events.GameStarted, nil)

	if env := recv(t, host); env.Event != events.GameStarted {
		t.Errorf("host got %q, want %q", env.Event, events.GameStarted)
	}
	if env := recv(t, p1); env.Event != events.GameStarted {
		t.Errorf("p1 got %q, want %q", env.Event, events.GameStarted)
	}
	select {
	case <-outsider.Send:
		t.Fatal("outsider should not receive room broadcasts")
	default:
		// expected
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	h := NewHub()
	c := testClient("c1")
	h.Register(c)
	h.Join("123456", "c1")
	h.Leave("123456", "c1")

	h.Broadcast("123456", events.GameStarted, nil)

	select {
	case <-c.Send:
		t.Fatal("client should not receive after leaving the room")
	default:
		// expected
	}
}

func TestDropRoom(t *testing.T) {
	h := NewHub()
	c := testClient("c1")
	h.Register(c)
	h.Join("123456", "c1")

	h.DropRoom("123456")
	h.Broadcast("123456", events.GameStarted, nil)

	select {
	case <-c.Send:
		t.Fatal("dropped room should deliver nothing")
	default:
		// expected
	}

	// Client itself is still registered and reachable.
	h.SendTo("c1", events.HostDisconnected, nil)
	if env := recv(t, c); env.Event != events.HostDisconnected {
		t.Errorf("got %q, want %q", env.Event, events.HostDisconnected)
	}
}

func TestUnregisterClosesSendAndLeavesRooms(t *testing.T) {
	h := NewHub()
	c1 := testClient("c1")
	c2 := testClient("c2")
	h.Register(c1)
	h.Register(c2)
	h.Join("123456", "c1")
	h.Join("123456", "c2")

	h.Unregister("c1")

	if _, ok := <-c1.Send; ok {
		t.Fatal("c1.Send should be closed")
	}

	h.Broadcast("123456", events.GameStarted, nil)
	if env := recv(t, c2); env.Event != events.GameStarted {
		t.Errorf("c2 got %q, want %q", env.Event, events.GameStarted)
	}
}

func TestUnregisterNonexistent(t *testing.T) {
	h := NewHub()
	// Should not panic
	h.Unregister("nonexistent")
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	h := NewHub()

	// Channel with capacity 1
	c := &Client{ID: "c1", Send: make(chan []byte, 1)}
	h.Register(c)
	h.Join("123456", "c1")

	// Fill the channel
	c.Send <- []byte("filler")

	// This should not block — message dropped
	h.Broadcast("123456", events.GameStarted, nil)

	data := <-c.Send
	if string(data) != "filler" {
		t.Fatalf("expected filler, got: %s", data)
	}

	select {
	case <-c.Send:
		t.Fatal("should be empty after draining filler")
	default:
		// expected
	}
}
