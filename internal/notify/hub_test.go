package notify

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRegisterAndBroadcast(t *testing.T) {
	h := NewHub()

	c1 := &Client{ID: "c1", Send: make(chan []byte, 16)}
	c2 := &Client{ID: "c2", Send: make(chan []byte, 16)}
	h.Register(c1)
	h.Register(c2)

	h.Broadcast(Event{Type: "badge", ProfileID: "p1", BadgeType: "firstSteps", Name: "First Steps"})

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.Send:
			var got Event
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "badge" || got.BadgeType != "firstSteps" {
				t.Fatalf("unexpected event: %+v", got)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %s did not receive event", c.ID)
		}
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	h := NewHub()

	c := &Client{ID: "c1", Send: make(chan []byte, 1)}
	h.Register(c)
	h.Unregister("c1")

	if _, open := <-c.Send; open {
		t.Error("Send channel should be closed after unregister")
	}

	// Broadcasting after unregister must not panic
	h.Broadcast(Event{Type: "unlock", ProfileID: "p1", GameType: "mentalMath", Level: 2})
}

func TestBroadcast_DropsWhenFull(t *testing.T) {
	h := NewHub()

	c := &Client{ID: "c1", Send: make(chan []byte)}
	h.Register(c)

	done := make(chan struct{})
	go func() {
		h.Broadcast(Event{Type: "badge", ProfileID: "p1"})
		close(done)
	}()

	select {
	case <-done:
		// expected: broadcast never blocks on a full channel
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full client channel")
	}
}
