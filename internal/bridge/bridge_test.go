package bridge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/inklet/inklet/internal/event"
	"github.com/inklet/inklet/internal/event/events"
	"github.com/inklet/inklet/internal/state"
)

func newTestBridge(t *testing.T) (*event.Bus, *Center, *Bridge) {
	t.Helper()
	bus := event.NewBus()
	center := NewCenter()
	br, err := New(bus, center, DefaultMappings())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return bus, center, br
}

func TestBridge_TypedToLegacy(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	var payloads []Payload
	center.Observe(NameDrawingDidStart, func(p Payload) {
		payloads = append(payloads, p)
	})

	pageID := uuid.New()
	bus.Publish(events.DrawingStarted{PageID: pageID})

	if len(payloads) != 1 {
		t.Fatalf("expected exactly 1 legacy broadcast, got %d", len(payloads))
	}
	if got := gjson.GetBytes(payloads[0], "pageID").String(); got != pageID.String() {
		t.Errorf("expected pageID %s, got %s", pageID, got)
	}
}

func TestBridge_NoEcho(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	typed := 0
	event.Subscribe(bus, func(events.DrawingStarted) { typed++ })

	legacy := 0
	center.Observe(NameDrawingDidStart, func(Payload) { legacy++ })

	// Typed publish: one typed delivery, one legacy broadcast, no
	// second typed publish from the bridge's own center observer.
	bus.Publish(events.DrawingStarted{PageID: uuid.New()})

	if typed != 1 {
		t.Errorf("expected 1 typed delivery, got %d", typed)
	}
	if legacy != 1 {
		t.Errorf("expected 1 legacy broadcast, got %d", legacy)
	}
}

func TestBridge_LegacyToTyped(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	var got []events.DrawingEnded
	event.Subscribe(bus, func(ev events.DrawingEnded) { got = append(got, ev) })

	legacy := 0
	center.Observe(NameDrawingDidEnd, func(Payload) { legacy++ })

	pageID := uuid.New()
	center.Broadcast(NameDrawingDidEnd, encodeDrawingEnded(events.DrawingEnded{PageID: pageID}))

	if len(got) != 1 || got[0].PageID != pageID {
		t.Fatalf("expected 1 typed event with pageID %s, got %v", pageID, got)
	}
	// The external broadcast reaches external observers once; the bridge
	// must not re-broadcast it.
	if legacy != 1 {
		t.Errorf("expected 1 legacy delivery, got %d", legacy)
	}
}

func TestBridge_UndecodablePayloadDropped(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	typed := 0
	event.Subscribe(bus, func(events.DrawingStarted) { typed++ })

	center.Broadcast(NameDrawingDidStart, Payload(`{"pageID":"not-a-uuid"}`))

	if typed != 0 {
		t.Errorf("expected undecodable payload dropped, got %d typed events", typed)
	}
}

func TestBridge_OneWayMappingDoesNotDecodeInbound(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	typed := 0
	event.Subscribe(bus, func(events.ThumbnailInvalidated) { typed++ })

	center.Broadcast(NameThumbnailDidInvalidate,
		encodeThumbnailInvalidated(events.ThumbnailInvalidated{NoteID: uuid.New()}))

	if typed != 0 {
		t.Errorf("expected typed-to-legacy mapping to ignore inbound broadcasts, got %d", typed)
	}
}

func TestBridge_StateChangedSummary(t *testing.T) {
	bus, center, _ := newTestBridge(t)

	var payload Payload
	center.Observe(NameAppStateDidChange, func(p Payload) { payload = p })

	st := state.Default()
	st.Content.Subjects = []state.Subject{{
		ID:    uuid.New(),
		Name:  "Math",
		Notes: []state.Note{{ID: uuid.New(), Pages: []state.Page{{ID: uuid.New(), PageNumber: 1}}}},
	}}
	st.UI.SearchText = "calc"
	bus.Publish(events.StateChanged{State: st})

	if payload == nil {
		t.Fatal("expected a legacy broadcast")
	}
	if n := gjson.GetBytes(payload, "subjectCount").Int(); n != 1 {
		t.Errorf("expected subjectCount 1, got %d", n)
	}
	if n := gjson.GetBytes(payload, "pageCount").Int(); n != 1 {
		t.Errorf("expected pageCount 1, got %d", n)
	}
	if s := gjson.GetBytes(payload, "searchText").String(); s != "calc" {
		t.Errorf("expected searchText calc, got %q", s)
	}
}

func TestBridge_Close(t *testing.T) {
	bus, center, br := newTestBridge(t)

	legacy := 0
	center.Observe(NameDrawingDidStart, func(Payload) { legacy++ })

	br.Close()

	bus.Publish(events.DrawingStarted{PageID: uuid.New()})
	if legacy != 0 {
		t.Errorf("expected no bridging after Close, got %d", legacy)
	}

	typed := 0
	event.Subscribe(bus, func(events.DrawingStarted) { typed++ })
	center.Broadcast(NameDrawingDidStart, encodeDrawingStarted(events.DrawingStarted{PageID: uuid.New()}))
	if typed != 0 {
		t.Errorf("expected no inbound bridging after Close, got %d", typed)
	}
}
