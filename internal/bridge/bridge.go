package bridge

import (
	"sync"

	"github.com/inklet/inklet/internal/event"
)

// Direction controls which way a mapping bridges.
type Direction int

const (
	// TypedToLegacy re-broadcasts typed events under the legacy name.
	TypedToLegacy Direction = 1 << iota

	// LegacyToTyped re-publishes legacy broadcasts as typed events.
	LegacyToTyped
)

// Both bridges in both directions for the same name.
const Both = TypedToLegacy | LegacyToTyped

// Mapping associates one legacy notification name with one typed event
// type. Construct with NewMapping.
type Mapping struct {
	name      string
	direction Direction
	attach    func(*Bridge) (*event.Subscription, error)
	decode    func(Payload) (event.Event, bool)
}

// Name returns the legacy notification name.
func (m Mapping) Name() string { return m.name }

// NewMapping builds a mapping between the legacy name and the typed event
// type T. encode flattens a typed event into the legacy payload; decode
// reconstructs the typed event from an inbound payload, reporting false
// for payloads it cannot interpret. Either may be nil when the
// corresponding direction is not bridged.
func NewMapping[T event.Event](name string, direction Direction, encode func(T) Payload, decode func(Payload) (T, bool)) Mapping {
	m := Mapping{name: name, direction: direction}
	if direction&TypedToLegacy != 0 && encode != nil {
		m.attach = func(b *Bridge) (*event.Subscription, error) {
			return event.Subscribe(b.bus, func(ev T) {
				b.emitLegacy(name, encode(ev))
			})
		}
	}
	if direction&LegacyToTyped != 0 && decode != nil {
		m.decode = func(p Payload) (event.Event, bool) {
			ev, ok := decode(p)
			if !ok {
				return nil, false
			}
			return ev, true
		}
	}
	return m
}

// Bridge wires a set of mappings between a bus and a center. Close it when
// the migration surface it serves is torn down.
type Bridge struct {
	bus    *event.Bus
	center *Center
	subs   *event.Manager
	cancel []func()

	mu       sync.Mutex
	suppress map[string]int
}

// New attaches every mapping and returns the live bridge.
func New(bus *event.Bus, center *Center, mappings []Mapping) (*Bridge, error) {
	b := &Bridge{
		bus:      bus,
		center:   center,
		subs:     event.NewManager(bus),
		suppress: make(map[string]int),
	}
	for _, m := range mappings {
		if m.attach != nil {
			sub, err := m.attach(b)
			if err != nil {
				b.Close()
				return nil, err
			}
			b.subs.Retain(sub)
		}
		if m.decode != nil {
			decode := m.decode
			name := m.name
			cancel := center.Observe(name, func(p Payload) {
				b.emitTyped(name, decode, p)
			})
			b.cancel = append(b.cancel, cancel)
		}
	}
	return b, nil
}

// Close detaches the bridge from both the bus and the center.
func (b *Bridge) Close() {
	b.subs.ClearAll()
	for _, cancel := range b.cancel {
		cancel()
	}
	b.cancel = nil
}

// emitLegacy forwards a typed event to the legacy channel unless the event
// itself arrived through this bridge under the same name.
func (b *Bridge) emitLegacy(name string, payload Payload) {
	if b.suppressed(name) {
		return
	}
	b.hold(name)
	defer b.release(name)
	b.center.Broadcast(name, payload)
}

// emitTyped forwards a legacy broadcast to the typed bus unless this
// bridge produced the broadcast. Payloads that fail to decode are dropped;
// the legacy channel carries no schema, so this is the only safe response.
func (b *Bridge) emitTyped(name string, decode func(Payload) (event.Event, bool), payload Payload) {
	if b.suppressed(name) {
		return
	}
	ev, ok := decode(payload)
	if !ok {
		return
	}
	b.hold(name)
	defer b.release(name)
	b.bus.Publish(ev)
}

func (b *Bridge) suppressed(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.suppress[name] > 0
}

func (b *Bridge) hold(name string) {
	b.mu.Lock()
	b.suppress[name]++
	b.mu.Unlock()
}

func (b *Bridge) release(name string) {
	b.mu.Lock()
	if b.suppress[name] > 0 {
		b.suppress[name]--
	}
	b.mu.Unlock()
}
