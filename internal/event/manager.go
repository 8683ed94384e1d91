package event

import "sync"

// Manager owns a batch of subscriptions, typically scoped to a UI
// component's lifetime. Subscriptions made through SubscribeManaged are
// retained internally; the owner calls ClearAll once at teardown instead of
// tracking individual handles. Failing to call ClearAll leaks subscriptions
// that keep firing against a logically-dead observer.
type Manager struct {
	bus *Bus

	mu   sync.Mutex
	subs []*Subscription
}

// NewManager creates a subscription manager bound to bus.
func NewManager(bus *Bus) *Manager {
	return &Manager{bus: bus}
}

// Bus returns the bus this manager subscribes on.
func (m *Manager) Bus() *Bus {
	return m.bus
}

// SubscribeManaged registers callback for events of type T on the manager's
// bus and retains the resulting subscription for batch cancellation.
func SubscribeManaged[T Event](m *Manager, callback func(T)) error {
	sub, err := Subscribe(m.bus, callback)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()
	return nil
}

// Retain adds an existing subscription to the batch. Useful when the
// subscription was created elsewhere but should share this manager's
// lifetime.
func (m *Manager) Retain(sub *Subscription) {
	if sub == nil {
		return
	}
	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()
}

// ClearAll cancels every retained subscription and empties the container.
// A cleared manager holds nothing; calling ClearAll again is a no-op.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	subs := m.subs
	m.subs = nil
	m.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

// Len returns the number of retained subscriptions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}
