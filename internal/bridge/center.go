package bridge

import "sync"

// Payload is the untyped legacy notification payload: a flat JSON object.
type Payload []byte

// Center is the legacy string-keyed broadcast mechanism. It survives only
// as the far side of the bridge: new code subscribes to typed events on
// the bus instead.
type Center struct {
	mu        sync.Mutex
	nextID    uint64
	observers map[string][]centerObserver
}

type centerObserver struct {
	id uint64
	fn func(Payload)
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{
		observers: make(map[string][]centerObserver),
	}
}

// Broadcast delivers payload to every observer of name, in registration
// order. Unknown names are a no-op.
func (c *Center) Broadcast(name string, payload Payload) {
	c.mu.Lock()
	observers := make([]centerObserver, len(c.observers[name]))
	copy(observers, c.observers[name])
	c.mu.Unlock()

	for _, obs := range observers {
		obs.fn(payload)
	}
}

// Observe registers fn for broadcasts of name and returns a cancel
// function. Cancelling twice is a no-op.
func (c *Center) Observe(name string, fn func(Payload)) (cancel func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.observers[name] = append(c.observers[name], centerObserver{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		observers := c.observers[name]
		for i, obs := range observers {
			if obs.id == id {
				c.observers[name] = append(observers[:i:i], observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of observers for name.
func (c *Center) ObserverCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers[name])
}
