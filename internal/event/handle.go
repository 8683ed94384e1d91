package event

import "sync"

// Handle is an opaque token referring to an externally-owned value held in
// a HandleTable. Events that must reference such values carry a Handle
// instead of the value itself, keeping event payloads pure data.
type Handle uint64

// NoHandle is the zero Handle; it never resolves.
const NoHandle Handle = 0

// HandleTable is an explicit side-table mapping handles the core issues to
// values the core does not own. It replaces out-of-band tagging of foreign
// objects: the association lives here, never in the foreign object's
// storage.
type HandleTable struct {
	mu      sync.Mutex
	next    uint64
	entries map[Handle]any
}

// NewHandleTable creates an empty handle table.
func NewHandleTable() *HandleTable {
	return &HandleTable{
		entries: make(map[Handle]any),
	}
}

// Issue stores v and returns a fresh handle for it.
func (t *HandleTable) Issue(v any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := Handle(t.next)
	t.entries[h] = v
	return h
}

// Resolve returns the value for h, if it is still held.
func (t *HandleTable) Resolve(h Handle) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.entries[h]
	return v, ok
}

// Release drops the value for h. Releasing an unknown or already-released
// handle is a no-op.
func (t *HandleTable) Release(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, h)
}

// Len returns the number of live handles.
func (t *HandleTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
