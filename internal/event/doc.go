// Package event provides the typed publish/subscribe bus at the heart of
// Inklet's core. Subscriptions are indexed by the event's Go type rather than
// by a string name, which eliminates the typo-class bugs of the legacy
// string-keyed notification mechanism.
//
// Delivery is synchronous: Publish invokes every current subscriber for the
// event's type inline, in registration order, before returning. Publishing
// from within a callback is permitted and runs depth-first. The bus retains
// no event history.
//
// The package also provides Manager, which ties a batch of subscriptions to
// an owner's lifetime, and HandleTable, a side-table for referring to
// externally-owned values through opaque handles.
package event
