// Package store holds the current application state and runs every
// mutation through the dispatch pipeline: pre-dispatch middleware, the
// reducer pipeline, post-dispatch middleware, then a StateChanged publish
// on the bus.
//
// The store is the single writer. Dispatch is synchronous and bound to the
// main execution context; middleware must not re-enter Dispatch from its
// own hooks, and slow side effects belong on background goroutines that
// feed results back through a fresh Dispatch, never by mutating state
// directly.
package store
