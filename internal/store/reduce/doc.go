// Package reduce implements the pure reducer pipeline: one reducer per
// top-level state slice, composed behind a single entry point that fans out
// on the action's category.
//
// Reducers are total functions. An action that cannot apply — an unknown
// entity, an out-of-range index — returns the input state unchanged and
// reports that it was ignored; reducers never panic, since they run on
// UI-driven control flow. Reducers never mutate their input: mutated paths
// are copied, and the new state is returned by value.
package reduce
