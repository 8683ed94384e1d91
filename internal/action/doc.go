// Package action defines the closed set of actions describing every
// possible mutation to application state.
//
// Actions are immutable tagged-union values: each variant is a struct
// carrying exactly the data the reducers need, never functions or mutable
// references, so that reduction stays deterministic and replayable. The set
// is closed across six categories — Subject, Note, Page, Template,
// Navigation, and Settings.
package action
