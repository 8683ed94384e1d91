// Package state defines the immutable application state: the content tree
// of subjects, notes, and pages, the UI state, and user settings.
//
// AppState is a value type. It is only ever replaced wholesale by the
// reducer pipeline; no component mutates it in place. Entity equality is
// identifier-based: two subjects with the same ID are the same subject
// regardless of their fields.
package state
