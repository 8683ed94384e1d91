// Package persist is the on-disk persistence collaborator. The store never
// calls it directly: the save middleware schedules debounced background
// saves after content mutations and immediate saves after settings
// changes, and state is reconstructed from here at startup.
//
// Storage is a single sqlite database holding a full relational snapshot
// of the content tree plus a key/value settings table. Saves replace the
// snapshot wholesale in one transaction.
package persist
