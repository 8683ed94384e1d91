// Package bridge adapts the legacy string-keyed notification mechanism to
// and from the typed event bus, so both can coexist during incremental
// migration.
//
// For a fixed, enumerable mapping of legacy name to typed event, the
// bridge re-broadcasts typed events under the legacy name with their
// fields flattened into a JSON payload, and re-publishes legacy broadcasts
// as typed events. String keys exist only at this boundary; they never
// leak past the translation layer. Provenance suppression guarantees an
// event crossing the bridge in one direction is not echoed back in the
// other.
package bridge
