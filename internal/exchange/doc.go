// Package exchange implements the bulk data-exchange engine: exporting the
// full watched log and watchlist to a single portable artifact (JSON or CSV)
// and importing such an artifact back into the store.
//
// The JSON format carries explicit nulls for unset optional fields, so a
// round trip preserves the unset-vs-empty distinction exactly. The CSV
// format cannot: an empty unquoted field decodes to unset, so an originally
// empty text field re-imports as absent. That asymmetry is a documented
// property of the format, not a defect to fix here; existing consumers of
// exported files depend on it.
//
// Export and import are synchronous and single-threaded. The engine holds no
// state between calls, spawns no goroutines, and takes its store access as
// injected interfaces (Source, Sink) so it can run against any backend.
package exchange
