// Package types defines the MovieMemo domain entities (watched entries and
// watchlist items), the Store interface they are persisted through, the
// application Config, and the standard errors shared across packages.
package types
