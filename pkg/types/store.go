package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrAlreadyOpen  = errors.New("store is already open")
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidInput = errors.New("invalid input")
)

// Store is the record store the application and the exchange engine run
// against. All operations are synchronous and blocking; the store performs
// its own locking. Bulk operations are the contract the exchange engine
// builds on: All* reads the full current set in one call, Insert*Bulk writes
// a whole sequence in one call with the store's own transactional semantics.
type Store interface {
	// Watched log.
	InsertWatched(e *WatchedEntry) (int64, error)
	UpdateWatched(e *WatchedEntry) error
	DeleteWatched(id int64) error
	GetWatched(id int64) (*WatchedEntry, error)
	AllWatched() ([]WatchedEntry, error)
	InsertWatchedBulk(entries []WatchedEntry) error

	// Watchlist.
	InsertWatchlist(w *WatchlistItem) (int64, error)
	UpdateWatchlist(w *WatchlistItem) error
	DeleteWatchlist(id int64) error
	GetWatchlist(id int64) (*WatchlistItem, error)
	AllWatchlist() ([]WatchlistItem, error)
	InsertWatchlistBulk(items []WatchlistItem) error

	// Close releases store resources. Idempotent.
	Close() error
}
