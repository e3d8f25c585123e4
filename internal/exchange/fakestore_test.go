package exchange

import (
	"errors"

	"github.com/entertainment/moviememo/pkg/types"
)

// fakeStore is an in-memory Source and Sink for engine tests.
type fakeStore struct {
	watched   []types.WatchedEntry
	watchlist []types.WatchlistItem

	readErr  error
	writeErr error
}

func (f *fakeStore) AllWatched() ([]types.WatchedEntry, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.watched, nil
}

func (f *fakeStore) AllWatchlist() ([]types.WatchlistItem, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.watchlist, nil
}

func (f *fakeStore) InsertWatchedBulk(entries []types.WatchedEntry) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.watched = append(f.watched, entries...)
	return nil
}

func (f *fakeStore) InsertWatchlistBulk(items []types.WatchlistItem) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.watchlist = append(f.watchlist, items...)
	return nil
}

var errStoreDown = errors.New("store down")

// Pointer helpers for building test records.

func intPtr(n int) *int          { return &n }
func int64Ptr(n int64) *int64    { return &n }
func strPtr(s string) *string    { return &s }
