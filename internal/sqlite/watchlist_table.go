// Watchlist operations for the SQLite store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/entertainment/moviememo/pkg/types"
)

const watchlistColumns = `id, title, notes, priority, created_at,
target_date, language, where_to_watch, release_date`

const insertWatchlistSQL = `INSERT INTO watchlist_items (
    title, notes, priority, created_at, target_date, language,
    where_to_watch, release_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertWatchlistWithIDSQL = `INSERT INTO watchlist_items (
    id, title, notes, priority, created_at, target_date, language,
    where_to_watch, release_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// watchlistArgs lists the non-id bind values in column order.
func watchlistArgs(w *types.WatchlistItem) []any {
	return []any{
		w.Title, nullStr(w.Notes), nullInt(w.Priority),
		nullInt64(w.CreatedAt), nullInt64(w.TargetDate),
		nullStr(w.Language), nullStr(w.WhereToWatch),
		nullInt64(w.ReleaseDate),
	}
}

// scanWatchlist hydrates one row into a WatchlistItem.
func scanWatchlist(row interface{ Scan(...any) error }) (*types.WatchlistItem, error) {
	var (
		w                                 types.WatchlistItem
		priority                          sql.NullInt64
		createdAt, targetDate, releaseDat sql.NullInt64
		notes, language, whereToWatch     sql.NullString
	)
	err := row.Scan(
		&w.ID, &w.Title, &notes, &priority, &createdAt, &targetDate,
		&language, &whereToWatch, &releaseDat,
	)
	if err != nil {
		return nil, err
	}
	w.Notes = ptrStr(notes)
	w.Priority = ptrInt(priority)
	w.CreatedAt = ptrInt64(createdAt)
	w.TargetDate = ptrInt64(targetDate)
	w.Language = ptrStr(language)
	w.WhereToWatch = ptrStr(whereToWatch)
	w.ReleaseDate = ptrInt64(releaseDat)
	return &w, nil
}

// InsertWatchlist persists a new item and returns the store-assigned id.
func (b *Backend) InsertWatchlist(w *types.WatchlistItem) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return 0, err
	}
	if err := w.Validate(); err != nil {
		return 0, err
	}

	res, err := db.Exec(insertWatchlistSQL, watchlistArgs(w)...)
	if err != nil {
		return 0, fmt.Errorf("inserting watchlist item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	w.ID = id
	return id, nil
}

// UpdateWatchlist rewrites an existing item in place.
func (b *Backend) UpdateWatchlist(w *types.WatchlistItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	if w.ID <= 0 {
		return types.ErrInvalidID
	}
	if err := w.Validate(); err != nil {
		return err
	}

	args := append(watchlistArgs(w), w.ID)
	res, err := db.Exec(`UPDATE watchlist_items SET
    title = ?, notes = ?, priority = ?, created_at = ?, target_date = ?,
    language = ?, where_to_watch = ?, release_date = ?
    WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("updating watchlist item %d: %w", w.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteWatchlist removes an item by id.
func (b *Backend) DeleteWatchlist(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	res, err := db.Exec("DELETE FROM watchlist_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting watchlist item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// GetWatchlist retrieves one item by id.
func (b *Backend) GetWatchlist(id int64) (*types.WatchlistItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRow(
		"SELECT "+watchlistColumns+" FROM watchlist_items WHERE id = ?", id)
	w, err := scanWatchlist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting watchlist item %d: %w", id, err)
	}
	return w, nil
}

// AllWatchlist returns the full watchlist, highest priority first, newest
// first within a priority.
func (b *Backend) AllWatchlist() ([]types.WatchlistItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(
		"SELECT " + watchlistColumns + " FROM watchlist_items ORDER BY priority DESC, created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing watchlist items: %w", err)
	}
	defer rows.Close()

	var items []types.WatchlistItem
	for rows.Next() {
		w, err := scanWatchlist(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning watchlist item: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

// InsertWatchlistBulk inserts a whole sequence in one transaction, keeping
// explicit IDs the same way InsertWatchedBulk does.
func (b *Backend) InsertWatchlistBulk(items []types.WatchlistItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning bulk insert: %w", err)
	}
	defer tx.Rollback()

	for i := range items {
		w := &items[i]
		if w.ID > 0 {
			args := append([]any{w.ID}, watchlistArgs(w)...)
			if _, err := tx.Exec(insertWatchlistWithIDSQL, args...); err != nil {
				return fmt.Errorf("bulk inserting watchlist item %d: %w", w.ID, err)
			}
			continue
		}
		if _, err := tx.Exec(insertWatchlistSQL, watchlistArgs(w)...); err != nil {
			return fmt.Errorf("bulk inserting watchlist item %q: %w", w.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bulk insert: %w", err)
	}
	return nil
}
