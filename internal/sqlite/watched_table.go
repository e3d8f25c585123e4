// Watched-log operations for the SQLite store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/entertainment/moviememo/pkg/types"
)

const watchedColumns = `id, title, rating, watched_date, location_type,
location_notes, companions, spend_cents, duration_min, time_of_day, genre,
notes, poster_uri, language, theater_name, city, streaming_platform`

const insertWatchedSQL = `INSERT INTO watched_entries (
    title, rating, watched_date, location_type, location_notes, companions,
    spend_cents, duration_min, time_of_day, genre, notes, poster_uri,
    language, theater_name, city, streaming_platform
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// insertWatchedWithIDSQL keeps an explicit id, used by bulk insert when the
// artifact carried one.
const insertWatchedWithIDSQL = `INSERT INTO watched_entries (
    id, title, rating, watched_date, location_type, location_notes,
    companions, spend_cents, duration_min, time_of_day, genre, notes,
    poster_uri, language, theater_name, city, streaming_platform
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// watchedArgs lists the non-id bind values in column order.
func watchedArgs(e *types.WatchedEntry) []any {
	return []any{
		e.Title, nullInt(e.Rating), e.WatchedDate, e.LocationType,
		nullStr(e.LocationNotes), nullStr(e.Companions),
		nullInt(e.SpendCents), nullInt(e.DurationMin), e.TimeOfDay,
		nullStr(e.Genre), nullStr(e.Notes), nullStr(e.PosterURI),
		nullStr(e.Language), nullStr(e.TheaterName), nullStr(e.City),
		nullStr(e.StreamingPlatform),
	}
}

// scanWatched hydrates one row into a WatchedEntry.
func scanWatched(row interface{ Scan(...any) error }) (*types.WatchedEntry, error) {
	var (
		e                                              types.WatchedEntry
		rating, spendCents, durationMin                sql.NullInt64
		locationNotes, companions, genre, notes        sql.NullString
		posterURI, language, theaterName, city, stream sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.Title, &rating, &e.WatchedDate, &e.LocationType,
		&locationNotes, &companions, &spendCents, &durationMin,
		&e.TimeOfDay, &genre, &notes, &posterURI, &language,
		&theaterName, &city, &stream,
	)
	if err != nil {
		return nil, err
	}
	e.Rating = ptrInt(rating)
	e.LocationNotes = ptrStr(locationNotes)
	e.Companions = ptrStr(companions)
	e.SpendCents = ptrInt(spendCents)
	e.DurationMin = ptrInt(durationMin)
	e.Genre = ptrStr(genre)
	e.Notes = ptrStr(notes)
	e.PosterURI = ptrStr(posterURI)
	e.Language = ptrStr(language)
	e.TheaterName = ptrStr(theaterName)
	e.City = ptrStr(city)
	e.StreamingPlatform = ptrStr(stream)
	return &e, nil
}

// InsertWatched persists a new entry and returns the store-assigned id.
func (b *Backend) InsertWatched(e *types.WatchedEntry) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return 0, err
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}

	res, err := db.Exec(insertWatchedSQL, watchedArgs(e)...)
	if err != nil {
		return 0, fmt.Errorf("inserting watched entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	e.ID = id
	return id, nil
}

// UpdateWatched rewrites an existing entry in place.
func (b *Backend) UpdateWatched(e *types.WatchedEntry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	if e.ID <= 0 {
		return types.ErrInvalidID
	}
	if err := e.Validate(); err != nil {
		return err
	}

	args := append(watchedArgs(e), e.ID)
	res, err := db.Exec(`UPDATE watched_entries SET
    title = ?, rating = ?, watched_date = ?, location_type = ?,
    location_notes = ?, companions = ?, spend_cents = ?, duration_min = ?,
    time_of_day = ?, genre = ?, notes = ?, poster_uri = ?, language = ?,
    theater_name = ?, city = ?, streaming_platform = ?
    WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("updating watched entry %d: %w", e.ID, err)
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

// DeleteWatched removes an entry by id.
func (b *Backend) DeleteWatched(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	res, err := db.Exec("DELETE FROM watched_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting watched entry %d: %w", id, err)
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

// GetWatched retrieves one entry by id.
func (b *Backend) GetWatched(id int64) (*types.WatchedEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRow(
		"SELECT "+watchedColumns+" FROM watched_entries WHERE id = ?", id)
	e, err := scanWatched(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting watched entry %d: %w", id, err)
	}
	return e, nil
}

// AllWatched returns the full watched log, newest first.
func (b *Backend) AllWatched() ([]types.WatchedEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(
		"SELECT " + watchedColumns + " FROM watched_entries ORDER BY watched_date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing watched entries: %w", err)
	}
	defer rows.Close()

	var entries []types.WatchedEntry
	for rows.Next() {
		e, err := scanWatched(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning watched entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// InsertWatchedBulk inserts a whole sequence in one transaction: all rows
// land or none do. Entries with a positive ID keep it; an id collision
// aborts the transaction.
func (b *Backend) InsertWatchedBulk(entries []types.WatchedEntry) error {
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

	for i := range entries {
		e := &entries[i]
		if e.ID > 0 {
			args := append([]any{e.ID}, watchedArgs(e)...)
			if _, err := tx.Exec(insertWatchedWithIDSQL, args...); err != nil {
				return fmt.Errorf("bulk inserting watched entry %d: %w", e.ID, err)
			}
			continue
		}
		if _, err := tx.Exec(insertWatchedSQL, watchedArgs(e)...); err != nil {
			return fmt.Errorf("bulk inserting watched entry %q: %w", e.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bulk insert: %w", err)
	}
	return nil
}
