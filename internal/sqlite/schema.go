// Schema DDL for the MovieMemo store.
package sqlite

const (
	createWatchedEntries = `CREATE TABLE IF NOT EXISTS watched_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    rating INTEGER,
    watched_date TEXT NOT NULL,
    location_type TEXT NOT NULL,
    location_notes TEXT,
    companions TEXT,
    spend_cents INTEGER,
    duration_min INTEGER,
    time_of_day TEXT NOT NULL,
    genre TEXT,
    notes TEXT,
    poster_uri TEXT,
    language TEXT,
    theater_name TEXT,
    city TEXT,
    streaming_platform TEXT
);`

	createWatchedIndexes = `CREATE INDEX IF NOT EXISTS idx_watched_date ON watched_entries(watched_date);
CREATE INDEX IF NOT EXISTS idx_watched_title ON watched_entries(title);`

	createWatchlistItems = `CREATE TABLE IF NOT EXISTS watchlist_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    notes TEXT,
    priority INTEGER,
    created_at INTEGER,
    target_date INTEGER,
    language TEXT,
    where_to_watch TEXT,
    release_date INTEGER
);`

	createWatchlistIndexes = `CREATE INDEX IF NOT EXISTS idx_watchlist_title ON watchlist_items(title);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createWatchedEntries,
	createWatchedIndexes,
	createWatchlistItems,
	createWatchlistIndexes,
}
