// Aggregate statistics over the watched log.
package sqlite

import (
	"database/sql"
	"fmt"
)

// KeyCount pairs a category value with how many entries carry it.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summary is the one-shot statistics snapshot the stats command renders.
type Summary struct {
	WatchedCount     int        `json:"watchedCount"`
	WatchlistCount   int        `json:"watchlistCount"`
	AvgRating        float64    `json:"avgRating"`
	TotalSpendCents  int        `json:"totalSpendCents"`
	TotalDurationMin int        `json:"totalDurationMin"`
	ThisMonthCount   int        `json:"thisMonthCount"`
	ThisMonthSpend   int        `json:"thisMonthSpendCents"`
	WeekdayCount     int        `json:"weekdayCount"`
	WeekendCount     int        `json:"weekendCount"`
	PerMonth         []KeyCount `json:"perMonth"`
	TopGenres        []KeyCount `json:"topGenres"`
	ByLocation       []KeyCount `json:"byLocation"`
	ByTimeOfDay      []KeyCount `json:"byTimeOfDay"`
	ByLanguage       []KeyCount `json:"byLanguage"`
}

// keyCountQuery runs a two-column (category, count) aggregate.
func keyCountQuery(db *sql.DB, query string) ([]KeyCount, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KeyCount
	for rows.Next() {
		var kc KeyCount
		if err := rows.Scan(&kc.Key, &kc.Count); err != nil {
			return nil, err
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}

// Stats computes the full summary in one pass of aggregate queries.
func (b *Backend) Stats() (*Summary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var s Summary
	scalars := []struct {
		query string
		dest  any
	}{
		{"SELECT COUNT(*) FROM watched_entries", &s.WatchedCount},
		{"SELECT COUNT(*) FROM watchlist_items", &s.WatchlistCount},
		{"SELECT IFNULL(AVG(rating), 0) FROM watched_entries WHERE rating IS NOT NULL", &s.AvgRating},
		{"SELECT IFNULL(SUM(spend_cents), 0) FROM watched_entries", &s.TotalSpendCents},
		{"SELECT IFNULL(SUM(duration_min), 0) FROM watched_entries WHERE duration_min IS NOT NULL", &s.TotalDurationMin},
		{"SELECT COUNT(*) FROM watched_entries WHERE substr(watched_date,1,7) = substr(date('now'),1,7)", &s.ThisMonthCount},
		{"SELECT IFNULL(SUM(spend_cents), 0) FROM watched_entries WHERE substr(watched_date,1,7) = substr(date('now'),1,7)", &s.ThisMonthSpend},
		{"SELECT COUNT(*) FROM watched_entries WHERE CAST(strftime('%w', watched_date) AS INTEGER) BETWEEN 1 AND 5", &s.WeekdayCount},
		{"SELECT COUNT(*) FROM watched_entries WHERE CAST(strftime('%w', watched_date) AS INTEGER) IN (0, 6)", &s.WeekendCount},
	}
	for _, q := range scalars {
		if err := db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("computing stats: %w", err)
		}
	}

	if s.PerMonth, err = keyCountQuery(db,
		"SELECT substr(watched_date,1,7) AS ym, COUNT(*) FROM watched_entries GROUP BY ym ORDER BY ym DESC"); err != nil {
		return nil, fmt.Errorf("computing per-month counts: %w", err)
	}
	if s.TopGenres, err = keyCountQuery(db,
		"SELECT genre, COUNT(*) AS cnt FROM watched_entries WHERE genre IS NOT NULL GROUP BY genre ORDER BY cnt DESC"); err != nil {
		return nil, fmt.Errorf("computing genre counts: %w", err)
	}
	if s.ByLocation, err = keyCountQuery(db,
		"SELECT location_type, COUNT(*) AS cnt FROM watched_entries GROUP BY location_type ORDER BY cnt DESC"); err != nil {
		return nil, fmt.Errorf("computing location counts: %w", err)
	}
	if s.ByTimeOfDay, err = keyCountQuery(db,
		"SELECT time_of_day, COUNT(*) AS cnt FROM watched_entries GROUP BY time_of_day ORDER BY cnt DESC"); err != nil {
		return nil, fmt.Errorf("computing time-of-day counts: %w", err)
	}
	if s.ByLanguage, err = keyCountQuery(db,
		"SELECT language, COUNT(*) AS cnt FROM watched_entries WHERE language IS NOT NULL GROUP BY language ORDER BY cnt DESC"); err != nil {
		return nil, fmt.Errorf("computing language counts: %w", err)
	}

	return &s, nil
}
