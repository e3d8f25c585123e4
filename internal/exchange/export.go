package exchange

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/entertainment/moviememo/pkg/types"
)

// Source is the bulk-read side of the store contract. Both calls return the
// full current set; order is irrelevant to the artifact's correctness.
type Source interface {
	AllWatched() ([]types.WatchedEntry, error)
	AllWatchlist() ([]types.WatchlistItem, error)
}

// ExportResult reports a successful export.
type ExportResult struct {
	Path           string
	WatchedCount   int
	WatchlistCount int
}

// Exporter renders the store's current state into one self-contained
// artifact. It holds no state between calls.
type Exporter struct {
	source Source
	dir    string
	now    func() time.Time
}

// NewExporter returns an exporter writing artifacts into dir.
func NewExporter(source Source, dir string) *Exporter {
	return &Exporter{source: source, dir: dir, now: time.Now}
}

// Export reads the full dataset, assembles the whole artifact in memory,
// and commits it in one pass via temp-file, fsync, rename. On any failure
// no partial file is left readable at the final path.
func (x *Exporter) Export(format string) (*ExportResult, error) {
	watched, err := x.source.AllWatched()
	if err != nil {
		return nil, fmt.Errorf("%w: reading watched entries: %v", ErrPersistence, err)
	}
	watchlist, err := x.source.AllWatchlist()
	if err != nil {
		return nil, fmt.Errorf("%w: reading watchlist items: %v", ErrPersistence, err)
	}

	captured := x.now()

	var content []byte
	switch format {
	case FormatJSON:
		content, err = encodeDocument(&exportDocument{
			ExportDate:     captured.Format(exportDateLayout),
			Version:        formatVersion,
			WatchedEntries: watched,
			WatchlistItems: watchlist,
		})
		if err != nil {
			return nil, err
		}
	case FormatCSV:
		content = []byte(renderCSV(watched, watchlist))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	name := fileNamePrefix + captured.Format(fileTimestampLayout) + "." + format
	path := filepath.Join(x.dir, name)
	if err := writeFileAtomic(path, content); err != nil {
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}

	log.WithFields(log.Fields{
		"path":      path,
		"format":    format,
		"watched":   len(watched),
		"watchlist": len(watchlist),
	}).Info("Export complete")

	return &ExportResult{
		Path:           path,
		WatchedCount:   len(watched),
		WatchlistCount: len(watchlist),
	}, nil
}

// renderCSV assembles the delimited-text artifact: the fixed header, one
// row per watched entry, then one row per watchlist item.
func renderCSV(watched []types.WatchedEntry, watchlist []types.WatchlistItem) string {
	var w rowWriter
	w.writeHeader()
	for i := range watched {
		w.writeRow(watchedToRow(&watched[i]))
	}
	for i := range watchlist {
		w.writeRow(watchlistToRow(&watchlist[i]))
	}
	return w.String()
}

// watchedToRow projects a watched entry onto the 22-column schema. The
// watchlist-only columns stay empty.
func watchedToRow(e *types.WatchedEntry) []string {
	row := make([]string, columnCount)
	row[colType] = rowTypeWatched
	row[colTitle] = e.Title
	row[colRating] = optInt(e.Rating)
	row[colWatchedDate] = e.WatchedDate
	row[colLocationType] = e.LocationType
	row[colLocationNotes] = optString(e.LocationNotes)
	row[colCompanions] = optString(e.Companions)
	row[colSpendCents] = optInt(e.SpendCents)
	row[colDurationMin] = optInt(e.DurationMin)
	row[colTimeOfDay] = e.TimeOfDay
	row[colGenre] = optString(e.Genre)
	row[colNotes] = optString(e.Notes)
	row[colPosterURI] = optString(e.PosterURI)
	row[colLanguage] = optString(e.Language)
	row[colTheaterName] = optString(e.TheaterName)
	row[colCity] = optString(e.City)
	row[colStreamingPlatform] = optString(e.StreamingPlatform)
	return row
}

// watchlistToRow projects a watchlist item onto the schema. Only the shared
// columns (Notes, Language) and the watchlist-only columns are filled.
func watchlistToRow(w *types.WatchlistItem) []string {
	row := make([]string, columnCount)
	row[colType] = rowTypeWatchlist
	row[colTitle] = w.Title
	row[colNotes] = optString(w.Notes)
	row[colLanguage] = optString(w.Language)
	row[colPriority] = optInt(w.Priority)
	row[colCreatedAt] = optInt64(w.CreatedAt)
	row[colTargetDate] = optInt64(w.TargetDate)
	row[colWhereToWatch] = optString(w.WhereToWatch)
	row[colReleaseDate] = optInt64(w.ReleaseDate)
	return row
}

// writeFileAtomic commits content with the temp-file, fsync, rename
// pattern. The temp file is removed on every failure path so an aborted
// export leaves nothing readable behind.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
