package exchange

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/entertainment/moviememo/pkg/types"
)

// Sink is the bulk-write side of the store contract. Each call hands the
// store a whole sequence in one shot; whatever transactional guarantee the
// store makes is the only one the importer has. The importer adds no
// transactionality of its own across the two calls.
type Sink interface {
	InsertWatchedBulk(entries []types.WatchedEntry) error
	InsertWatchlistBulk(items []types.WatchlistItem) error
}

// ImportResult reports how many records of each kind were handed to the
// store.
type ImportResult struct {
	WatchedCount   int
	WatchlistCount int
}

// Import phases. Each import moves through these one way; there is no
// retry inside the engine, callers decide whether to run the whole
// operation again.
const (
	phaseReading    = "reading"
	phaseParsing    = "parsing"
	phaseValidating = "validating"
	phasePersisting = "persisting"
)

// Importer reconstructs records from an artifact and hands them to the
// store. It holds no state between calls.
type Importer struct {
	sink Sink
	now  func() time.Time
}

// NewImporter returns an importer writing through sink.
func NewImporter(sink Sink) *Importer {
	return &Importer{sink: sink, now: time.Now}
}

// Import parses the artifact at path in the given format and bulk-inserts
// the result, one store call per record kind. Any parse or validation
// failure aborts before the store is touched, so a failed import persists
// zero records through this engine. Errors name the artifact, not a row:
// the whole file is either usable or it is not.
func (m *Importer) Import(path, format string) (*ImportResult, error) {
	artifact := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrSourceUnavailable, artifact, phaseReading, err)
	}

	var (
		watched   []types.WatchedEntry
		watchlist []types.WatchlistItem
	)
	switch format {
	case FormatJSON:
		watched, watchlist, err = m.parseJSON(data)
	case FormatCSV:
		watched, watchlist, err = m.parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s unreadable: %w", artifact, err)
	}

	if err := m.sink.InsertWatchedBulk(watched); err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrPersistence, artifact, phasePersisting, err)
	}
	if err := m.sink.InsertWatchlistBulk(watchlist); err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrPersistence, artifact, phasePersisting, err)
	}

	log.WithFields(log.Fields{
		"artifact":  artifact,
		"format":    format,
		"watched":   len(watched),
		"watchlist": len(watchlist),
	}).Info("Import complete")

	return &ImportResult{
		WatchedCount:   len(watched),
		WatchlistCount: len(watchlist),
	}, nil
}

// parseJSON reconstructs both record sequences from a structured document.
// Missing record arrays mean zero records of that kind.
func (m *Importer) parseJSON(data []byte) ([]types.WatchedEntry, []types.WatchlistItem, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, nil, err
	}
	return doc.WatchedEntries, doc.WatchlistItems, nil
}

// parseCSV reconstructs both record sequences from delimited text. The
// header line is skipped; each remaining logical record is tokenized and
// dispatched on its Type discriminator.
func (m *Importer) parseCSV(data []byte) ([]types.WatchedEntry, []types.WatchlistItem, error) {
	records, err := readRecords(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v (%s)", ErrMalformedRow, err, phaseParsing)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	var (
		watched   []types.WatchedEntry
		watchlist []types.WatchlistItem
	)
	for _, record := range records[1:] { // records[0] is the header
		fields := ParseRow(record)
		if len(fields) > columnCount {
			// Extra columns are out of schema; keep the known ones.
			log.WithField("columns", len(fields)).Warn("Row wider than schema, truncating")
			fields = fields[:columnCount]
		}
		switch fields[colType] {
		case rowTypeWatched:
			entry, err := rowToWatched(fields)
			if err != nil {
				return nil, nil, err
			}
			watched = append(watched, *entry)
		case rowTypeWatchlist:
			item, err := m.rowToWatchlist(fields)
			if err != nil {
				return nil, nil, err
			}
			watchlist = append(watchlist, *item)
		default:
			return nil, nil, fmt.Errorf("%w: unknown record type %q (%s)", ErrMalformedRow, fields[colType], phaseParsing)
		}
	}
	return watched, watchlist, nil
}

// rowToWatched rebuilds a watched entry from its row. Columns past the end
// of a short row count as absent. An empty field decodes to unset; the
// delimited format cannot distinguish unset from explicitly empty.
func rowToWatched(fields []string) (*types.WatchedEntry, error) {
	entry := &types.WatchedEntry{
		Title:        fieldAt(fields, colTitle),
		WatchedDate:  fieldAt(fields, colWatchedDate),
		LocationType: fieldAt(fields, colLocationType),
		TimeOfDay:    fieldAt(fields, colTimeOfDay),
	}
	if entry.TimeOfDay == "" {
		// Rows from before the column existed carry no time of day.
		entry.TimeOfDay = types.TimeMorning
	}

	var err error
	if entry.Rating, err = intFieldAt(fields, colRating, "Rating"); err != nil {
		return nil, err
	}
	if entry.SpendCents, err = intFieldAt(fields, colSpendCents, "SpendCents"); err != nil {
		return nil, err
	}
	if entry.DurationMin, err = intFieldAt(fields, colDurationMin, "DurationMin"); err != nil {
		return nil, err
	}

	entry.LocationNotes = strFieldAt(fields, colLocationNotes)
	entry.Companions = strFieldAt(fields, colCompanions)
	entry.Genre = strFieldAt(fields, colGenre)
	entry.Notes = strFieldAt(fields, colNotes)
	entry.PosterURI = strFieldAt(fields, colPosterURI)
	entry.Language = strFieldAt(fields, colLanguage)
	entry.TheaterName = strFieldAt(fields, colTheaterName)
	entry.City = strFieldAt(fields, colCity)
	entry.StreamingPlatform = strFieldAt(fields, colStreamingPlatform)
	return entry, nil
}

// rowToWatchlist rebuilds a watchlist item from its row. A missing
// CreatedAt is stamped with the import time, matching how the application
// stamps items created through it.
func (m *Importer) rowToWatchlist(fields []string) (*types.WatchlistItem, error) {
	item := &types.WatchlistItem{
		Title: fieldAt(fields, colTitle),
	}
	item.Notes = strFieldAt(fields, colNotes)
	item.Language = strFieldAt(fields, colLanguage)
	item.WhereToWatch = strFieldAt(fields, colWhereToWatch)

	var err error
	if item.Priority, err = intFieldAt(fields, colPriority, "Priority"); err != nil {
		return nil, err
	}
	if item.CreatedAt, err = int64FieldAt(fields, colCreatedAt, "CreatedAt"); err != nil {
		return nil, err
	}
	if item.TargetDate, err = int64FieldAt(fields, colTargetDate, "TargetDate"); err != nil {
		return nil, err
	}
	if item.ReleaseDate, err = int64FieldAt(fields, colReleaseDate, "ReleaseDate"); err != nil {
		return nil, err
	}

	if item.CreatedAt == nil {
		created := m.now().UnixMilli()
		item.CreatedAt = &created
	}
	return item, nil
}

// fieldAt returns the raw field at idx, or "" when the row is shorter than
// the schema.
func fieldAt(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// strFieldAt maps a text column to unset when empty.
func strFieldAt(fields []string, idx int) *string {
	v := fieldAt(fields, idx)
	if v == "" {
		return nil
	}
	return &v
}

// intFieldAt parses an integer column. A non-numeric token is a field type
// error and fails the whole import.
func intFieldAt(fields []string, idx int, name string) (*int, error) {
	tok := fieldAt(fields, idx)
	if tok == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q (%s)", ErrFieldType, name, tok, phaseValidating)
	}
	return &n, nil
}

// int64FieldAt parses a timestamp column (epoch milliseconds).
func int64FieldAt(fields []string, idx int, name string) (*int64, error) {
	tok := fieldAt(fields, idx)
	if tok == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q (%s)", ErrFieldType, name, tok, phaseValidating)
	}
	return &n, nil
}
