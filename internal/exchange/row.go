package exchange

import (
	"bufio"
	"io"
	"strings"
)

// The delimited-text format is a fixed 22-column schema: one header line,
// then one row per record. The Type column discriminates watched rows from
// watchlist rows; each kind leaves the other kind's columns empty.
const (
	colType = iota
	colTitle
	colRating
	colWatchedDate
	colLocationType
	colLocationNotes
	colCompanions
	colSpendCents
	colDurationMin
	colTimeOfDay
	colGenre
	colNotes
	colPosterURI
	colLanguage
	colTheaterName
	colCity
	colStreamingPlatform
	colPriority
	colCreatedAt
	colTargetDate
	colWhereToWatch
	colReleaseDate

	columnCount = colReleaseDate + 1
)

// csvHeader is the fixed header line.
const csvHeader = "Type,Title,Rating,WatchedDate,LocationType,LocationNotes," +
	"Companions,SpendCents,DurationMin,TimeOfDay,Genre,Notes,PosterURI," +
	"Language,TheaterName,City,StreamingPlatform,Priority,CreatedAt," +
	"TargetDate,WhereToWatch,ReleaseDate"

// Row discriminators.
const (
	rowTypeWatched   = "Watched"
	rowTypeWatchlist = "Watchlist"
)

// ParseRow tokenizes one logical record into its raw field strings. It is a
// two-state machine over the character stream: outside quotes a delimiter
// ends the field and a quote opening a field enters quoted state; inside
// quotes a doubled quote is a literal quote and a single quote closes the
// field. Everything else, including delimiters and newlines inside quotes,
// is appended verbatim. The final buffer is always emitted, so a record
// never tokenizes to zero fields.
func ParseRow(record string) []string {
	var (
		fields   []string
		buf      strings.Builder
		inQuotes bool
		atStart  = true // no characters consumed for the current field yet
	)
	for i := 0; i < len(record); i++ {
		c := record[i]
		switch {
		case c == fieldQuote && inQuotes:
			if i+1 < len(record) && record[i+1] == fieldQuote {
				buf.WriteByte(fieldQuote)
				i++
				continue
			}
			inQuotes = false
		case c == fieldQuote && atStart:
			inQuotes = true
			atStart = false
		case c == fieldDelim && !inQuotes:
			fields = append(fields, buf.String())
			buf.Reset()
			atStart = true
		default:
			buf.WriteByte(c)
			atStart = false
		}
	}
	fields = append(fields, buf.String())
	return fields
}

// endsInsideQuotes reports whether scanning the record leaves the state
// machine in quoted state, i.e. the physical line broke inside a quoted
// field and the record continues on the next line.
func endsInsideQuotes(record string) bool {
	var (
		inQuotes bool
		atStart  = true
	)
	for i := 0; i < len(record); i++ {
		c := record[i]
		switch {
		case c == fieldQuote && inQuotes:
			if i+1 < len(record) && record[i+1] == fieldQuote {
				i++
				continue
			}
			inQuotes = false
		case c == fieldQuote && atStart:
			inQuotes = true
			atStart = false
		case c == fieldDelim && !inQuotes:
			atStart = true
		default:
			atStart = false
		}
	}
	return inQuotes
}

// readRecords splits the input into logical records. Physical lines are
// rejoined while a quoted field is still open, so escaped newlines survive
// a round trip. Blank records between rows are dropped.
func readRecords(r io.Reader) ([]string, error) {
	var (
		records []string
		pending strings.Builder
		open    bool
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if open {
			pending.WriteByte('\n')
			pending.WriteString(line)
		} else {
			if strings.TrimSpace(line) == "" {
				continue
			}
			pending.WriteString(line)
		}
		if endsInsideQuotes(pending.String()) {
			open = true
			continue
		}
		records = append(records, pending.String())
		pending.Reset()
		open = false
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if pending.Len() > 0 {
		// Unterminated quote at EOF: hand the partial record to the
		// parser rather than dropping data.
		records = append(records, pending.String())
	}
	return records, nil
}

// rowWriter assembles delimited-text lines from raw field values, escaping
// each one through the field codec so the quoting rule lives in one place.
type rowWriter struct {
	b strings.Builder
}

// writeHeader emits the fixed header line.
func (w *rowWriter) writeHeader() {
	w.b.WriteString(csvHeader)
	w.b.WriteByte('\n')
}

// writeRow escapes and joins one full row of raw values.
func (w *rowWriter) writeRow(fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.b.WriteByte(fieldDelim)
		}
		w.b.WriteString(EscapeField(f))
	}
	w.b.WriteByte('\n')
}

// String returns the assembled text.
func (w *rowWriter) String() string {
	return w.b.String()
}
