package exchange

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entertainment/moviememo/pkg/types"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testImporter(sink Sink) *Importer {
	m := NewImporter(sink)
	m.now = fixedTime
	return m
}

func TestImportCSV(t *testing.T) {
	content := csvHeader + "\n" +
		`Watched,Inception,9,2024-05-01,HOME,,"Alice,Bob",1250,148,EVENING,Sci-Fi,,,,,,` + "\n" +
		"Watchlist,Dune Part Two,,,,,,,,,,,,,,,,3,1714000000000,,THEATER,1709500000000\n"
	path := writeArtifact(t, "export.csv", content)

	store := &fakeStore{}
	result, err := testImporter(store).Import(path, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WatchedCount)
	assert.Equal(t, 1, result.WatchlistCount)

	require.Len(t, store.watched, 1)
	e := store.watched[0]
	assert.Equal(t, "Inception", e.Title)
	require.NotNil(t, e.Rating)
	assert.Equal(t, 9, *e.Rating)
	require.NotNil(t, e.Companions)
	assert.Equal(t, "Alice,Bob", *e.Companions)
	require.NotNil(t, e.SpendCents)
	assert.Equal(t, 1250, *e.SpendCents)
	assert.Nil(t, e.Notes, "empty field decodes to unset")

	require.Len(t, store.watchlist, 1)
	w := store.watchlist[0]
	assert.Equal(t, "Dune Part Two", w.Title)
	require.NotNil(t, w.Priority)
	assert.Equal(t, 3, *w.Priority)
	require.NotNil(t, w.WhereToWatch)
	assert.Equal(t, types.WatchAtTheater, *w.WhereToWatch)
	require.NotNil(t, w.ReleaseDate)
	assert.Equal(t, int64(1709500000000), *w.ReleaseDate)
}

func TestImportCSVShortRow(t *testing.T) {
	// Only the first five columns: everything after is absent, not an error.
	content := csvHeader + "\nWatched,Old Export,8,2023-01-15,HOME\n"
	path := writeArtifact(t, "short.csv", content)

	store := &fakeStore{}
	result, err := testImporter(store).Import(path, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WatchedCount)

	e := store.watched[0]
	assert.Equal(t, "Old Export", e.Title)
	require.NotNil(t, e.Rating)
	assert.Equal(t, 8, *e.Rating)
	assert.Nil(t, e.SpendCents)
	assert.Nil(t, e.Genre)
	// Missing time of day falls back to morning.
	assert.Equal(t, types.TimeMorning, e.TimeOfDay)
}

func TestImportCSVWideRowTruncated(t *testing.T) {
	fields := make([]string, columnCount+2)
	fields[colType] = rowTypeWatched
	fields[colTitle] = "Wide"
	fields[colRating] = "9"
	fields[colWatchedDate] = "2024-01-01"
	fields[colLocationType] = "HOME"
	fields[colTimeOfDay] = "EVENING"
	fields[columnCount] = "extra1"
	fields[columnCount+1] = "extra2"
	row := strings.Join(fields, ",")
	path := writeArtifact(t, "wide.csv", csvHeader+"\n"+row+"\n")

	store := &fakeStore{}
	result, err := testImporter(store).Import(path, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WatchedCount)
	assert.Equal(t, "Wide", store.watched[0].Title)
}

func TestImportCSVBadNumericFailsWholeImport(t *testing.T) {
	content := csvHeader + "\n" +
		"Watched,Good,9,2024-05-01,HOME,,,,,EVENING,,,,,,,,\n" +
		"Watched,Bad,abc,2024-05-02,HOME,,,,,EVENING,,,,,,,,\n"
	path := writeArtifact(t, "bad.csv", content)

	store := &fakeStore{}
	_, err := testImporter(store).Import(path, FormatCSV)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldType)
	assert.Contains(t, err.Error(), "bad.csv")
	assert.Empty(t, store.watched, "failed import must persist zero records")
	assert.Empty(t, store.watchlist)
}

func TestImportCSVUnknownType(t *testing.T) {
	path := writeArtifact(t, "odd.csv", csvHeader+"\nSeen,Whatever\n")

	store := &fakeStore{}
	_, err := testImporter(store).Import(path, FormatCSV)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Empty(t, store.watched)
}

func TestImportCSVMissingCreatedAtStampedNow(t *testing.T) {
	path := writeArtifact(t, "wl.csv", csvHeader+"\nWatchlist,Tenet\n")

	store := &fakeStore{}
	_, err := testImporter(store).Import(path, FormatCSV)
	require.NoError(t, err)

	require.Len(t, store.watchlist, 1)
	w := store.watchlist[0]
	require.NotNil(t, w.CreatedAt)
	assert.Equal(t, fixedTime().UnixMilli(), *w.CreatedAt)
	assert.Nil(t, w.Priority, "priority stays unset on import")
}

func TestImportJSON(t *testing.T) {
	content := `{
  "exportDate": "2024-05-01 15:30:00",
  "version": "1.0",
  "watchedEntries": [
    {
      "id": 1, "title": "Inception", "rating": 9,
      "watchedDate": "2024-05-01", "locationType": "HOME",
      "locationNotes": null, "companions": null, "spendCents": null,
      "durationMin": 148, "timeOfDay": "EVENING", "genre": "Sci-Fi",
      "notes": "", "posterUri": null, "language": "en",
      "theaterName": null, "city": null, "streamingPlatform": null
    }
  ],
  "watchlistItems": [
    {"id": 2, "title": "Dune Part Two", "notes": null, "priority": 3,
     "createdAt": 1714000000000, "targetDate": null, "language": null,
     "whereToWatch": null, "releaseDate": null}
  ]
}`
	path := writeArtifact(t, "export.json", content)

	store := &fakeStore{}
	result, err := testImporter(store).Import(path, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WatchedCount)
	assert.Equal(t, 1, result.WatchlistCount)

	e := store.watched[0]
	assert.Nil(t, e.SpendCents)
	require.NotNil(t, e.Notes)
	assert.Equal(t, "", *e.Notes, "explicit empty string survives JSON")
	require.NotNil(t, e.DurationMin)
	assert.Equal(t, 148, *e.DurationMin)
}

func TestImportJSONMissingArraysMeanZeroRecords(t *testing.T) {
	path := writeArtifact(t, "sparse.json", `{"exportDate": "x", "version": "1.0"}`)

	store := &fakeStore{}
	result, err := testImporter(store).Import(path, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, result.WatchedCount)
	assert.Equal(t, 0, result.WatchlistCount)
}

func TestImportJSONMalformed(t *testing.T) {
	path := writeArtifact(t, "broken.json", `{"watchedEntries": [`)

	_, err := testImporter(&fakeStore{}).Import(path, FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestImportJSONBadNumericType(t *testing.T) {
	content := `{"watchedEntries": [{"title": "X", "rating": "abc",
  "watchedDate": "2024-01-01", "locationType": "HOME", "timeOfDay": "NIGHT"}]}`
	path := writeArtifact(t, "badtype.json", content)

	store := &fakeStore{}
	_, err := testImporter(store).Import(path, FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldType)
	assert.Empty(t, store.watched)
}

func TestImportMissingFile(t *testing.T) {
	_, err := testImporter(&fakeStore{}).Import(
		filepath.Join(t.TempDir(), "nope.json"), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestImportPersistenceFailure(t *testing.T) {
	path := writeArtifact(t, "ok.json", `{"watchedEntries": [], "watchlistItems": []}`)

	store := &fakeStore{writeErr: errStoreDown}
	_, err := testImporter(store).Import(path, FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestImportUnknownFormat(t *testing.T) {
	path := writeArtifact(t, "x.txt", "whatever")
	_, err := testImporter(&fakeStore{}).Import(path, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestImportQuotedNewlineField(t *testing.T) {
	content := csvHeader + "\n" +
		"Watched,\"A Title\",,2024-05-01,HOME,\"row one\nrow two\",,,,EVENING,,,,,,,,\n"
	path := writeArtifact(t, "multiline.csv", content)

	store := &fakeStore{}
	_, err := testImporter(store).Import(path, FormatCSV)
	require.NoError(t, err)

	require.Len(t, store.watched, 1)
	require.NotNil(t, store.watched[0].LocationNotes)
	assert.Equal(t, "row one\nrow two", *store.watched[0].LocationNotes)
}
