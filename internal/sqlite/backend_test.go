package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/entertainment/moviememo/pkg/types"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(types.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestOpenCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	b, err := Open(types.Config{DataDir: dataDir})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(filepath.Join(dataDir, dbFileName)); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpenRejectsEmptyDataDir(t *testing.T) {
	_, err := Open(types.Config{})
	if !errors.Is(err, types.ErrDataDirEmpty) {
		t.Errorf("expected ErrDataDirEmpty, got %v", err)
	}
}

func TestOpenExistingDatabaseKeepsRecords(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{DataDir: dataDir}

	b, err := Open(config)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	id, err := b.InsertWatched(&types.WatchedEntry{
		Title:        "Heat",
		WatchedDate:  "2024-01-15",
		LocationType: types.LocationHome,
		TimeOfDay:    types.TimeNight,
	})
	if err != nil {
		t.Fatalf("InsertWatched failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err = Open(config)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer b.Close()

	got, err := b.GetWatched(id)
	if err != nil {
		t.Fatalf("GetWatched failed: %v", err)
	}
	if got.Title != "Heat" {
		t.Errorf("expected Heat, got %q", got.Title)
	}
}

func TestCloseIdempotent(t *testing.T) {
	b := openTestBackend(t)

	if err := b.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestOperationsAfterClose(t *testing.T) {
	b := openTestBackend(t)
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := b.AllWatched(); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("AllWatched: expected ErrStoreClosed, got %v", err)
	}
	if _, err := b.GetWatchlist(1); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("GetWatchlist: expected ErrStoreClosed, got %v", err)
	}
	if err := b.InsertWatchedBulk(nil); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("InsertWatchedBulk: expected ErrStoreClosed, got %v", err)
	}
}
