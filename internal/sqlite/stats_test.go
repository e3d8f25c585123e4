package sqlite

import (
	"errors"
	"testing"

	"github.com/entertainment/moviememo/pkg/types"
)

func TestStatsEmptyStore(t *testing.T) {
	b := openTestBackend(t)

	s, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.WatchedCount != 0 || s.WatchlistCount != 0 {
		t.Errorf("expected zero counts, got %d/%d", s.WatchedCount, s.WatchlistCount)
	}
	if s.AvgRating != 0 {
		t.Errorf("expected zero average rating, got %f", s.AvgRating)
	}
	if s.TotalSpendCents != 0 {
		t.Errorf("expected zero spend, got %d", s.TotalSpendCents)
	}
	if len(s.PerMonth) != 0 || len(s.TopGenres) != 0 {
		t.Errorf("expected empty breakdowns, got %v / %v", s.PerMonth, s.TopGenres)
	}
}

func TestStatsAggregates(t *testing.T) {
	b := openTestBackend(t)

	insert := func(title, date, location, timeOfDay string, rating, spend int, genre string) {
		t.Helper()
		e := testEntry(title, date)
		e.LocationType = location
		e.TimeOfDay = timeOfDay
		e.Rating = &rating
		e.SpendCents = &spend
		if genre != "" {
			e.Genre = &genre
		}
		if _, err := b.InsertWatched(e); err != nil {
			t.Fatalf("InsertWatched failed: %v", err)
		}
	}

	// 2024-03-02 is a Saturday, 2024-03-04 a Monday, 2024-04-05 a Friday.
	insert("A", "2024-03-02", types.LocationTheater, types.TimeEvening, 8, 1500, "Sci-Fi")
	insert("B", "2024-03-04", types.LocationHome, types.TimeNight, 6, 0, "Sci-Fi")
	insert("C", "2024-04-05", types.LocationHome, types.TimeEvening, 10, 500, "Drama")

	if _, err := b.InsertWatchlist(testItem("Queued", types.PriorityMedium, 100)); err != nil {
		t.Fatalf("InsertWatchlist failed: %v", err)
	}

	s, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if s.WatchedCount != 3 {
		t.Errorf("watched count: expected 3, got %d", s.WatchedCount)
	}
	if s.WatchlistCount != 1 {
		t.Errorf("watchlist count: expected 1, got %d", s.WatchlistCount)
	}
	if s.AvgRating != 8 {
		t.Errorf("avg rating: expected 8, got %f", s.AvgRating)
	}
	if s.TotalSpendCents != 2000 {
		t.Errorf("total spend: expected 2000, got %d", s.TotalSpendCents)
	}
	if s.WeekendCount != 1 || s.WeekdayCount != 2 {
		t.Errorf("weekend/weekday: expected 1/2, got %d/%d", s.WeekendCount, s.WeekdayCount)
	}

	if len(s.PerMonth) != 2 {
		t.Fatalf("expected 2 months, got %v", s.PerMonth)
	}
	if s.PerMonth[0].Key != "2024-04" || s.PerMonth[0].Count != 1 {
		t.Errorf("newest month first: got %v", s.PerMonth[0])
	}
	if s.PerMonth[1].Key != "2024-03" || s.PerMonth[1].Count != 2 {
		t.Errorf("per-month counts: got %v", s.PerMonth[1])
	}

	if len(s.TopGenres) != 2 || s.TopGenres[0].Key != "Sci-Fi" || s.TopGenres[0].Count != 2 {
		t.Errorf("top genres: got %v", s.TopGenres)
	}
	if len(s.ByLocation) != 2 || s.ByLocation[0].Key != types.LocationHome {
		t.Errorf("by location: got %v", s.ByLocation)
	}
	if len(s.ByTimeOfDay) != 2 || s.ByTimeOfDay[0].Key != types.TimeEvening {
		t.Errorf("by time of day: got %v", s.ByTimeOfDay)
	}
	if len(s.ByLanguage) != 0 {
		t.Errorf("no languages recorded, got %v", s.ByLanguage)
	}
}

func TestStatsAfterClose(t *testing.T) {
	b := openTestBackend(t)
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := b.Stats(); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}
