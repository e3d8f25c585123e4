package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatchlistItem(t *testing.T) {
	before := time.Now().UnixMilli()
	item := NewWatchlistItem("Dune Part Two")
	after := time.Now().UnixMilli()

	assert.Equal(t, "Dune Part Two", item.Title)
	require.NotNil(t, item.Priority)
	assert.Equal(t, PriorityMedium, *item.Priority)
	require.NotNil(t, item.CreatedAt)
	assert.GreaterOrEqual(t, *item.CreatedAt, before)
	assert.LessOrEqual(t, *item.CreatedAt, after)
	assert.Nil(t, item.TargetDate)
	assert.Nil(t, item.WhereToWatch)
}

func TestWatchlistItemValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WatchlistItem)
		want   error
	}{
		{"valid", func(w *WatchlistItem) {}, nil},
		{"empty title", func(w *WatchlistItem) { w.Title = "" }, ErrTitleEmpty},
		{"priority too low", func(w *WatchlistItem) { p := 0; w.Priority = &p }, ErrPriorityRange},
		{"priority too high", func(w *WatchlistItem) { p := 4; w.Priority = &p }, ErrPriorityRange},
		{"nil priority ok", func(w *WatchlistItem) { w.Priority = nil }, nil},
		{"bad where-to-watch", func(w *WatchlistItem) { s := "DVD"; w.WhereToWatch = &s }, ErrWhereToWatchUnknown},
		{"streaming ok", func(w *WatchlistItem) { s := WatchOnStreaming; w.WhereToWatch = &s }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWatchlistItem("Dune Part Two")
			tt.mutate(w)
			assert.ErrorIs(t, w.Validate(), tt.want)
		})
	}
}

func TestValidWhereToWatch(t *testing.T) {
	assert.True(t, ValidWhereToWatch(WatchAtTheater))
	assert.True(t, ValidWhereToWatch(WatchOther))
	assert.False(t, ValidWhereToWatch("theater"))
}
