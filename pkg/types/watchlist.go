package types

import (
	"errors"
	"time"
)

// Watchlist priorities.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Where-to-watch kinds.
const (
	WatchAtTheater   = "THEATER"
	WatchOnStreaming = "OTT_STREAMING"
	WatchOther       = "OTHER"
)

// validWhereToWatch is the set of recognized where-to-watch values.
var validWhereToWatch = map[string]bool{
	WatchAtTheater:   true,
	WatchOnStreaming: true,
	WatchOther:       true,
}

// Watchlist validation errors.
var (
	ErrPriorityRange       = errors.New("priority must be between 1 and 3")
	ErrWhereToWatchUnknown = errors.New("unknown where-to-watch kind")
)

// WatchlistItem is one movie queued to watch. ID is assigned by the store.
// CreatedAt is set once at creation and never re-derived; timestamps are
// epoch milliseconds. Optional fields follow the same nil-means-unset
// convention as WatchedEntry.
type WatchlistItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Notes        *string `json:"notes"`
	Priority     *int    `json:"priority"` // 1=low, 2=medium, 3=high
	CreatedAt    *int64  `json:"createdAt"`
	TargetDate   *int64  `json:"targetDate"`
	Language     *string `json:"language"`
	WhereToWatch *string `json:"whereToWatch"`
	ReleaseDate  *int64  `json:"releaseDate"` // theater releases only
}

// NewWatchlistItem returns an item with the creation-time defaults: medium
// priority and CreatedAt stamped now. Import does not use this constructor;
// imported records keep whatever the artifact carried.
func NewWatchlistItem(title string) *WatchlistItem {
	priority := PriorityMedium
	createdAt := time.Now().UnixMilli()
	return &WatchlistItem{
		Title:     title,
		Priority:  &priority,
		CreatedAt: &createdAt,
	}
}

// Validate checks required fields, enum membership, and the priority range.
func (w *WatchlistItem) Validate() error {
	if w.Title == "" {
		return ErrTitleEmpty
	}
	if w.Priority != nil && (*w.Priority < PriorityLow || *w.Priority > PriorityHigh) {
		return ErrPriorityRange
	}
	if w.WhereToWatch != nil && !validWhereToWatch[*w.WhereToWatch] {
		return ErrWhereToWatchUnknown
	}
	return nil
}

// ValidWhereToWatch reports whether s is a recognized where-to-watch kind.
func ValidWhereToWatch(s string) bool { return validWhereToWatch[s] }
