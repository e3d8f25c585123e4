package types

import "errors"

// Location types. Stored as the constant name, matching the values written
// by every released export.
const (
	LocationHome        = "HOME"
	LocationTheater     = "THEATER"
	LocationFriendsHome = "FRIENDS_HOME"
	LocationOther       = "OTHER"
)

// validLocationTypes is the set of recognized location type values.
var validLocationTypes = map[string]bool{
	LocationHome:        true,
	LocationTheater:     true,
	LocationFriendsHome: true,
	LocationOther:       true,
}

// Times of day.
const (
	TimeMorning   = "MORNING"
	TimeAfternoon = "AFTERNOON"
	TimeEvening   = "EVENING"
	TimeNight     = "NIGHT"
)

// validTimesOfDay is the set of recognized time-of-day values.
var validTimesOfDay = map[string]bool{
	TimeMorning:   true,
	TimeAfternoon: true,
	TimeEvening:   true,
	TimeNight:     true,
}

// Watched entry validation errors.
var (
	ErrTitleEmpty          = errors.New("title must not be empty")
	ErrWatchedDateEmpty    = errors.New("watched date must not be empty")
	ErrLocationTypeUnknown = errors.New("unknown location type")
	ErrTimeOfDayUnknown    = errors.New("unknown time of day")
	ErrRatingRange         = errors.New("rating must be between 0 and 10")
	ErrSpendNegative       = errors.New("spend must not be negative")
	ErrDurationNotPositive = errors.New("duration must be positive")
)

// WatchedEntry is one logged movie viewing. ID is assigned by the store;
// zero means the entry has not been persisted yet. Optional fields are
// pointers so that "unset" is distinct from a zero or empty value: zero is
// a valid rating and spend, and an explicitly empty note is not the same as
// no note.
type WatchedEntry struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Rating            *int    `json:"rating"`
	WatchedDate       string  `json:"watchedDate"` // ISO yyyy-MM-dd for easy queries
	LocationType      string  `json:"locationType"`
	LocationNotes     *string `json:"locationNotes"`
	Companions        *string `json:"companions"` // comma-joined, e.g. "Alice,Bob"
	SpendCents        *int    `json:"spendCents"`
	DurationMin       *int    `json:"durationMin"`
	TimeOfDay         string  `json:"timeOfDay"`
	Genre             *string `json:"genre"`
	Notes             *string `json:"notes"`
	PosterURI         *string `json:"posterUri"`
	Language          *string `json:"language"` // short code: en, te, hi, ...
	TheaterName       *string `json:"theaterName"`
	City              *string `json:"city"`
	StreamingPlatform *string `json:"streamingPlatform"`
}

// Validate checks required fields, enum membership, and numeric ranges.
// Returns a sentinel error from this package on the first violation.
func (e *WatchedEntry) Validate() error {
	if e.Title == "" {
		return ErrTitleEmpty
	}
	if e.WatchedDate == "" {
		return ErrWatchedDateEmpty
	}
	if !validLocationTypes[e.LocationType] {
		return ErrLocationTypeUnknown
	}
	if !validTimesOfDay[e.TimeOfDay] {
		return ErrTimeOfDayUnknown
	}
	if e.Rating != nil && (*e.Rating < 0 || *e.Rating > 10) {
		return ErrRatingRange
	}
	if e.SpendCents != nil && *e.SpendCents < 0 {
		return ErrSpendNegative
	}
	if e.DurationMin != nil && *e.DurationMin <= 0 {
		return ErrDurationNotPositive
	}
	return nil
}

// ValidLocationType reports whether s is a recognized location type.
func ValidLocationType(s string) bool { return validLocationTypes[s] }

// ValidTimeOfDay reports whether s is a recognized time of day.
func ValidTimeOfDay(s string) bool { return validTimesOfDay[s] }
