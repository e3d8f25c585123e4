// Watched-log commands: add, list, delete.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entertainment/moviememo/pkg/types"
)

var watchedCmd = &cobra.Command{
	Use:   "watched",
	Short: "Manage the watched log",
}

var (
	watchedTitle      string
	watchedDate       string
	watchedLocation   string
	watchedTimeOfDay  string
	watchedRating     int
	watchedSpendCents int
	watchedDuration   int
	watchedGenre      string
	watchedNotes      string
	watchedCompanions string
	watchedLanguage   string
	watchedTheater    string
	watchedCity       string
	watchedPlatform   string
)

var watchedAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a watched movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := &types.WatchedEntry{
			Title:        watchedTitle,
			WatchedDate:  watchedDate,
			LocationType: strings.ToUpper(watchedLocation),
			TimeOfDay:    strings.ToUpper(watchedTimeOfDay),
		}
		if cmd.Flags().Changed("rating") {
			entry.Rating = &watchedRating
		}
		if cmd.Flags().Changed("spend-cents") {
			entry.SpendCents = &watchedSpendCents
		}
		if cmd.Flags().Changed("duration") {
			entry.DurationMin = &watchedDuration
		}
		setIfNotEmpty(&entry.Genre, watchedGenre)
		setIfNotEmpty(&entry.Notes, watchedNotes)
		setIfNotEmpty(&entry.Companions, watchedCompanions)
		setIfNotEmpty(&entry.Language, watchedLanguage)
		setIfNotEmpty(&entry.TheaterName, watchedTheater)
		setIfNotEmpty(&entry.City, watchedCity)
		setIfNotEmpty(&entry.StreamingPlatform, watchedPlatform)

		if err := entry.Validate(); err != nil {
			fail(exitUserError, "watched add: %s", err)
		}

		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watched add: %s", err)
		}
		defer store.Close()

		id, err := store.InsertWatched(entry)
		if err != nil {
			fail(exitSysError, "watched add: %s", err)
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Printf("Logged %q (id %d)\n", entry.Title, id)
		return nil
	},
}

var watchedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watched list: %s", err)
		}
		defer store.Close()

		entries, err := store.AllWatched()
		if err != nil {
			fail(exitSysError, "watched list: %s", err)
		}

		if flagJSON {
			if entries == nil {
				entries = []types.WatchedEntry{}
			}
			return printJSON(entries)
		}
		for i := range entries {
			e := &entries[i]
			fmt.Printf("%d\t%s\t%s\t%s/%s\trating=%s\n",
				e.ID, e.WatchedDate, e.Title, e.LocationType, e.TimeOfDay,
				intOrDash(e.Rating))
		}
		return nil
	},
}

var watchedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a watched entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail(exitUserError, "watched delete: invalid id %q", args[0])
		}

		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watched delete: %s", err)
		}
		defer store.Close()

		if err := store.DeleteWatched(id); err != nil {
			fail(exitUserError, "watched delete: %s", err)
		}
		fmt.Printf("Deleted watched entry %d\n", id)
		return nil
	},
}

// setIfNotEmpty points dst at v unless v is empty.
func setIfNotEmpty(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}

func init() {
	f := watchedAddCmd.Flags()
	f.StringVar(&watchedTitle, "title", "", "movie title (required)")
	f.StringVar(&watchedDate, "date", "", "watched date, yyyy-MM-dd (required)")
	f.StringVar(&watchedLocation, "location", "HOME", "location: home, theater, friends_home, other")
	f.StringVar(&watchedTimeOfDay, "time", "EVENING", "time of day: morning, afternoon, evening, night")
	f.IntVar(&watchedRating, "rating", 0, "rating 0-10")
	f.IntVar(&watchedSpendCents, "spend-cents", 0, "spend in minor currency units")
	f.IntVar(&watchedDuration, "duration", 0, "duration in minutes")
	f.StringVar(&watchedGenre, "genre", "", "genre")
	f.StringVar(&watchedNotes, "notes", "", "free-text notes")
	f.StringVar(&watchedCompanions, "companions", "", "comma-separated companions")
	f.StringVar(&watchedLanguage, "language", "", "language code (en, te, hi, ...)")
	f.StringVar(&watchedTheater, "theater", "", "theater name")
	f.StringVar(&watchedCity, "city", "", "city")
	f.StringVar(&watchedPlatform, "platform", "", "streaming platform")
	watchedAddCmd.MarkFlagRequired("title")
	watchedAddCmd.MarkFlagRequired("date")

	watchedCmd.AddCommand(watchedAddCmd)
	watchedCmd.AddCommand(watchedListCmd)
	watchedCmd.AddCommand(watchedDeleteCmd)
}
