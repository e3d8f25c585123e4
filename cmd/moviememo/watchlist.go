// Watchlist commands: add, list, delete.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entertainment/moviememo/pkg/types"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage the watchlist",
}

var (
	wlTitle        string
	wlNotes        string
	wlPriority     int
	wlTargetDate   int64
	wlReleaseDate  int64
	wlLanguage     string
	wlWhereToWatch string
)

var watchlistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Queue a movie to watch",
	RunE: func(cmd *cobra.Command, args []string) error {
		item := types.NewWatchlistItem(wlTitle)
		if cmd.Flags().Changed("priority") {
			item.Priority = &wlPriority
		}
		if cmd.Flags().Changed("target-date") {
			item.TargetDate = &wlTargetDate
		}
		if cmd.Flags().Changed("release-date") {
			item.ReleaseDate = &wlReleaseDate
		}
		setIfNotEmpty(&item.Notes, wlNotes)
		setIfNotEmpty(&item.Language, wlLanguage)
		if wlWhereToWatch != "" {
			where := strings.ToUpper(wlWhereToWatch)
			item.WhereToWatch = &where
		}

		if err := item.Validate(); err != nil {
			fail(exitUserError, "watchlist add: %s", err)
		}

		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watchlist add: %s", err)
		}
		defer store.Close()

		id, err := store.InsertWatchlist(item)
		if err != nil {
			fail(exitSysError, "watchlist add: %s", err)
		}

		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Queued %q (id %d)\n", item.Title, id)
		return nil
	},
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watchlist items, highest priority first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watchlist list: %s", err)
		}
		defer store.Close()

		items, err := store.AllWatchlist()
		if err != nil {
			fail(exitSysError, "watchlist list: %s", err)
		}

		if flagJSON {
			if items == nil {
				items = []types.WatchlistItem{}
			}
			return printJSON(items)
		}
		for i := range items {
			w := &items[i]
			fmt.Printf("%d\t%s\tpriority=%s\twhere=%s\n",
				w.ID, w.Title, intOrDash(w.Priority), orDash(w.WhereToWatch))
		}
		return nil
	},
}

var watchlistDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a watchlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail(exitUserError, "watchlist delete: invalid id %q", args[0])
		}

		store, err := openStore()
		if err != nil {
			fail(exitSysError, "watchlist delete: %s", err)
		}
		defer store.Close()

		if err := store.DeleteWatchlist(id); err != nil {
			fail(exitUserError, "watchlist delete: %s", err)
		}
		fmt.Printf("Deleted watchlist item %d\n", id)
		return nil
	},
}

func init() {
	f := watchlistAddCmd.Flags()
	f.StringVar(&wlTitle, "title", "", "movie title (required)")
	f.StringVar(&wlNotes, "notes", "", "free-text notes")
	f.IntVar(&wlPriority, "priority", types.PriorityMedium, "priority: 1=low, 2=medium, 3=high")
	f.Int64Var(&wlTargetDate, "target-date", 0, "target date, epoch milliseconds")
	f.Int64Var(&wlReleaseDate, "release-date", 0, "release date, epoch milliseconds")
	f.StringVar(&wlLanguage, "language", "", "language code (en, te, hi, ...)")
	f.StringVar(&wlWhereToWatch, "where", "", "where to watch: theater, ott_streaming, other")
	watchlistAddCmd.MarkFlagRequired("title")

	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistDeleteCmd)
}
