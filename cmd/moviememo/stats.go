// Stats command: aggregate statistics over the watched log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over the watched log",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail(exitSysError, "stats: %s", err)
		}
		defer store.Close()

		summary, err := store.Stats()
		if err != nil {
			fail(exitSysError, "stats: %s", err)
		}

		if flagJSON {
			return printJSON(summary)
		}

		fmt.Printf("Watched:        %d (%d this month)\n", summary.WatchedCount, summary.ThisMonthCount)
		fmt.Printf("Watchlist:      %d\n", summary.WatchlistCount)
		fmt.Printf("Average rating: %.1f\n", summary.AvgRating)
		fmt.Printf("Total spend:    %d cents (%d this month)\n", summary.TotalSpendCents, summary.ThisMonthSpend)
		fmt.Printf("Total duration: %d min\n", summary.TotalDurationMin)
		fmt.Printf("Weekday/weekend: %d/%d\n", summary.WeekdayCount, summary.WeekendCount)

		if len(summary.TopGenres) > 0 {
			fmt.Println("Top genres:")
			for _, kc := range summary.TopGenres {
				fmt.Printf("  %-20s %d\n", kc.Key, kc.Count)
			}
		}
		if len(summary.PerMonth) > 0 {
			fmt.Println("Per month:")
			for _, kc := range summary.PerMonth {
				fmt.Printf("  %-20s %d\n", kc.Key, kc.Count)
			}
		}
		if len(summary.ByLocation) > 0 {
			fmt.Println("By location:")
			for _, kc := range summary.ByLocation {
				fmt.Printf("  %-20s %d\n", kc.Key, kc.Count)
			}
		}
		return nil
	},
}
