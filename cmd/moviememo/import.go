// Import command: load a previously exported artifact into the store.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entertainment/moviememo/internal/exchange"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a previously exported file",
	Long: `Import parses the artifact, validates every record, and inserts the
whole batch. A malformed artifact imports nothing: the store is only touched
after the entire file has parsed cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		format := importFormat
		if format == "" {
			format = formatFromPath(path)
		}

		store, err := openStore()
		if err != nil {
			fail(exitSysError, "import: %s", err)
		}
		defer store.Close()

		result, err := exchange.NewImporter(store).Import(path, format)
		if err != nil {
			fail(exitUserError, "import: %s", err)
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("Imported %d watched, %d watchlist from %s\n",
			result.WatchedCount, result.WatchlistCount, path)
		return nil
	},
}

// formatFromPath guesses the artifact format from the file extension,
// defaulting to JSON.
func formatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return exchange.FormatCSV
	}
	return exchange.FormatJSON
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "artifact format: json or csv (default: from file extension)")
}
