// Export command: write the full dataset to a JSON or CSV artifact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entertainment/moviememo/internal/exchange"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full dataset to a portable file",
	Long: `Export reads every watched entry and watchlist item and writes one
self-contained artifact. JSON preserves unset fields exactly; CSV is a flat
22-column table that cannot distinguish an empty text field from an unset
one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail(exitSysError, "export: %s", err)
		}
		defer store.Close()

		dir, err := exportDir(exportOut)
		if err != nil {
			fail(exitSysError, "export: %s", err)
		}

		result, err := exchange.NewExporter(store, dir).Export(exportFormat)
		if err != nil {
			fail(exitUserError, "export: %s", err)
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("Exported %d watched, %d watchlist to %s\n",
			result.WatchedCount, result.WatchlistCount, result.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", exchange.FormatJSON, "artifact format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default: export_dir from config, then data dir)")
}
