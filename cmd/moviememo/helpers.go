// Shared helpers for moviememo CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/entertainment/moviememo/internal/sqlite"
	"github.com/entertainment/moviememo/pkg/types"
)

// openStore resolves directories and opens the SQLite store. The caller
// must defer store.Close().
func openStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := sqlite.Open(types.Config{
		DataDir:   dataDir,
		ExportDir: configExportDir,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// exportDir resolves the directory export artifacts land in: --out flag
// value when set, then config export_dir, then the data directory.
func exportDir(flagOut string) (string, error) {
	if flagOut != "" {
		return flagOut, nil
	}
	if configExportDir != "" {
		return configExportDir, nil
	}
	return resolveDataDir()
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// fail prints the message to stderr and exits with the given code.
func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// orDash renders an optional text field for table output.
func orDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// intOrDash renders an optional integer for table output.
func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
