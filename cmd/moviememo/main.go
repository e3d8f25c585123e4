// Package main provides the moviememo CLI: a personal movie log, watchlist,
// statistics, and bulk export/import.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
