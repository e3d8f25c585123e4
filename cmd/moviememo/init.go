package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the moviememo store",
	Long:  `Init creates the configuration and data directories and an empty store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fail(exitSysError, "init: %s", err)
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail(exitSysError, "init: %s", err)
		}
		fmt.Printf("Initialized moviememo store in %s\n", dataDir)
		return nil
	},
}
