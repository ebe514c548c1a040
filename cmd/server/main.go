package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pc-builder",
	Short: "PC build recommendation service for the Bangladesh market",
}

func main() {
	rootCmd.AddCommand(serveCmd, scrapeCmd, seedCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
