// Package main provides the entry point for the BRD Generator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brd_server",
	Short: "BRD Generator HTTP API Server",
	Long:  "BRD Generator turns business documents (PDF, Word, CSV, Google Docs and Sheets) into structured Business Requirements Documents via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
