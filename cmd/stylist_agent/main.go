// Package main provides the entry point for the Outfit Stylist HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylist_agent",
	Short: "Outfit Stylist HTTP API Server",
	Long:  "Outfit Stylist analyzes clothing photos and produces complete outfit recommendations with color pairing, weather-aware adjustments and a generated outfit image, via REST API or one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
