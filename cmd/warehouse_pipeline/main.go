// Package main provides the entry point for the warehouse simulation
// content pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warehouse_pipeline",
	Short: "Sequence the warehouse simulation content pipeline",
	Long: "Connects the file-based handoffs between the warehouse layout generator, " +
		"the interactive rack placement and navmesh authoring tools, and the final " +
		"simulation launch: each stage's newest output file becomes the next stage's input.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
