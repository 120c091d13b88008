package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitesh/warehouse-pipeline/internal/schemas"
)

var validateLayoutCommand = &cobra.Command{
	Use:   "validate-layout",
	Short: "Check a generator layout file against the layout schema",
	Long: `Validates a warehouse layout JSON file against the schema the placement editor expects (warehouse type, scale, rack coordinates).

The pipeline itself never inspects layout contents; this is a debugging aid for generator output.`,
	RunE: validateLayoutCmd,
}

var layoutPath string

func init() {
	validateLayoutCommand.Flags().StringVar(&layoutPath, "layout", "", "Path to the layout JSON file (required)")

	_ = validateLayoutCommand.MarkFlagRequired("layout")

	rootCmd.AddCommand(validateLayoutCommand)
}

func validateLayoutCmd(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateLayout(layoutPath); err != nil {
		return err
	}

	fmt.Printf("%s is a valid warehouse layout\n", layoutPath)
	return nil
}
