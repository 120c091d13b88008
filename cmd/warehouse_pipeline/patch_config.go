package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitesh/warehouse-pipeline/internal/launchcfg"
)

var patchConfigCommand = &cobra.Command{
	Use:   "patch-config",
	Short: "Rewrite one parameter in a launch configuration",
	Long: `Replaces the value of a (possibly nested) parameter in a YAML document, preserving all other lines, indentation and comments byte for byte.

Nested parameters use dotted paths, e.g. --param scene.asset_path.`,
	RunE: patchConfigCmd,
}

var (
	patchFile  string
	patchParam string
	patchValue string
)

func init() {
	patchConfigCommand.Flags().StringVarP(&patchFile, "file", "f", "", "Path to the YAML file (required)")
	patchConfigCommand.Flags().StringVarP(&patchParam, "param", "p", "", "Parameter to change, dotted path for nested sections (required)")
	patchConfigCommand.Flags().StringVar(&patchValue, "value", "", "New value for the parameter (required)")

	_ = patchConfigCommand.MarkFlagRequired("file")
	_ = patchConfigCommand.MarkFlagRequired("param")
	_ = patchConfigCommand.MarkFlagRequired("value")

	rootCmd.AddCommand(patchConfigCommand)
}

func patchConfigCmd(_ *cobra.Command, _ []string) error {
	if err := launchcfg.Patch(patchFile, []launchcfg.Edit{{Param: patchParam, Value: patchValue}}); err != nil {
		return err
	}

	fmt.Printf("Replaced parameter %q with %q in %s\n", patchParam, patchValue, patchFile)
	return nil
}
