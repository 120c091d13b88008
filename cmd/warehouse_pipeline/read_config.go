package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitesh/warehouse-pipeline/internal/launchcfg"
)

var readConfigCommand = &cobra.Command{
	Use:   "read-config",
	Short: "Print one parameter from a launch configuration",
	RunE:  readConfigCmd,
}

var (
	readFile  string
	readParam string
)

func init() {
	readConfigCommand.Flags().StringVarP(&readFile, "file", "f", "", "Path to the YAML file (required)")
	readConfigCommand.Flags().StringVarP(&readParam, "param", "p", "", "Parameter to read, dotted path for nested sections (required)")

	_ = readConfigCommand.MarkFlagRequired("file")
	_ = readConfigCommand.MarkFlagRequired("param")

	rootCmd.AddCommand(readConfigCommand)
}

func readConfigCmd(_ *cobra.Command, _ []string) error {
	value, err := launchcfg.ReadParameter(readFile, readParam)
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}
