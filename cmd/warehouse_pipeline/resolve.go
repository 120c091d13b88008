package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitesh/warehouse-pipeline/internal/artifact"
)

var resolveCommand = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the newest artifact in a directory",
	Long: `Resolves the most recently modified file with one of the given extensions, exactly as the pipeline would between stages.

Useful for checking which file a stage will pick up before sitting through an interactive session.`,
	RunE: resolveCmd,
}

var (
	resolveDir  string
	resolveExts []string
)

func init() {
	resolveCommand.Flags().StringVar(&resolveDir, "dir", "", "Directory to scan (required)")
	resolveCommand.Flags().StringSliceVar(&resolveExts, "ext", nil, "Accepted extensions, e.g. --ext .usd,.usda (required)")

	_ = resolveCommand.MarkFlagRequired("dir")
	_ = resolveCommand.MarkFlagRequired("ext")

	rootCmd.AddCommand(resolveCommand)
}

func resolveCmd(_ *cobra.Command, _ []string) error {
	res, err := artifact.NewDirResolver().Resolve(resolveDir, resolveExts)
	if err != nil {
		return err
	}

	fmt.Printf("%s (modified %s)\n", res.Path, res.ModTime.Format("2006-01-02 15:04:05"))
	return nil
}
