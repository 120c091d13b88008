package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hitesh/warehouse-pipeline/internal/config"
	"github.com/hitesh/warehouse-pipeline/internal/observability"
	"github.com/hitesh/warehouse-pipeline/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full content pipeline end-to-end",
	Long: `Runs the fixed stage sequence: generate layout -> place racks -> author navmesh -> configure launch -> launch simulation.

The interactive stages block until the operator closes the launched tool; the file the operator saved is picked up by modification time. The pipeline stops at the first stage whose expected output cannot be found.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runWorkDir      string
	runSceneDir     string
	runLaunchConfig string
	runVerbose      bool
	runDryRun       bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to the pipeline config JSON file (required)")
	runCommand.Flags().StringVar(&runWorkDir, "workdir", "", "Directory scanned for generator output (overrides config)")
	runCommand.Flags().StringVar(&runSceneDir, "scene-dir", "", "Directory scanned for saved scenes (overrides config)")
	runCommand.Flags().StringVar(&runLaunchConfig, "launch-config", "", "Launch configuration YAML to patch (overrides config)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print resolved artifacts and a run summary")
	runCommand.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the stage plan without invoking any tool")

	_ = runCommand.MarkFlagRequired("config")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	loadedCfg, err := config.LoadConfig(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := *loadedCfg

	// CLI overrides take priority, but only when explicitly set.
	if cmd.Flags().Changed("workdir") {
		cfg.WorkDir = runWorkDir
	}
	if cmd.Flags().Changed("scene-dir") {
		cfg.SceneDir = runSceneDir
	}
	if cmd.Flags().Changed("launch-config") {
		cfg.LaunchConfig = runLaunchConfig
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return err
	}

	if runDryRun {
		printStagePlan(&cfg)
		return nil
	}

	seq := pipeline.NewSequencer()
	seq.Verbose = cfg.Verbose

	run, err := seq.Execute(ctx, seq.BuildStages(&cfg))
	if err != nil {
		return err
	}

	fmt.Printf("Run %s finished in state %q.\n", run.ID, run.State)
	return nil
}

// printStagePlan shows what the run would do, with the tool each stage
// launches. Artifact-dependent arguments are only known mid-run and are
// shown as placeholders.
func printStagePlan(cfg *config.Config) {
	printer := observability.NewPrinter(os.Stdout)
	genMode := "batch"
	if cfg.GeneratorInteractive {
		genMode = "interactive"
	}
	printer.PrintStagePlan([][2]string{
		{pipeline.StageGenerate, genMode + ": " + cfg.Generator.Program},
		{pipeline.StagePlace, "interactive: " + cfg.Editor.Program + " <layout>"},
		{pipeline.StageNavmesh, "interactive: " + cfg.Simulator.Program + " <scene>"},
		{pipeline.StageConfigure, "patch " + cfg.LaunchConfig},
		{pipeline.StageLaunch, "batch: " + cfg.Launcher.Program + " " + cfg.LaunchConfig},
	})
	// Full paths; the box above truncates long ones.
	fmt.Printf("Layout and motion files are picked up from %s; scenes from %s.\n", cfg.WorkDir, cfg.SceneDir)
	fmt.Printf("Launch configuration: %s\n", cfg.LaunchConfig)
}
