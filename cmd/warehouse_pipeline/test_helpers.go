package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the warehouse_pipeline binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "warehouse_pipeline"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/%s ./cmd/%s'",
			binaryPath, binaryName, binaryName)
	}

	return binaryPath
}

// writeLaunchConfig writes a minimal launch configuration YAML into dir and
// returns its path. The shape mirrors the stock replicator agent config: a
// vendor root section with scene and character subsections.
func writeLaunchConfig(t *testing.T, dir string) string {
	t.Helper()

	launchPath := filepath.Join(dir, "launch.yaml")
	launchYAML := "agent:\n" +
		"  scene:\n" +
		"    asset_path: placeholder.usd # overwritten by the pipeline\n" +
		"  character:\n" +
		"    command_file: default_command.txt\n"
	if err := os.WriteFile(launchPath, []byte(launchYAML), 0644); err != nil {
		t.Fatalf("writing launch config: %v", err)
	}

	return launchPath
}

// writePipelineConfig writes a pipeline config JSON into dir pointing every
// stage at the given program, and returns its path. A launch config is
// created alongside it so validation passes.
func writePipelineConfig(t *testing.T, dir, program, workDir string) string {
	t.Helper()

	launchPath := writeLaunchConfig(t, dir)

	cfgJSON := fmt.Sprintf(`{
  "generator": {"program": %q},
  "editor": {"program": %q},
  "simulator": {"program": %q},
  "launcher": {"program": %q},
  "work_dir": %q,
  "scene_dir": %q,
  "launch_config": %q
}`, program, program, program, program, workDir, dir, launchPath)

	cfgPath := filepath.Join(dir, "pipeline.json")
	if err := os.WriteFile(cfgPath, []byte(cfgJSON), 0644); err != nil {
		t.Fatalf("writing pipeline config: %v", err)
	}

	return cfgPath
}
