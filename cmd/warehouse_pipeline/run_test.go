package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_MissingConfigFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), `required flag(s) "config" not set`)
}

func TestRunCommand_UnknownFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	cfgPath := writePipelineConfig(t, tmpDir, "/bin/true", tmpDir)

	cmd := exec.Command(binaryPath, "run", "--config", cfgPath, "--bogus")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown flag: --bogus")
}

func TestRunCommand_DryRunLaunchesNothing(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()

	// A tool that leaves a marker when launched; the dry run must not.
	marker := filepath.Join(tmpDir, "invoked")
	tool := filepath.Join(tmpDir, "tool.sh")
	script := "#!/bin/sh\ntouch " + marker + "\n"
	require.NoError(t, os.WriteFile(tool, []byte(script), 0755))

	cfgPath := writePipelineConfig(t, tmpDir, tool, tmpDir)

	cmd := exec.Command(binaryPath, "run", "--config", cfgPath, "--dry-run")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), "STAGE PLAN")
	assert.Contains(t, string(output), "1. generate layout")
	assert.Contains(t, string(output), "5. launch simulation")

	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr), "dry run launched a tool")
}

func TestRunCommand_WorkdirOverride(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	configured := filepath.Join(tmpDir, "work-from-config")
	override := filepath.Join(tmpDir, "work-from-flag")
	cfgPath := writePipelineConfig(t, tmpDir, "/bin/true", configured)

	// Flag set: the override beats the config file value.
	cmd := exec.Command(binaryPath, "run", "--config", cfgPath, "--dry-run", "--workdir", override)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), override)
	assert.NotContains(t, string(output), configured)

	// Flag unset: the config file value survives.
	cmd = exec.Command(binaryPath, "run", "--config", cfgPath, "--dry-run")
	output, err = cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), configured)
	assert.NotContains(t, string(output), override)
}

func TestRunCommand_LaunchConfigOverride(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	cfgPath := writePipelineConfig(t, tmpDir, "/bin/true", tmpDir)

	otherDir := filepath.Join(tmpDir, "other")
	require.NoError(t, os.MkdirAll(otherDir, 0755))
	otherLaunch := writeLaunchConfig(t, otherDir)

	cmd := exec.Command(binaryPath, "run", "--config", cfgPath, "--dry-run", "--launch-config", otherLaunch)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Launch configuration: "+otherLaunch)
}

func TestRunCommand_MissingLaunchConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	cfgPath := writePipelineConfig(t, tmpDir, "/bin/true", tmpDir)

	missing := filepath.Join(tmpDir, "no-such-launch.yaml")
	cmd := exec.Command(binaryPath, "run", "--config", cfgPath, "--dry-run", "--launch-config", missing)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "launch config not found")
}
