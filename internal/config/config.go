// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Tool describes one external program a stage invokes.
type Tool struct {
	Program string   `json:"program" validate:"required"`
	Args    []string `json:"args,omitempty"`
}

// Config represents the pipeline configuration loaded from a JSON file.
// Tool entries are required; directory and parameter fields fall back to the
// conventions of the stock toolchain via MergeWithDefaults.
type Config struct {
	// External tools, one per process-backed stage.
	Generator Tool `json:"generator"` // warehouse layout generator
	Editor    Tool `json:"editor"`    // rack placement editor
	Simulator Tool `json:"simulator"` // full app used for navmesh authoring
	Launcher  Tool `json:"launcher"`  // final simulation runtime

	// Directories scanned for handoff artifacts.
	WorkDir  string `json:"work_dir,omitempty"`  // generator output (layout + motion files)
	SceneDir string `json:"scene_dir,omitempty"` // editor/simulator save location

	// Launch configuration document and the parameters patched into it.
	LaunchConfig string `json:"launch_config" validate:"required"`
	SceneParam   string `json:"scene_param,omitempty"`
	MotionParam  string `json:"motion_param,omitempty"`

	// Accepted artifact extensions per handoff.
	LayoutExts []string `json:"layout_exts,omitempty"`
	MotionExts []string `json:"motion_exts,omitempty"`
	SceneExts  []string `json:"scene_exts,omitempty"`

	// GeneratorInteractive marks the generator as a wait-for-user tool.
	// The stock generator is a GUI where the operator saves files manually,
	// but headless variants exist whose exit code is authoritative.
	GeneratorInteractive bool `json:"generator_interactive,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the merged configuration. Called after MergeWithDefaults
// so every required field has had its chance to be filled in.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", f.Namespace(), f.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	for _, exts := range [][]string{c.LayoutExts, c.MotionExts, c.SceneExts} {
		for _, ext := range exts {
			if len(ext) < 2 || ext[0] != '.' {
				return fmt.Errorf("config error: extension %q must start with a dot", ext)
			}
		}
	}

	// The launch config is patched late in the run, but a missing document
	// should stop the pipeline before the operator sits through three
	// interactive stages.
	if _, err := os.Stat(c.LaunchConfig); os.IsNotExist(err) {
		return fmt.Errorf("config error: launch config not found: %s", c.LaunchConfig)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flag overrides are applied by the caller before this.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.WorkDir == "" {
		result.WorkDir = defaults.WorkDir
	}
	if result.SceneDir == "" {
		result.SceneDir = defaults.SceneDir
	}
	if result.LaunchConfig == "" {
		result.LaunchConfig = defaults.LaunchConfig
	}
	if result.SceneParam == "" {
		result.SceneParam = defaults.SceneParam
	}
	if result.MotionParam == "" {
		result.MotionParam = defaults.MotionParam
	}
	if len(result.LayoutExts) == 0 {
		result.LayoutExts = defaults.LayoutExts
	}
	if len(result.MotionExts) == 0 {
		result.MotionExts = defaults.MotionExts
	}
	if len(result.SceneExts) == 0 {
		result.SceneExts = defaults.SceneExts
	}

	return result
}

// Defaults returns the conventions of the stock toolchain: generator output
// lands in the current directory, the editors save to ~/Downloads, and the
// launch config uses the replicator agent parameter names.
func Defaults() Config {
	sceneDir := "Downloads"
	if home, err := os.UserHomeDir(); err == nil {
		sceneDir = filepath.Join(home, "Downloads")
	}

	return Config{
		WorkDir:     ".",
		SceneDir:    sceneDir,
		SceneParam:  "scene.asset_path",
		MotionParam: "character.command_file",
		LayoutExts:  []string{".json"},
		MotionExts:  []string{".txt"},
		SceneExts:   []string{".usd", ".usda", ".usdc"},
	}
}
