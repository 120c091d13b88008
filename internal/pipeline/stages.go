package pipeline

import (
	"fmt"

	"github.com/hitesh/warehouse-pipeline/internal/config"
	"github.com/hitesh/warehouse-pipeline/internal/invoker"
	"github.com/hitesh/warehouse-pipeline/internal/launchcfg"
)

// Stage names, in pipeline order.
const (
	StageGenerate  = "generate layout"
	StagePlace     = "place racks"
	StageNavmesh   = "author navmesh"
	StageConfigure = "configure launch"
	StageLaunch    = "launch simulation"
)

// BuildStages assembles the fixed five-stage sequence from the merged
// configuration:
//
//  1. run the layout generator, then pick up its layout and motion files
//  2. open the layout in the placement editor, then pick up the saved scene
//  3. reopen the scene for navmesh authoring, then pick up the updated scene
//  4. patch the launch configuration with the scene and motion paths
//  5. start the simulation runtime against the patched configuration
func (s *Sequencer) BuildStages(cfg *config.Config) []Stage {
	return []Stage{
		s.generateStage(cfg),
		s.placeStage(cfg),
		s.navmeshStage(cfg),
		s.configureStage(cfg),
		s.launchStage(cfg),
	}
}

func (s *Sequencer) generateStage(cfg *config.Config) Stage {
	mode := invoker.Batch
	if cfg.GeneratorInteractive {
		mode = invoker.Interactive
	}
	return Stage{
		Name: StageGenerate,
		Invoke: func(*Run) invoker.Invocation {
			return invoker.Invocation{
				Program: cfg.Generator.Program,
				Args:    cfg.Generator.Args,
				Dir:     cfg.WorkDir,
			}
		},
		Mode: mode,
		Post: func(run *Run, rec *StageRecord) error {
			layout, err := s.resolveArtifact("layout", cfg.WorkDir, cfg.LayoutExts, rec)
			if err != nil {
				return err
			}
			motion, err := s.resolveArtifact("motion", cfg.WorkDir, cfg.MotionExts, rec)
			if err != nil {
				return err
			}
			run.LayoutPath = layout.Path
			run.MotionPath = motion.Path
			return nil
		},
	}
}

func (s *Sequencer) placeStage(cfg *config.Config) Stage {
	return Stage{
		Name: StagePlace,
		Invoke: func(run *Run) invoker.Invocation {
			// The freshly generated layout is the editor's input.
			return invoker.Invocation{
				Program: cfg.Editor.Program,
				Args:    append(append([]string{}, cfg.Editor.Args...), run.LayoutPath),
				Dir:     cfg.WorkDir,
			}
		},
		Mode: invoker.Interactive,
		Post: func(run *Run, rec *StageRecord) error {
			scene, err := s.resolveArtifact("scene", cfg.SceneDir, cfg.SceneExts, rec)
			if err != nil {
				return err
			}
			run.ScenePath = scene.Path
			return nil
		},
	}
}

func (s *Sequencer) navmeshStage(cfg *config.Config) Stage {
	return Stage{
		Name: StageNavmesh,
		Invoke: func(run *Run) invoker.Invocation {
			return invoker.Invocation{
				Program: cfg.Simulator.Program,
				Args:    append(append([]string{}, cfg.Simulator.Args...), run.ScenePath),
				Dir:     cfg.WorkDir,
			}
		},
		Mode: invoker.Interactive,
		Post: func(run *Run, rec *StageRecord) error {
			// Usually the same file saved in place, but the operator may
			// have saved a copy; recency decides.
			scene, err := s.resolveArtifact("scene", cfg.SceneDir, cfg.SceneExts, rec)
			if err != nil {
				return err
			}
			run.ScenePath = scene.Path
			return nil
		},
	}
}

// configureStage has no external tool: it writes the resolved artifact paths
// into the launch configuration document and verifies the result.
func (s *Sequencer) configureStage(cfg *config.Config) Stage {
	return Stage{
		Name: StageConfigure,
		Post: func(run *Run, rec *StageRecord) error {
			edits := []launchcfg.Edit{
				{Param: cfg.SceneParam, Value: run.ScenePath},
				{Param: cfg.MotionParam, Value: run.MotionPath},
			}
			if err := launchcfg.Patch(cfg.LaunchConfig, edits); err != nil {
				return fmt.Errorf("patching %s: %w", cfg.LaunchConfig, err)
			}

			// Read the document back the way the launcher will.
			got, err := launchcfg.ReadParameter(cfg.LaunchConfig, cfg.SceneParam)
			if err != nil {
				return fmt.Errorf("verifying %s: %w", cfg.LaunchConfig, err)
			}
			if got != run.ScenePath {
				return fmt.Errorf("verifying %s: %s is %q after patch, want %q",
					cfg.LaunchConfig, cfg.SceneParam, got, run.ScenePath)
			}
			return nil
		},
	}
}

func (s *Sequencer) launchStage(cfg *config.Config) Stage {
	return Stage{
		Name: StageLaunch,
		Invoke: func(*Run) invoker.Invocation {
			return invoker.Invocation{
				Program: cfg.Launcher.Program,
				Args:    append(append([]string{}, cfg.Launcher.Args...), cfg.LaunchConfig),
				Dir:     cfg.WorkDir,
			}
		},
		Mode: invoker.Batch,
		// Terminal stage: no post-condition.
	}
}
