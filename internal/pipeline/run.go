package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/hitesh/warehouse-pipeline/internal/artifact"
)

// State tracks where a run is in its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageRecord captures what one stage did: the tool's exit code and the
// artifacts its post-condition resolved.
type StageRecord struct {
	Name      string
	ExitCode  int
	Artifacts []artifact.Resolved
}

// Run is the context for one end-to-end pipeline execution. Each stage
// records its outputs here instead of threading them through process-wide
// state, and the named artifact slots are how one stage's output becomes the
// next stage's input.
type Run struct {
	ID        uuid.UUID
	StartedAt time.Time
	State     State
	Stages    []StageRecord

	// Active artifact per kind. At most one of each exists at any point in
	// the run; resolving again replaces, never merges.
	LayoutPath string // generator layout (.json)
	MotionPath string // generator motion script (.txt)
	ScenePath  string // editor/simulator scene (.usd family)

	// Err is set when State is StateFailed.
	Err error
}

// NewRun creates a fresh run context.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		State:     StateNotStarted,
	}
}
