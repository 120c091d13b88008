package pipeline

import "fmt"

// StageError names the stage a failure happened in. Every error leaving the
// sequencer is wrapped in one, so the operator always knows which manual
// step to redo before re-running.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
