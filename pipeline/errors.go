package pipeline

import "fmt"

// Stage identifies which part of the pipeline failed.
type Stage string

const (
	StageLoad     Stage = "load"
	StageAnalyze  Stage = "analyze"
	StageSequence Stage = "sequence"
	StageWrite    Stage = "write"
)

// StageError reports a failed pipeline stage. The wrapped error keeps
// the loader/writer sentinels reachable through errors.Is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageFailed(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
