package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyAssembly reports that a validated record assembled to empty text.
// An empty belief set is a hard failure, never a valid result.
var ErrEmptyAssembly = errors.New("assembled belief set is empty")

// EngineRejectedError reports that the reasoning engine refused the assembled
// belief set. The rejected text travels with the error to aid diagnosis.
type EngineRejectedError struct {
	Message   string
	BeliefSet string
}

func (e *EngineRejectedError) Error() string {
	return fmt.Sprintf("engine rejected belief set: %s\ncontent:\n%s", e.Message, e.BeliefSet)
}
