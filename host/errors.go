// errors.go defines the structured errors the host attaches attribution to:
// which extension failed, in which phase, at which pipeline stage. With many
// extensions activated, an error that doesn't name its owner is useless to
// the operator.

package host

import (
	"fmt"

	"github.com/fernholt/trellis/extension"
)

// ActivationError wraps any failure while activating an extension: unknown
// name, option resolution, or the factory itself.
type ActivationError struct {
	Extension string
	Err       error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("activate extension %q: %v", e.Extension, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }

// PhaseError reports a lifecycle handler failure. Dispatch is fail-fast:
// subscribers after the failing one were never notified.
type PhaseError struct {
	Phase     extension.Phase
	Extension string
	Err       error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s: extension %q: %v", e.Phase, e.Extension, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// PipelineStageError reports a transform stage failure. Stage is the 1-based
// position in activation order; stages after it never ran.
type PipelineStageError struct {
	Stage     int
	Extension string
	Err       error
}

func (e *PipelineStageError) Error() string {
	return fmt.Sprintf("pipeline stage %d (extension %q): %v", e.Stage, e.Extension, e.Err)
}

func (e *PipelineStageError) Unwrap() error { return e.Err }
