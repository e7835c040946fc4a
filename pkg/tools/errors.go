package tools

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool indicates the tool name is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrToolNotInitialized indicates no handler is bound for the tool's
	// category.
	ErrToolNotInitialized = errors.New("tool handler not initialized")

	// ErrPermissionDenied indicates the agent or its department is not
	// allowed to call the tool, or a parameter cap was exceeded.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPreconditionFailed indicates a tool-specific precondition was not
	// met (e.g. meeting.present outside an active meeting).
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrHandlerFailure wraps an error returned by the tool handler itself.
	ErrHandlerFailure = errors.New("tool handler failure")
)

// ApprovalRequiredError is returned when the estimated cost exceeds the
// tool's approval threshold. It carries the approvers that must sign off.
type ApprovalRequiredError struct {
	Tool      string
	Cost      int
	Threshold int
	Approvers []string
}

func (e *ApprovalRequiredError) Error() string {
	return fmt.Sprintf("tool %s: cost %d exceeds approval threshold %d, approval required from %v",
		e.Tool, e.Cost, e.Threshold, e.Approvers)
}

// IsApprovalRequired reports whether err is an ApprovalRequiredError and
// returns it.
func IsApprovalRequired(err error) (*ApprovalRequiredError, bool) {
	var ar *ApprovalRequiredError
	if errors.As(err, &ar) {
		return ar, true
	}
	return nil, false
}
