// =============================================================================
// CSV/Excel Converter - Selection Validation
// =============================================================================
//
// This module validates a batch run before any file is touched.
//
// VALIDATION STRATEGY:
//   Checks run in a fixed order and the first failure wins:
//   1. At least one file is selected                   (error code 001)
//   2. At least one selected file matches the mode     (error code 002)
//   3. A destination folder is set                     (error code 003)
//
// ERROR HANDLING:
//   - Errors are typed (types.SelectionError, types.DestinationError)
//   - Each error carries the user-facing code through its Code method
//   - Callers turn codes into messages (see internal/batch/messages.go)
//
// =============================================================================

package validation

import (
	"strings"

	"github.com/paluigi/csv2excel/internal/types"
)

// Check is one validation step.
type Check func(in Input) error

// Input contains everything the checks look at.
type Input struct {
	// Selected is the raw selection, before mode filtering.
	Selected []string

	// Matching is the selection filtered by the mode's origin extension.
	Matching []string

	// Destination is the destination folder.
	Destination string
}

// checks is the ordered list of validation steps.
var checks = []Check{
	checkSelected,
	checkMatching,
	checkDestination,
}

// Validate runs every check in order and returns the first failure.
//
// PARAMETERS:
//   - in: The selection and destination of the run.
//
// RETURNS:
//   - nil if the run can start.
//   - *types.SelectionError or *types.DestinationError otherwise.
func Validate(in Input) error {
	for _, check := range checks {
		if err := check(in); err != nil {
			return err
		}
	}
	return nil
}

func checkSelected(in Input) error {
	if len(in.Selected) == 0 {
		return &types.SelectionError{Reason: types.NoFiles}
	}
	return nil
}

func checkMatching(in Input) error {
	if len(in.Matching) == 0 {
		return &types.SelectionError{Reason: types.ModeMismatch}
	}
	return nil
}

func checkDestination(in Input) error {
	if strings.TrimSpace(in.Destination) == "" {
		return &types.DestinationError{}
	}
	return nil
}
