// =============================================================================
// CSV/Excel Converter - Batch Orchestrator
// =============================================================================
//
// The Runner drives one batch run:
//   1. Validate the selection and destination (internal/validation)
//   2. Resolve the conversion parameters (internal/options)
//   3. Convert every matching file in selection order
//   4. Aggregate the results into a Report
//
// CANCELLATION:
//   The context is checked before each file and never during a conversion.
//   A cancelled run returns the results produced so far.
//
// CONCURRENCY:
//   Files are converted one at a time on the calling goroutine.
//
// =============================================================================

package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paluigi/csv2excel/internal/converter"
	"github.com/paluigi/csv2excel/internal/types"
	"github.com/paluigi/csv2excel/internal/validation"
	"github.com/paluigi/csv2excel/pkg/utils"
)

// FileConverter converts one file into a destination directory.
type FileConverter interface {
	Convert(sourcePath, destDir string) types.FileResult
}

// ConverterFactory builds the converter for a run's parameters.
type ConverterFactory func(params types.Parameters) FileConverter

// Progress is called after each file with its 1-based index.
type Progress func(index, total int, result types.FileResult)

// Runner runs batch conversions.
type Runner struct {
	// NewConverter builds the per-run converter.
	NewConverter ConverterFactory

	// Progress, when set, receives a call after every file.
	Progress Progress

	// SummaryLog writes a processing summary into the destination folder
	// after each run.
	SummaryLog bool

	logger converter.Logger
}

// NewRunner creates a Runner that converts with converter.New.
//
// PARAMETERS:
//   - opts: The workbook options passed to every converter.
//   - logger: The logger shared with the converters. Nil discards output.
func NewRunner(opts converter.Options, logger converter.Logger) *Runner {
	if logger == nil {
		logger = converter.NopLogger{}
	}
	return &Runner{
		NewConverter: func(params types.Parameters) FileConverter {
			return converter.New(params, opts, logger)
		},
		logger: logger,
	}
}

// Validate checks the state without converting anything.
//
// RETURNS:
//   - nil if the state can be run.
//   - *types.SelectionError, *types.DestinationError or
//     *types.ConfigurationError otherwise.
func (r *Runner) Validate(state *State) error {
	_, err := r.prepare(state)
	return err
}

// prepare validates the state and resolves its parameters.
func (r *Runner) prepare(state *State) (types.Parameters, error) {
	err := validation.Validate(validation.Input{
		Selected:    state.Selected(),
		Matching:    state.Files(),
		Destination: state.Destination(),
	})
	if err != nil {
		return types.Parameters{}, err
	}

	mode, _ := state.Mode()
	return state.reg.Resolve(mode.Label, state.Selection())
}

// Run validates the state and converts every matching file.
//
// RETURNS:
//   - The Report of the run. It is returned even when the run was cancelled.
//   - A validation error (*types.SelectionError, *types.DestinationError) or
//     a *types.ConfigurationError. No file is touched in that case.
func (r *Runner) Run(ctx context.Context, state *State) (*Report, error) {
	params, err := r.prepare(state)
	if err != nil {
		return nil, err
	}

	files := state.Files()
	mode, _ := state.Mode()

	report := &Report{
		RunID:      uuid.New().String(),
		Mode:       mode.Label,
		Parameters: params,
		Total:      len(files),
		StartTime:  time.Now(),
	}
	r.logger.Info("Run %s: converting %d files (%s) into %s", report.RunID, report.Total, mode.Label, state.Destination())

	conv := r.NewConverter(params)
	for i, path := range files {
		if ctx.Err() != nil {
			report.Cancelled = true
			r.logger.Warn("Run %s cancelled after %d of %d files", report.RunID, i, report.Total)
			break
		}

		result := conv.Convert(path, state.Destination())
		report.Results = append(report.Results, result)

		if r.Progress != nil {
			r.Progress(i+1, report.Total, result)
		}
	}

	report.EndTime = time.Now()
	r.logger.Info("Run %s finished: %d succeeded, %d failed", report.RunID, report.SucceededCount(), len(report.FailedFiles()))

	if r.SummaryLog {
		path, err := utils.WriteSummaryLog(report.Summary(), state.Destination())
		if err != nil {
			r.logger.Warn("Failed to write summary log: %v", err)
		} else {
			report.SummaryPath = path
			r.logger.Debug("Wrote summary log to: %s", path)
		}
	}

	return report, nil
}
