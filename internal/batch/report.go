package batch

import (
	"time"

	"github.com/paluigi/csv2excel/internal/types"
	"github.com/paluigi/csv2excel/pkg/utils"
)

// Report is the outcome of one batch run.
type Report struct {
	RunID      string
	Mode       string
	Parameters types.Parameters

	// Results holds one entry per converted file, in selection order.
	Results []types.FileResult

	// Total is the number of files the run was started with.
	Total int

	// Cancelled is set when the run stopped before converting every file.
	Cancelled bool

	StartTime time.Time
	EndTime   time.Time

	// SummaryPath is the processing summary written for the run, if any.
	SummaryPath string
}

// Succeeded reports whether every recorded result succeeded.
func (r *Report) Succeeded() bool {
	for _, res := range r.Results {
		if !res.Success {
			return false
		}
	}
	return true
}

// SucceededCount returns the number of files converted successfully.
func (r *Report) SucceededCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}

// FailedFiles returns the source paths of the failed files in order.
func (r *Report) FailedFiles() []string {
	var failed []string
	for _, res := range r.Results {
		if !res.Success {
			failed = append(failed, res.SourcePath)
		}
	}
	return failed
}

// Message returns the result text shown to the user.
func (r *Report) Message() string {
	msg := SuccessMessage
	if !r.Succeeded() {
		msg = FailureMessage(r.FailedFiles())
	}
	if r.Cancelled {
		msg += "\n\n" + CancelledMessage(len(r.Results), r.Total)
	}
	return msg
}

// Summary converts the report for the processing summary log.
func (r *Report) Summary() utils.ProcessingSummary {
	summary := utils.ProcessingSummary{
		RunID:      r.RunID,
		Mode:       r.Mode,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		TotalFiles: r.Total,
		Cancelled:  r.Cancelled,
	}
	for _, res := range r.Results {
		if res.Success {
			summary.SuccessfulFiles++
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:   res.SourcePath,
				OutputFile:  res.OutputPath,
				Rows:        res.Stats.Rows,
				Columns:     res.Stats.Columns,
				ProcessTime: res.Stats.Duration,
			})
			continue
		}
		summary.FailedFiles++
		info := utils.FailedFileInfo{InputFile: res.SourcePath}
		if res.Err != nil {
			info.ErrorMessage = res.Err.Error()
		}
		summary.FailedFilesList = append(summary.FailedFilesList, info)
	}
	return summary
}
