// =============================================================================
// CSV/Excel Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It runs the conversion
// pipeline for a single file, from reading the source to writing the output.
//
// CONVERSION PIPELINE (csv -> workbook):
//   1. Check that the target workbook format can be written
//   2. Parse the delimited file with the resolved dialect and encoding
//   3. Convert data fields to numeric or text cells
//   4. Write the workbook atomically
//
// CONVERSION PIPELINE (workbook -> csv):
//   1. Read the first (or configured) sheet of the workbook
//   2. Apply the resolved decimal mark to numeric values
//   3. Write the delimited file atomically
//
// FAILURE ISOLATION:
//   Convert never panics on bad input and never returns an error directly.
//   Every failure is reported in the FileResult as a *types.ConversionError,
//   so one bad file cannot abort a batch.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"time"

	"github.com/paluigi/csv2excel/internal/csvparser"
	"github.com/paluigi/csv2excel/internal/types"
	"github.com/paluigi/csv2excel/internal/xlsxparser"
	"github.com/paluigi/csv2excel/pkg/utils"
)

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options contains the workbook settings that are not part of the resolved
// parameters.
type Options struct {
	// SheetName is the name of the sheet written to new workbooks.
	// Default: "Sheet1"
	SheetName string

	// SourceSheet is the sheet read from workbooks.
	// Empty selects the first sheet.
	SourceSheet string
}

// Converter converts single files with one set of resolved parameters.
// A Converter holds no per-file state and may be shared between goroutines.
type Converter struct {
	params   types.Parameters
	settings csvparser.Settings
	opts     Options
	logger   Logger
}

// Logger is an interface for logging.
// CUSTOMIZATION: Implement this interface with your preferred logging library
// (see internal/logging for the logrus adapter).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter instance.
//
// PARAMETERS:
//   - params: The resolved conversion parameters.
//   - opts: The workbook options.
//   - logger: The logger to use. Nil discards log output.
//
// RETURNS:
//   - A new Converter instance.
func New(params types.Parameters, opts Options, logger Logger) *Converter {
	if opts.SheetName == "" {
		opts.SheetName = xlsxparser.DefaultSheetName
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Converter{
		params:   params,
		settings: csvparser.SettingsFrom(params),
		opts:     opts,
		logger:   logger,
	}
}

// Parameters returns the parameters the converter was built with.
func (c *Converter) Parameters() types.Parameters {
	return c.params
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Convert converts one file into destDir.
//
// PARAMETERS:
//   - sourcePath: The file to convert.
//   - destDir: The directory receiving "<base name>.<target extension>".
//
// RETURNS:
//   - The FileResult. On failure Err is a *types.ConversionError naming the
//     stage (read or write) that failed.
func (c *Converter) Convert(sourcePath, destDir string) types.FileResult {
	startTime := time.Now()
	result := types.FileResult{SourcePath: sourcePath}
	outputPath := utils.OutputPath(destDir, sourcePath, c.params.TargetExt)

	c.logger.Info("Converting file: %s", sourcePath)

	var (
		rows, columns int
		stage         string
		err           error
	)
	switch c.params.OriginExt {
	case types.ExtCSV:
		rows, columns, stage, err = c.textToWorkbook(sourcePath, outputPath)
	case types.ExtXLSX, types.ExtXLS:
		rows, columns, stage, err = c.workbookToText(sourcePath, outputPath)
	default:
		stage = types.StageRead
		err = fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, c.params.OriginExt)
	}

	result.Stats.Duration = time.Since(startTime)
	if err != nil {
		result.Err = &types.ConversionError{Path: sourcePath, Stage: stage, Err: err}
		c.logger.Warn("Conversion failed: %v", result.Err)
		return result
	}

	result.Stats.Rows = rows
	result.Stats.Columns = columns
	result.OutputPath = outputPath
	result.Success = true
	c.logger.Info("Wrote output to: %s (%d rows, %d columns)", outputPath, result.Stats.Rows, result.Stats.Columns)
	return result
}

// Supported reports whether files can be converted from origin to target.
// Every conversion reads or writes delimited text on one side.
func Supported(origin, target string) error {
	switch {
	case origin == types.ExtCSV:
		return xlsxparser.CheckWritable(target)
	case target == types.ExtCSV && (origin == types.ExtXLSX || origin == types.ExtXLS):
		return nil
	default:
		return fmt.Errorf("%w: %s to %s", types.ErrUnsupportedFormat, origin, target)
	}
}

// =============================================================================
// PIPELINES
// =============================================================================

// textToWorkbook converts a delimited file into a workbook.
func (c *Converter) textToWorkbook(sourcePath, outputPath string) (rows, columns int, stage string, err error) {
	// The target format is checked first so unsupported conversions never
	// spend time parsing.
	if err := xlsxparser.CheckWritable(c.params.TargetExt); err != nil {
		return 0, 0, types.StageWrite, err
	}

	data, err := csvparser.Parse(sourcePath, c.settings)
	if err != nil {
		return 0, 0, types.StageRead, err
	}
	c.logger.Debug("Parsed %d rows and %d columns from %s", data.RowCount, data.ColumnCount, sourcePath)

	cells := make([][]interface{}, 0, data.RowCount+1)
	cells = append(cells, toWorkbookRow(data.Headers, c.params.Decimal, true))
	for _, record := range data.Rows {
		cells = append(cells, toWorkbookRow(record, c.params.Decimal, false))
	}

	err = utils.WriteAtomic(outputPath, func(w io.Writer) error {
		return xlsxparser.Write(w, c.opts.SheetName, cells)
	})
	if err != nil {
		return 0, 0, types.StageWrite, err
	}

	return len(cells), data.ColumnCount, "", nil
}

// workbookToText converts a workbook into a delimited file.
func (c *Converter) workbookToText(sourcePath, outputPath string) (rows, columns int, stage string, err error) {
	sheet, err := xlsxparser.Parse(sourcePath, c.opts.SourceSheet)
	if err != nil {
		return 0, 0, types.StageRead, err
	}
	c.logger.Debug("Read %d rows from sheet %q of %s", len(sheet.Rows), sheet.Name, sourcePath)

	records := toTextRows(sheet.Rows, c.params.Decimal)

	err = utils.WriteAtomic(outputPath, func(w io.Writer) error {
		return csvparser.Write(w, records, c.settings)
	})
	if err != nil {
		return 0, 0, types.StageWrite, err
	}

	return len(records), sheet.Width, "", nil
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(msg string, args ...interface{}) {}
func (NopLogger) Info(msg string, args ...interface{})  {}
func (NopLogger) Warn(msg string, args ...interface{})  {}
func (NopLogger) Error(msg string, args ...interface{}) {}
