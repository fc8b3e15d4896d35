// =============================================================================
// CSV/Excel Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which is the main command of the
// application. It builds the selection from flags, arguments and the
// configuration file, then hands it to the batch runner.
//
// COMMAND USAGE:
//   csv2excel convert [flags] <file-or-dir>...
//
// FLAGS:
//   -m, --mode       : Conversion mode label or symbol (e.g. "csv-xlsx")
//   -s, --separator  : Separator label or symbol
//       --decimal    : Decimal mark label or symbol
//   -q, --quotechar  : Quote character label or symbol
//   -e, --encoding   : Encoding label or symbol
//   -d, --dest       : Destination folder
//       --no-tui     : Plain progress bar instead of the interactive view
//
// PROCESSING PIPELINE:
//   1. Expand directories into files
//   2. Apply configuration defaults, then flags
//   3. Validate the selection (error codes 001-003)
//   4. Convert every matching file, showing progress
//   5. Print the summary and the result message
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/paluigi/csv2excel/internal/batch"
	"github.com/paluigi/csv2excel/internal/config"
	"github.com/paluigi/csv2excel/internal/converter"
	"github.com/paluigi/csv2excel/internal/logging"
	"github.com/paluigi/csv2excel/internal/options"
	"github.com/paluigi/csv2excel/internal/tui"
	"github.com/paluigi/csv2excel/internal/types"
	"github.com/paluigi/csv2excel/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	convertMode      string
	convertSeparator string
	convertDecimal   string
	convertQuoteChar string
	convertEncoding  string
	convertDest      string
	convertNoTUI     bool
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file-or-dir>...",
	Short: "Convert CSV files to Excel workbooks or back",
	Long: `The convert command converts every selected file whose extension matches
the origin of the conversion mode. Directories are searched recursively.

Every path given must exist; a missing one stops the command before any
file is converted. Symbolic links to files inside a directory are followed,
linked directories are not.

Each file is converted independently; a file that cannot be read or written
is reported at the end and does not stop the others. Output files are named
after their source with the target extension and replace existing files.

Legacy .xls workbooks can be read but not written, so "CSV to Excel (xls)"
is rejected when selected.

Run 'csv2excel options' for the accepted mode and option values.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	files, err := utils.DiscoverFiles(args)
	if err != nil {
		return err
	}

	state, err := buildState(cmd, appConfig, files)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(converter.Options{
		SheetName:   appConfig.SheetName,
		SourceSheet: appConfig.SourceSheet,
	}, logging.NewAdapter(logger, "converter"))
	runner.SummaryLog = appConfig.SummaryLog

	// Validation errors are shown before any progress output.
	if err := runner.Validate(state); err != nil {
		return showValidationError(errOut, err)
	}

	if display := state.DisplayFiles(); len(display) > 0 {
		fmt.Fprintln(out, "Selected files:")
		for _, line := range display {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := len(state.Files())
	var report *batch.Report

	if !convertNoTUI && !verbose && tui.Interactive(os.Stdout) {
		// Buffered to the file count so the runner never blocks on the view.
		updates := make(chan tui.Update, total)
		program := tea.NewProgram(tui.NewModel(total, updates, cancel))

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		runner.Progress = func(index, total int, result types.FileResult) {
			updates <- tui.Update{Index: index, Total: total, Path: result.SourcePath, Success: result.Success}
		}
		report, err = runner.Run(ctx, state)

		close(updates)
		<-uiDone
	} else {
		bar := tui.NewPlainProgress(errOut, total)
		runner.Progress = func(index, total int, result types.FileResult) {
			_ = bar.Add(tui.Update{Index: index, Total: total, Path: result.SourcePath, Success: result.Success})
		}
		report, err = runner.Run(ctx, state)
		if err == nil && !report.Cancelled {
			_ = bar.Finish()
		}
	}
	if err != nil {
		return err
	}

	printReport(out, report, state.Destination())

	if !report.Succeeded() || report.Cancelled {
		return &exitError{reason: "conversion incomplete"}
	}
	return nil
}

// buildState applies configuration defaults, then flags, to a new state.
func buildState(cmd *cobra.Command, cfg *config.Config, files []string) (*batch.State, error) {
	reg := options.NewRegistry()
	state := batch.NewState(reg, types.Selection{})

	flags := cmd.Flags()
	settings := []struct {
		category types.Category
		fromCfg  string
		flag     string
		value    string
	}{
		{types.CategorySeparator, cfg.Defaults.Separator, "separator", convertSeparator},
		{types.CategoryDecimal, cfg.Defaults.Decimal, "decimal", convertDecimal},
		{types.CategoryQuoteChar, cfg.Defaults.QuoteChar, "quotechar", convertQuoteChar},
		{types.CategoryEncoding, cfg.Defaults.Encoding, "encoding", convertEncoding},
	}
	for _, s := range settings {
		value := s.fromCfg
		if flags.Changed(s.flag) {
			value = s.value
		}
		if value == "" {
			continue
		}
		if err := state.SetOption(s.category, value); err != nil {
			return nil, err
		}
	}

	mode := cfg.Defaults.Mode
	if flags.Changed("mode") {
		mode = convertMode
	}
	if mode != "" {
		if err := state.SelectMode(mode); err != nil {
			return nil, err
		}
	}

	dest := cfg.DestinationDir
	if flags.Changed("dest") {
		dest = convertDest
	}
	state.SetDestination(dest)
	state.SelectFiles(files)

	return state, nil
}

// showValidationError prints a numbered validation message and ends the
// command with status 1.
func showValidationError(w io.Writer, err error) error {
	msg, ok := batch.ErrorMessage(err)
	if !ok {
		return err
	}
	fmt.Fprintln(w, tui.RenderMessage(batch.ErrorTitle, msg, true))
	return &exitError{reason: err.Error()}
}

// printReport prints the run summary and the result message.
func printReport(w io.Writer, report *batch.Report, dest string) {
	rows := []tui.SummaryRow{
		{Label: "Mode", Value: report.Mode},
		{Label: "Files converted", Value: strconv.Itoa(report.SucceededCount()), Count: true},
		{Label: "Files failed", Value: strconv.Itoa(len(report.FailedFiles())), Count: true},
		{Label: "Destination", Value: dest},
	}
	if report.SummaryPath != "" {
		rows = append(rows, tui.SummaryRow{Label: "Summary log", Value: report.SummaryPath})
	}
	fmt.Fprintln(w, tui.RenderSummary(rows))
	fmt.Fprintln(w, tui.RenderMessage(batch.ResultTitle, report.Message(), !report.Succeeded() || report.Cancelled))
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertMode, "mode", "m", "", `conversion mode label or symbol (e.g. "csv-xlsx")`)
	f.StringVarP(&convertSeparator, "separator", "s", "", "separator label or symbol (default: first option)")
	f.StringVar(&convertDecimal, "decimal", "", "decimal mark label or symbol (default: first option)")
	f.StringVarP(&convertQuoteChar, "quotechar", "q", "", "quote character label or symbol (default: first option)")
	f.StringVarP(&convertEncoding, "encoding", "e", "", "encoding label or symbol (default: first option)")
	f.StringVarP(&convertDest, "dest", "d", "", "destination folder")
	f.BoolVar(&convertNoTUI, "no-tui", false, "show a plain progress bar instead of the interactive view")

	rootCmd.AddCommand(convertCmd)
}
