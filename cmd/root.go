// =============================================================================
// CSV/Excel Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csv2excel)
//   ├── convertCmd (csv2excel convert)
//   ├── optionsCmd (csv2excel options)
//   └── versionCmd (csv2excel version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file and environment overrides
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paluigi/csv2excel/internal/config"
	"github.com/paluigi/csv2excel/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the loaded configuration, set before any subcommand runs.
var appConfig *config.Config

// logger is the application logger, set before any subcommand runs.
var logger *logrus.Logger

// closeLog releases the log file, if any.
var closeLog = func() error { return nil }

// exitError ends the process with status 1 after its message has already
// been shown to the user.
type exitError struct {
	reason string
}

func (e *exitError) Error() string {
	return e.reason
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csv2excel",
	Short: "CSV/Excel Converter - Batch convert delimited text files and Excel workbooks",
	Long: `CSV/Excel Converter converts batches of files between delimited text (CSV)
and Excel workbooks.

Key Features:
  - Four conversion modes: CSV to xlsx/xls and xlsx/xls to CSV
  - Configurable separator, decimal mark, quote character and encoding
  - Per-file failure isolation with a final report
  - Interactive progress view with cancellation

Example Usage:
  csv2excel convert -m csv-xlsx -d ./out ./exports   # Convert every CSV in ./exports
  csv2excel convert -m xlsx-csv -s ";" --decimal "," -d ./out book.xlsx
  csv2excel options                                   # List the available options`,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		l, closeFn, err := logging.New(logging.Options{
			Level:  level,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		})
		if err != nil {
			return err
		}

		appConfig = cfg
		logger = l
		closeLog = closeFn
		logger.WithField("config", cfgFile).Debug("Configuration loaded")
		return nil
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		closeLog()
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// The default file is optional; an explicit one must exist.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging (disables the progress view)",
	)
}
