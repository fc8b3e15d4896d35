// =============================================================================
// CSV/Excel Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV/Excel Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csv2excel convert       - Convert files between CSV and Excel workbooks
//   csv2excel options       - List the conversion modes and formatting options
//   csv2excel version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core conversion logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/paluigi/csv2excel/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
