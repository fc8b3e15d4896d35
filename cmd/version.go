// =============================================================================
// CSV/Excel Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version, build information and the support contacts.
//
// COMMAND USAGE:
//   csv2excel version
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/paluigi/csv2excel/internal/batch"
)

// BuildDate is the date the application was built.
// Set at build time using ldflags:
//   go build -ldflags "-X 'github.com/paluigi/csv2excel/cmd.BuildDate=2024-01-01'"
var BuildDate = "unknown"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, Go runtime version and support contacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "CSV/Excel Converter")
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintln(out)
		fmt.Fprintln(out, batch.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
