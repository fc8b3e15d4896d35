package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paluigi/csv2excel/internal/options"
	"github.com/paluigi/csv2excel/internal/tui"
	"github.com/paluigi/csv2excel/internal/types"
)

// optionsCmd lists every option table.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the conversion modes and formatting options",
	Long: `List every conversion mode and formatting option with its symbol.
Either the label or the symbol can be passed to the convert flags.
The first entry of each table is the default.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := options.NewRegistry()
		out := cmd.OutOrStdout()

		rows := make([]tui.SummaryRow, 0, len(reg.Modes()))
		for _, m := range reg.Modes() {
			rows = append(rows, tui.SummaryRow{Label: m.Label, Value: m.Symbol})
		}
		fmt.Fprintln(out, "mode (--mode)")
		fmt.Fprintln(out, tui.RenderSummary(rows))

		for _, category := range types.Categories {
			rows = rows[:0]
			for _, o := range reg.Options(category) {
				rows = append(rows, tui.SummaryRow{Label: o.Label, Value: displaySymbol(o.Symbol)})
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s (--%s)\n", category, category)
			fmt.Fprintln(out, tui.RenderSummary(rows))
		}
	},
}

// displaySymbol quotes symbols that would be invisible on a terminal.
func displaySymbol(symbol string) string {
	if symbol == "\t" {
		return strconv.Quote(symbol)
	}
	return symbol
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
