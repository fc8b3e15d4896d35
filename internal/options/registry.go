// =============================================================================
// CSV/Excel Converter - Option Registry
// =============================================================================
//
// This module holds the fixed tables that map human-readable labels to the
// machine symbols used during conversion:
//   - Conversion modes   ("CSV to Excel (xlsx)" -> "csv-xlsx")
//   - Separators         ("Semicolon (;)"       -> ";")
//   - Decimal marks      ("Comma (,)"           -> ",")
//   - Quote characters   ("Double Quotes (\")"  -> "\"")
//   - Encodings          ("Latin"               -> "latin_1")
//
// The tables live in a Registry value built once at start-up and passed to
// the components that need it. The first entry of every table is its default.
//
// =============================================================================

package options

import (
	"strings"

	"github.com/paluigi/csv2excel/internal/types"
)

// CategoryMode is the pseudo-category used in errors for conversion modes.
const CategoryMode = "mode"

// Option is a single (label, symbol) pair of a formatting table.
type Option struct {
	Label  string
	Symbol string
}

// Mode is a conversion direction. Its symbol has the form "<origin>-<target>".
type Mode struct {
	Label  string
	Symbol string
}

// Origin returns the extension of the files the mode converts from.
func (m Mode) Origin() string {
	origin, _, _ := strings.Cut(m.Symbol, "-")
	return origin
}

// Target returns the extension of the files the mode converts to.
func (m Mode) Target() string {
	_, target, _ := strings.Cut(m.Symbol, "-")
	return target
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds every option table.
type Registry struct {
	modes  []Mode
	tables map[types.Category][]Option
}

// NewRegistry returns a registry populated with the standard tables.
//
// CUSTOMIZATION: Add entries here to offer additional separators or
// encodings. The encoding symbol must be known to the charset package.
func NewRegistry() *Registry {
	return &Registry{
		modes: []Mode{
			{Label: "CSV to Excel (xlsx)", Symbol: "csv-xlsx"},
			{Label: "CSV to Excel (xls)", Symbol: "csv-xls"},
			{Label: "Excel (xlsx) to CSV", Symbol: "xlsx-csv"},
			{Label: "Excel (xls) to CSV", Symbol: "xls-csv"},
		},
		tables: map[types.Category][]Option{
			types.CategorySeparator: {
				{Label: "Comma (,)", Symbol: ","},
				{Label: "Semicolon (;)", Symbol: ";"},
				{Label: "Pipe (|)", Symbol: "|"},
				{Label: "Tab (-->)", Symbol: "\t"},
			},
			types.CategoryDecimal: {
				{Label: "Period (.)", Symbol: "."},
				{Label: "Comma (,)", Symbol: ","},
			},
			types.CategoryQuoteChar: {
				{Label: "Single Quotes (')", Symbol: "'"},
				{Label: "Double Quotes (\")", Symbol: "\""},
			},
			types.CategoryEncoding: {
				{Label: "UTF-8", Symbol: "utf-8"},
				{Label: "UTF-16", Symbol: "utf-16"},
				{Label: "Latin", Symbol: "latin_1"},
				{Label: "ASCII", Symbol: "ascii"},
			},
		},
	}
}

// Modes returns the conversion modes in display order.
func (r *Registry) Modes() []Mode {
	return append([]Mode(nil), r.modes...)
}

// Options returns the entries of a formatting table in display order.
func (r *Registry) Options(category types.Category) []Option {
	return append([]Option(nil), r.tables[category]...)
}

// Mode looks up a conversion mode by label.
func (r *Registry) Mode(label string) (Mode, bool) {
	for _, m := range r.modes {
		if m.Label == label {
			return m, true
		}
	}
	return Mode{}, false
}

// Option looks up an entry of a formatting table by label.
func (r *Registry) Option(category types.Category, label string) (Option, bool) {
	for _, o := range r.tables[category] {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// Default returns the first entry of a formatting table.
func (r *Registry) Default(category types.Category) Option {
	table := r.tables[category]
	if len(table) == 0 {
		return Option{}
	}
	return table[0]
}

// Defaults returns a selection with the first entry of every table.
func (r *Registry) Defaults() types.Selection {
	var sel types.Selection
	for _, category := range types.Categories {
		sel = sel.With(category, r.Default(category).Label)
	}
	return sel
}

// Fill replaces empty labels of a selection with the table defaults.
func (r *Registry) Fill(sel types.Selection) types.Selection {
	for _, category := range types.Categories {
		if sel.Get(category) == "" {
			sel = sel.With(category, r.Default(category).Label)
		}
	}
	return sel
}

// =============================================================================
// LABEL NORMALIZATION
// =============================================================================
// The command line accepts either a label or a symbol. These helpers map
// both forms to the canonical label so the resolver only deals with labels.

// ModeLabel returns the label of the mode matching a label or a symbol.
// The first mode with a matching symbol wins.
func (r *Registry) ModeLabel(value string) (string, error) {
	for _, m := range r.modes {
		if m.Label == value {
			return m.Label, nil
		}
	}
	for _, m := range r.modes {
		if strings.EqualFold(m.Symbol, value) {
			return m.Label, nil
		}
	}
	return "", &types.ConfigurationError{Category: CategoryMode, Label: value}
}

// Label returns the label of the table entry matching a label or a symbol.
// "\t" and "tab" are accepted for the tab separator.
func (r *Registry) Label(category types.Category, value string) (string, error) {
	table := r.tables[category]
	for _, o := range table {
		if o.Label == value {
			return o.Label, nil
		}
	}

	symbol := value
	if category == types.CategorySeparator && (value == `\t` || strings.EqualFold(value, "tab")) {
		symbol = "\t"
	}
	for _, o := range table {
		if strings.EqualFold(o.Symbol, symbol) {
			return o.Label, nil
		}
	}
	return "", &types.ConfigurationError{Category: string(category), Label: value}
}
