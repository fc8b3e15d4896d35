// =============================================================================
// CSV/Excel Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - options    (parameter resolution)
//   - converter  (single file conversion)
//   - validation (selection checks)
//   - batch      (orchestration and reporting)
//
// =============================================================================

package types

import "time"

// =============================================================================
// OPTION CATEGORIES
// =============================================================================

// Category identifies one of the formatting option tables.
type Category string

const (
	// CategorySeparator is the field separator of the delimited text.
	CategorySeparator Category = "separator"

	// CategoryDecimal is the decimal mark used for numbers in delimited text.
	CategoryDecimal Category = "decimal"

	// CategoryQuoteChar is the character used to quote fields.
	CategoryQuoteChar Category = "quotechar"

	// CategoryEncoding is the text encoding of the delimited file.
	CategoryEncoding Category = "encoding"
)

// Categories lists the formatting categories in display order.
var Categories = []Category{
	CategorySeparator,
	CategoryDecimal,
	CategoryQuoteChar,
	CategoryEncoding,
}

// =============================================================================
// FILE FORMATS
// =============================================================================

// Supported file extensions (without the leading dot).
const (
	ExtCSV  = "csv"
	ExtXLSX = "xlsx"
	ExtXLS  = "xls"
)

// =============================================================================
// SELECTION AND PARAMETERS
// =============================================================================

// Selection holds the label chosen by the user for every formatting category.
// An empty label means "not chosen" and is replaced by the first option of
// the category when a selection is built from defaults.
type Selection struct {
	Separator string
	Decimal   string
	QuoteChar string
	Encoding  string
}

// Get returns the label selected for a category.
func (s Selection) Get(category Category) string {
	switch category {
	case CategorySeparator:
		return s.Separator
	case CategoryDecimal:
		return s.Decimal
	case CategoryQuoteChar:
		return s.QuoteChar
	case CategoryEncoding:
		return s.Encoding
	}
	return ""
}

// With returns a copy of the selection with one category changed.
func (s Selection) With(category Category, label string) Selection {
	switch category {
	case CategorySeparator:
		s.Separator = label
	case CategoryDecimal:
		s.Decimal = label
	case CategoryQuoteChar:
		s.QuoteChar = label
	case CategoryEncoding:
		s.Encoding = label
	}
	return s
}

// Parameters is the resolved configuration for one batch run.
// It is derived from the selected mode and labels and never persisted.
type Parameters struct {
	// OriginExt is the extension of the files being converted.
	OriginExt string

	// TargetExt is the extension of the files being produced.
	TargetExt string

	// Separator is the field separator symbol (e.g. "," or "\t").
	Separator string

	// Decimal is the decimal mark symbol ("." or ",").
	Decimal string

	// QuoteChar is the quoting character symbol ("'" or "\"").
	QuoteChar string

	// Encoding is the text encoding symbol (e.g. "utf-8", "latin_1").
	Encoding string
}

// =============================================================================
// CONVERSION RESULTS
// =============================================================================

// FileResult represents the outcome of converting a single file.
type FileResult struct {
	// SourcePath is the path to the file that was converted.
	SourcePath string

	// OutputPath is the path to the written file.
	// This is empty if the conversion failed.
	OutputPath string

	// Success indicates whether the conversion was successful.
	Success bool

	// Err explains the failure. It is a *ConversionError when set.
	Err error

	// Stats contains conversion statistics.
	Stats FileStats
}

// FileStats contains statistics about a single conversion.
type FileStats struct {
	// Rows is the number of records written, header included.
	Rows int

	// Columns is the width of the widest record.
	Columns int

	// Duration is the time taken to convert the file.
	Duration time.Duration
}
