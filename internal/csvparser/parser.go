// =============================================================================
// CSV/Excel Converter - CSV Parser Module
// =============================================================================
//
// This module is responsible for reading and writing delimited text files.
// It handles the formatting options offered to the user:
//   - Different delimiters (comma, semicolon, pipe, tab)
//   - Different quote characters (single or double quote)
//   - Different encodings (UTF-8, UTF-16, Latin-1, ASCII)
//
// The standard library reader only accepts '"' as quote character, so the
// records are tokenized here. Quoting follows RFC 4180 with the configured
// quote character: a quoted field may contain the delimiter, line breaks and
// doubled quote characters.
//
// =============================================================================

package csvparser

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/paluigi/csv2excel/internal/charset"
	"github.com/paluigi/csv2excel/internal/types"
)

// =============================================================================
// SETTINGS
// =============================================================================

// Settings contains the options for reading and writing delimited text.
type Settings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), ";" (semicolon), "|" (pipe), "\t" (tab)
	Delimiter string

	// QuoteChar is the character used to quote fields containing special
	// characters. Embedded quote characters are doubled.
	QuoteChar string

	// Encoding is the charset symbol of the file (see package charset).
	Encoding string

	// LineTerminator ends every written record.
	// Default: "\n"
	LineTerminator string
}

// SettingsFrom builds the settings for resolved conversion parameters.
func SettingsFrom(params types.Parameters) Settings {
	return Settings{
		Delimiter: params.Separator,
		QuoteChar: params.QuoteChar,
		Encoding:  params.Encoding,
	}
}

// dialect is the validated, rune-level form of Settings.
type dialect struct {
	comma rune
	quote rune
	eol   string
}

// configureDialect validates the settings and converts them to runes.
func configureDialect(settings Settings) (dialect, error) {
	d := dialect{eol: settings.LineTerminator}
	if d.eol == "" {
		d.eol = "\n"
	}

	// Set the delimiter.
	// Handle spelled-out names for the common delimiters.
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		d.comma = '\t'
	case "":
		d.comma = ','
	default:
		r, size := utf8.DecodeRuneInString(settings.Delimiter)
		if size != len(settings.Delimiter) {
			return d, fmt.Errorf("delimiter %q must be a single character", settings.Delimiter)
		}
		d.comma = r
	}

	// Set the quote character.
	switch settings.QuoteChar {
	case "":
		d.quote = '"'
	default:
		r, size := utf8.DecodeRuneInString(settings.QuoteChar)
		if size != len(settings.QuoteChar) {
			return d, fmt.Errorf("quote character %q must be a single character", settings.QuoteChar)
		}
		d.quote = r
	}

	if d.comma == d.quote {
		return d, fmt.Errorf("delimiter and quote character must differ")
	}
	if d.comma == '\r' || d.comma == '\n' || d.quote == '\r' || d.quote == '\n' {
		return d, fmt.Errorf("delimiter and quote character cannot be line breaks")
	}
	return d, nil
}

// =============================================================================
// PARSE ERRORS
// =============================================================================

var (
	// ErrQuote is returned for a quoted field that is never closed.
	ErrQuote = errors.New("unterminated quoted field")

	// ErrBareQuote is returned for text following a closing quote.
	ErrBareQuote = errors.New("unexpected text after closing quote")

	// ErrFieldCount is returned for a record wider than the header.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrEmpty is returned for a file without any record.
	ErrEmpty = errors.New("file is empty")
)

// ParseError reports the line on which a parse error occurred.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed delimited file.
type CSVData struct {
	// Headers contains the column headers (first record).
	Headers []string

	// Rows contains the data records, padded to the header width.
	Rows [][]string

	// SourceFile is the path to the source file.
	SourceFile string

	// RowCount is the total number of data rows (excluding headers).
	RowCount int

	// ColumnCount is the number of columns in the header.
	ColumnCount int
}

// Records returns the header followed by the data rows.
func (d *CSVData) Records() [][]string {
	records := make([][]string, 0, len(d.Rows)+1)
	records = append(records, d.Headers)
	return append(records, d.Rows...)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a delimited file and returns the parsed data.
//
// PARAMETERS:
//   - filePath: The path to the file.
//   - settings: The delimiter, quote character and encoding to use.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed data.
//   - An error if the file cannot be read, decoded or parsed.
//
// PARSING PROCESS:
//   1. Read the file and decode it to UTF-8
//   2. Split it into records honouring the quote character
//   3. Take the first record as header
//   4. Pad short records; reject records wider than the header
func Parse(filePath string, settings Settings) (*CSVData, error) {
	d, err := configureDialect(settings)
	if err != nil {
		return nil, err
	}

	cs, err := charset.Lookup(settings.Encoding)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	text, err := cs.Decode(raw)
	if err != nil {
		return nil, err
	}

	records, lines, err := tokenize(text, d)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for i, record := range records[1:] {
		switch {
		case len(record) > len(headers):
			return nil, &ParseError{
				Line: lines[i+1],
				Err:  fmt.Errorf("%w: expected %d, saw %d", ErrFieldCount, len(headers), len(record)),
			}
		case len(record) < len(headers):
			padded := make([]string, len(headers))
			copy(padded, record)
			record = padded
		}
		rows = append(rows, record)
	}

	return &CSVData{
		Headers:     headers,
		Rows:        rows,
		SourceFile:  filePath,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}, nil
}

// tokenize splits decoded text into records.
//
// RETURNS:
//   - The records, blank lines skipped.
//   - The 1-indexed line on which each record starts.
//   - A *ParseError for malformed quoting.
func tokenize(text string, d dialect) ([][]string, []int, error) {
	var (
		records    [][]string
		lines      []int
		record     []string
		field      strings.Builder
		line       = 1
		startLine  = 1
		inQuotes   bool
		afterQuote bool
		quoteLine  int
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
		afterQuote = false
	}

	endRecord := func() {
		blank := len(record) == 0 && field.Len() == 0 && !afterQuote
		endField()
		if !blank {
			records = append(records, record)
			lines = append(lines, startLine)
		}
		record = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if inQuotes {
			switch {
			case r == d.quote && i+1 < len(runes) && runes[i+1] == d.quote:
				field.WriteRune(r)
				i++
			case r == d.quote:
				inQuotes = false
				afterQuote = true
			default:
				if r == '\n' {
					line++
				}
				field.WriteRune(r)
			}
			continue
		}

		switch {
		case r == d.comma:
			endField()
		case r == '\r' || r == '\n':
			if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRecord()
			line++
			startLine = line
		case afterQuote:
			return nil, nil, &ParseError{Line: line, Err: ErrBareQuote}
		case r == d.quote && field.Len() == 0:
			inQuotes = true
			quoteLine = line
		default:
			field.WriteRune(r)
		}
	}

	if inQuotes {
		return nil, nil, &ParseError{Line: quoteLine, Err: ErrQuote}
	}
	if len(record) > 0 || field.Len() > 0 || afterQuote {
		endRecord()
	}

	return records, lines, nil
}
