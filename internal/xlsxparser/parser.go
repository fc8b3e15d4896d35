// =============================================================================
// CSV/Excel Converter - XLSX Workbook Parser
// =============================================================================
//
// This module is responsible for reading and writing spreadsheet workbooks.
// Office Open XML workbooks (.xlsx, .xlsm) are handled with excelize. Legacy
// BIFF workbooks (.xls, the OLE2 compound document format used up to Excel
// 2003) are read with extrame/xls; they cannot be written.
//
// READING:
//   The format is detected from the first bytes of the file, not from its
//   extension. The first sheet is read unless a sheet name is configured.
//   Every row is returned as text, padded to the width of the widest row.
//
// WRITING:
//   A single sheet is written with the stream writer, so memory usage stays
//   flat for large inputs. String values become text cells, float64 values
//   become numeric cells and nil leaves the cell empty.
//
// =============================================================================

package xlsxparser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/paluigi/csv2excel/internal/types"
)

// =============================================================================
// FORMAT DETECTION
// =============================================================================

var (
	// oleSignature starts every OLE2 compound document (legacy .xls).
	oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

	// zipSignature starts every Office Open XML package.
	zipSignature = []byte{'P', 'K', 0x03, 0x04}
)

// format identifies the container of a workbook file.
type format int

const (
	formatOpenXML format = iota + 1
	formatBIFF
)

// sniff checks the first bytes of a workbook. Files named .xls that are
// really Open XML packages are read as such.
func sniff(path string) (format, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(oleSignature))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, fmt.Errorf("failed to read workbook: %w", err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, oleSignature):
		return formatBIFF, nil
	case bytes.HasPrefix(head, zipSignature):
		return formatOpenXML, nil
	default:
		return 0, fmt.Errorf("not a spreadsheet workbook")
	}
}

// CheckWritable reports whether workbooks with the given extension can be
// produced.
func CheckWritable(ext string) error {
	switch ext {
	case types.ExtXLSX:
		return nil
	case types.ExtXLS:
		return fmt.Errorf("%w: writing legacy BIFF (.xls) workbooks", types.ErrUnsupportedFormat)
	default:
		return fmt.Errorf("%w: %q is not a workbook extension", types.ErrUnsupportedFormat, ext)
	}
}

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet represents the rows read from one worksheet.
type Sheet struct {
	// SourceFile is the path to the workbook.
	SourceFile string

	// Name is the name of the sheet that was read.
	Name string

	// Rows contains the formatted cell values, padded to Width.
	Rows [][]string

	// Width is the number of columns of the widest row.
	Width int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads one sheet of a workbook.
//
// PARAMETERS:
//   - path: The path to the workbook.
//   - sheetName: The sheet to read. Empty selects the first sheet.
//
// RETURNS:
//   - A pointer to the Sheet with every row padded to the same width.
//   - An error if the file is not a readable workbook or the sheet is missing.
func Parse(path, sheetName string) (*Sheet, error) {
	kind, err := sniff(path)
	if err != nil {
		return nil, err
	}
	if kind == formatBIFF {
		return parseBIFF(path, sheetName)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else {
		index, err := f.GetSheetIndex(sheetName)
		if err != nil {
			return nil, fmt.Errorf("invalid sheet name %q: %w", sheetName, err)
		}
		if index < 0 {
			return nil, fmt.Errorf("sheet %q not found", sheetName)
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	// GetRows drops trailing empty cells.
	return &Sheet{
		SourceFile: path,
		Name:       sheetName,
		Rows:       rows,
		Width:      rectangle(rows),
	}, nil
}

// rectangle pads every row to the width of the widest one and returns that
// width.
func rectangle(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return width
}
