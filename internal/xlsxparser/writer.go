package xlsxparser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet created by excelize.NewFile.
const DefaultSheetName = "Sheet1"

// Write produces an xlsx workbook with a single sheet.
//
// PARAMETERS:
//   - w: The destination writer.
//   - sheetName: The name of the sheet. Empty keeps "Sheet1".
//   - rows: The cell values; string, float64 or nil.
//
// RETURNS:
//   - An error if the sheet name is invalid or writing fails.
func Write(w io.Writer, sheetName string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return fmt.Errorf("invalid sheet name %q: %w", sheetName, err)
		}
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
