package xlsxparser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// parseBIFF reads one sheet of a legacy .xls workbook.
//
// Number cells come back in their shortest decimal form ("2.5", "10").
// Rows the file does not store, such as blank lines between data, are
// returned empty.
func parseBIFF(path, sheetName string) (sheet *Sheet, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	// The reader indexes into the file without bounds checks.
	defer func() {
		if r := recover(); r != nil {
			sheet, err = nil, fmt.Errorf("malformed legacy workbook: %v", r)
		}
	}()

	book, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("not a spreadsheet workbook: no workbook stream")
	}
	if book.NumSheets() == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	ws, err := findBIFFSheet(book, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := biffRow(ws, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}

	// An empty sheet still reports row 0.
	if len(rows) == 1 && rows[0] == nil {
		rows = rows[:0]
	}

	return &Sheet{
		SourceFile: path,
		Name:       ws.Name,
		Rows:       rows,
		Width:      rectangle(rows),
	}, nil
}

func findBIFFSheet(book *xls.WorkBook, name string) (*xls.WorkSheet, error) {
	if name == "" {
		return book.GetSheet(0), nil
	}
	for i := 0; i < book.NumSheets(); i++ {
		if ws := book.GetSheet(i); ws != nil && ws.Name == name {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("sheet %q not found", name)
}

// biffRow returns nil for rows the sheet does not store.
func biffRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
