// internal/importer/sheet.go
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet data row keyed by its header cells. Keys are the
// trimmed header strings exactly as they appeared; alias resolution happens
// later in the mapper.
type Row struct {
	// Line is the 1-based row number in the source file, header included,
	// so skip reports point at the row the staff member can see.
	Line  int
	Cells map[string]string
}

// ReadSheet parses a .csv or .xlsx file into ordered rows. For workbooks
// only the first sheet is read. Fully empty rows are dropped; everything
// else is kept for the mapper to judge.
func ReadSheet(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readCSV(f)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func readCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return rowsFromCells(records)
}

func readXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rowsFromCells(cells)
}

func rowsFromCells(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		cells := make(map[string]string, len(headers))
		for col, header := range headers {
			if header == "" {
				continue
			}
			if col < len(record) {
				cells[header] = record[col]
			}
		}
		rows = append(rows, Row{Line: i + 2, Cells: cells})
	}
	return rows, nil
}

func isEmptyRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
