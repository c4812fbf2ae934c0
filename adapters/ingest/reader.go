// Package ingest reads tabular data files into columns the analysis layer
// can consume.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"scistat/domain/sample"
	"scistat/internal/errors"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a Table
func (r *DataReader) Read() (*Table, error) {
	log.Printf("[DataReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.New("FILE_NOT_FOUND", fmt.Sprintf("data file not found: %s", r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, errors.New("UNSUPPORTED_FILE", fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

func (r *DataReader) readCSV() (*Table, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV file")
	}
	return tableFromRows(rows)
}

func (r *DataReader) readExcel() (*Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) < 2 {
		return nil, errors.New("EMPTY_FILE", "data file needs a header row and at least one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &Table{headers: headers, cells: make([][]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		// Ragged rows are padded so every column indexes safely
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		t.cells = append(t.cells, cells)
	}

	log.Printf("[DataReader] loaded %d rows, %d columns", len(t.cells), len(headers))
	return t, nil
}

// Table is a parsed data file: a header row plus string cells
type Table struct {
	headers []string
	cells   [][]string
}

// Columns returns the header names in file order
func (t *Table) Columns() []string {
	cols := make([]string, len(t.headers))
	copy(cols, t.headers)
	return cols
}

// Rows returns the number of data rows
func (t *Table) Rows() int {
	return len(t.cells)
}

// column returns the raw string cells of the named column
func (t *Table) column(name string) ([]string, bool) {
	for i, h := range t.headers {
		if strings.EqualFold(h, name) {
			values := make([]string, len(t.cells))
			for j, row := range t.cells {
				values[j] = row[i]
			}
			return values, true
		}
	}
	return nil, false
}

// NumericColumn coerces the named column to floats, with NaN placeholders
// for unparseable cells
func (t *Table) NumericColumn(name string) ([]float64, error) {
	raw, ok := t.column(name)
	if !ok {
		return nil, errors.New("COLUMN_NOT_FOUND", fmt.Sprintf("column not found: %s", name))
	}
	return sample.Coerce(raw), nil
}

// StringColumn returns the raw cells of the named column
func (t *Table) StringColumn(name string) ([]string, error) {
	raw, ok := t.column(name)
	if !ok {
		return nil, errors.New("COLUMN_NOT_FOUND", fmt.Sprintf("column not found: %s", name))
	}
	return raw, nil
}

// IsNumeric reports whether at least half of the column's non-empty cells
// parse as numbers
func (t *Table) IsNumeric(name string) bool {
	raw, ok := t.column(name)
	if !ok {
		return false
	}
	parsed := sample.Coerce(raw)
	nonEmpty, numeric := 0, 0
	for i, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		nonEmpty++
		if parsed[i] == parsed[i] { // not NaN
			numeric++
		}
	}
	return nonEmpty > 0 && numeric*2 >= nonEmpty
}

// GroupBy splits the numeric valueColumn into a Group keyed by the values
// of labelColumn, preserving first-seen label order
func (t *Table) GroupBy(valueColumn, labelColumn string) (*sample.Group, error) {
	values, err := t.NumericColumn(valueColumn)
	if err != nil {
		return nil, err
	}
	labels, err := t.StringColumn(labelColumn)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	buckets := make(map[string][]float64)
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, seen := buckets[label]; !seen {
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], values[i])
	}

	return sample.GroupFromMap(buckets, order), nil
}

// Frequencies counts occurrences of each value in a categorical column,
// in first-seen order
func (t *Table) Frequencies(name string) ([]string, []int, error) {
	raw, err := t.StringColumn(name)
	if err != nil {
		return nil, nil, err
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, seen := counts[cell]; !seen {
			order = append(order, cell)
		}
		counts[cell]++
	}

	out := make([]int, len(order))
	for i, label := range order {
		out[i] = counts[label]
	}
	return order, out, nil
}
