package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"
)

// Column maps an internal field name to a human-readable column title.
type Column struct {
	Field string
	Title string
}

// Formatter renders a stored field value to its display form.
type Formatter func(interface{}) string

// Mapping is an ordered field-to-title table plus optional per-field
// formatters. Fields without a formatter are rendered with a default
// representation.
type Mapping struct {
	Columns    []Column
	Formatters map[string]Formatter
}

// Titles returns the column titles in declaration order.
func (m Mapping) Titles() []string {
	titles := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		titles[i] = col.Title
	}
	return titles
}

// Render produces one output row from a record, applying formatters.
func (m Mapping) Render(record map[string]interface{}) []string {
	row := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		v := record[col.Field]
		if f, ok := m.Formatters[col.Field]; ok {
			row[i] = f(v)
			continue
		}
		row[i] = Format(v)
	}
	return row
}

// Format is the default rendering for values without a formatter.
func Format(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format("2006-01-02 15:04:05")
	case bool:
		if val {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, m Mapping, records []map[string]interface{}) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(m.Titles()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		if err := cw.Write(m.Render(record)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes records to a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, sheetName string, m Mapping, records []map[string]interface{}) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range m.Titles() {
		header.AddCell().Value = title
	}

	for _, record := range records {
		row := sheet.AddRow()
		for _, cell := range m.Render(record) {
			row.AddCell().Value = cell
		}
	}

	return file.Write(w)
}
