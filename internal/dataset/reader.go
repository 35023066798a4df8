package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one dataset row keyed by lower-case column name.
type Record map[string]string

// LoadFile reads a .csv or .xlsx dataset.
func LoadFile(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".csv", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	}
	return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
}

func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		records = append(records, toRecord(header, row))
	}
	return records, nil
}

// ReadXLSX reads the first sheet of a workbook. The first row is the header.
func ReadXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, toRecord(rows[0], row))
	}
	return records, nil
}

// WriteFile writes records to a .csv or .xlsx file chosen by extension.
func WriteFile(path string, columns []string, records []Record) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, columns, records)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create dataset %s: %w", path, err)
		}
		if err := WriteCSV(f, columns, records); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
}

// WriteXLSX writes records to the first sheet of a new workbook. Numeric
// cells are stored as numbers.
func WriteXLSX(path string, columns []string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	row := make([]any, len(columns))
	for i, r := range records {
		for j, c := range columns {
			if v, err := strconv.ParseFloat(r[c], 64); err == nil {
				row[j] = v
			} else {
				row[j] = r[c]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes records with the given column order.
func WriteCSV(w io.Writer, columns []string, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = r[c]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRecord(header, row []string) Record {
	r := make(Record, len(header))
	for i, h := range header {
		if i < len(row) {
			r[strings.ToLower(strings.TrimSpace(h))] = strings.TrimSpace(row[i])
		}
	}
	return r
}
