// Package exporter writes generated series as a table: one time column
// followed by one column per series. A series sampled off the shared grid,
// such as an envelope, is preceded by its own <name>_t column.
//
// Files ending in .xlsx are written as a single-sheet workbook, anything else
// as CSV.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/synaptecltd/tsgen"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the table in xlsx output.
const SheetName = "series"

// offGrid reports whether s carries a time axis other than time.
func offGrid(time []float64, s tsgen.Series) bool {
	return s.Time != nil && !slices.Equal(s.Time, time)
}

// Headers returns the table header: "t", then for each series an optional
// <name>_t column and its name.
func Headers(time []float64, series []tsgen.Series) []string {
	headers := make([]string, 0, len(series)+1)
	headers = append(headers, "t")
	for _, s := range series {
		if offGrid(time, s) {
			headers = append(headers, s.Name+"_t")
		}
		headers = append(headers, s.Name)
	}
	return headers
}

// columns returns the table columns in the order of Headers.
func columns(time []float64, series []tsgen.Series) ([][]float64, error) {
	cols := [][]float64{time}
	for _, s := range series {
		if len(s.Values) != len(time) {
			return nil, fmt.Errorf("series %s has %d values for %d grid positions", s.Name, len(s.Values), len(time))
		}
		if offGrid(time, s) {
			if len(s.Time) != len(s.Values) {
				return nil, fmt.Errorf("series %s has %d times for %d values", s.Name, len(s.Time), len(s.Values))
			}
			cols = append(cols, s.Time)
		}
		cols = append(cols, s.Values)
	}
	return cols, nil
}

// WriteCSV writes the table to w. Values use the shortest representation
// that round-trips.
func WriteCSV(w io.Writer, time []float64, series []tsgen.Series) error {
	cols, err := columns(time, series)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Headers(time, series)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	record := make([]string, len(cols))
	for i := range time {
		for j, c := range cols {
			record[j] = FormatFloat(c[i])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX saves the table as a workbook at path.
func WriteXLSX(path string, time []float64, series []tsgen.Series) error {
	cols, err := columns(time, series)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := Headers(time, series)
	row := make([]interface{}, len(headers))
	for j, h := range headers {
		row[j] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return err
	}

	for i := range time {
		row := make([]interface{}, len(cols))
		for j, c := range cols {
			row[j] = c[i]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WriteFile picks the format from the extension of path.
func WriteFile(path string, time []float64, series []tsgen.Series) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteXLSX(path, time, series)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	if err := WriteCSV(file, time, series); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
