// Package ingest parses uploaded CSV and Excel files into datasets. It
// owns everything about the file format; the core only ever sees columns
// and rows.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"goscrub/domain/dataset"
	"goscrub/internal/inference"
)

// DataReader reads CSV and Excel files into datasets, infers column
// types, and coerces cell values to match.
type DataReader struct {
	inference *inference.Engine
	maxRows   int
}

// NewDataReader creates a reader. maxRows caps how many data rows are
// kept (0 means unlimited); very large uploads are truncated rather than
// rejected so the preview stays responsive.
func NewDataReader(engine *inference.Engine, maxRows int) *DataReader {
	return &DataReader{inference: engine, maxRows: maxRows}
}

// Read parses the named file content. The extension selects the format:
// .xlsx is read through excelize, anything else as CSV.
func (r *DataReader) Read(name string, reader io.Reader) (*dataset.Dataset, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		rows, err = r.readExcel(reader)
	} else {
		rows, err = r.readCSV(reader)
	}
	if err != nil {
		return nil, err
	}
	return r.buildDataset(name, rows)
}

// ReadFile parses a file from disk
func (r *DataReader) ReadFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return r.Read(filepath.Base(path), f)
}

func (r *DataReader) readCSV(reader io.Reader) ([][]string, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcel(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// buildDataset converts raw string rows into a typed dataset. The first
// row is the header; every data row gets an entry (possibly missing) for
// every header.
func (r *DataReader) buildDataset(name string, raw [][]string) (*dataset.Dataset, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}

	headers := make([]string, 0, len(raw[0]))
	for i, h := range raw[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		headers = append(headers, h)
	}

	columns := make([]dataset.Column, len(headers))
	for i, h := range headers {
		columns[i] = dataset.Column{Name: h}
	}

	data := raw[1:]
	if r.maxRows > 0 && len(data) > r.maxRows {
		data = data[:r.maxRows]
	}

	rows := make([]dataset.Row, len(data))
	for i, rawRow := range data {
		row := make(dataset.Row, len(headers))
		for j, h := range headers {
			if j < len(rawRow) {
				cell := strings.TrimSpace(rawRow[j])
				if cell == "" {
					row[h] = nil
				} else {
					row[h] = cell
				}
			} else {
				row[h] = nil
			}
		}
		rows[i] = row
	}

	d := dataset.New(strings.TrimSuffix(name, filepath.Ext(name)), columns, rows)
	r.inference.InferDataset(d)
	coerceValues(d)
	return d, nil
}

// coerceValues converts string cells to the column's inferred type so the
// profiler and pipeline work with typed values.
func coerceValues(d *dataset.Dataset) {
	for _, col := range d.Columns {
		switch col.Type {
		case dataset.TypeNumeric:
			for _, row := range d.Rows {
				if f, ok := dataset.AsFloat(row[col.Name]); ok {
					row[col.Name] = f
				}
			}
		case dataset.TypeDate:
			for _, row := range d.Rows {
				if t, ok := dataset.AsTime(row[col.Name]); ok {
					row[col.Name] = t
				}
			}
		}
	}
}
