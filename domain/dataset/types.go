package dataset

import (
	"goscrub/domain/core"
)

// ColumnType classifies a column's inferred data type
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeDate        ColumnType = "date"
	TypeText        ColumnType = "text"
)

// Column describes a single column: its name, inferred type, and optional
// cached statistics populated by the profiler.
type Column struct {
	Name  string      `json:"name"`
	Type  ColumnType  `json:"type"`
	Stats interface{} `json:"stats,omitempty"`
}

// Row maps column name to cell value. Every row carries an entry (possibly
// missing) for every column present at dataset creation time.
type Row map[string]Value

// Dataset is an immutable snapshot of rectangular data. Column order and
// row order are both significant. A Dataset is created once per upload or
// apply event and never mutated in place; cleaning produces a preview that
// an explicit apply commits as a new Dataset.
type Dataset struct {
	ID        core.DatasetID `json:"id"`
	Name      string         `json:"name"`
	Columns   []Column       `json:"columns"`
	Rows      []Row          `json:"rows"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// New creates a dataset snapshot from columns and rows
func New(name string, columns []Column, rows []Row) *Dataset {
	return &Dataset{
		ID:        core.DatasetID(core.NewID()),
		Name:      name,
		Columns:   columns,
		Rows:      rows,
		CreatedAt: core.Now(),
	}
}

// ColumnNames returns column names in declared order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the descriptor for a named column
func (d *Dataset) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnValues returns the column's values in row order
func (d *Dataset) ColumnValues(name string) []Value {
	values := make([]Value, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values
}

// MissingCells counts missing cells across the whole dataset
func (d *Dataset) MissingCells() int {
	count := 0
	for _, row := range d.Rows {
		for _, c := range d.Columns {
			if IsMissing(row[c.Name]) {
				count++
			}
		}
	}
	return count
}
