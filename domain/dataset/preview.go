package dataset

// PreviewCell is a cell value annotated with whether it differs from the
// original dataset's value at the same position.
type PreviewCell struct {
	Value   Value `json:"value"`
	Changed bool  `json:"changed"`
}

// PreviewRow maps column name to preview cell
type PreviewRow map[string]PreviewCell

// PreviewStats are aggregate statistics recomputed after a pipeline run
type PreviewStats struct {
	RowCount      int `json:"row_count"`
	MissingCells  int `json:"missing_cells"`
	DuplicateRows int `json:"duplicate_rows"`
}

// PreviewDataset is the ephemeral result of executing an action queue over
// a dataset. It is recomputed wholesale on every queue mutation and never
// partially updated in place.
type PreviewDataset struct {
	Columns []Column     `json:"columns"`
	Rows    []PreviewRow `json:"rows"`
	Stats   PreviewStats `json:"stats"`
}

// NewPreview wraps a dataset's rows as an unchanged preview
func NewPreview(d *Dataset) *PreviewDataset {
	columns := make([]Column, len(d.Columns))
	copy(columns, d.Columns)

	rows := make([]PreviewRow, len(d.Rows))
	for i, row := range d.Rows {
		pr := make(PreviewRow, len(columns))
		for _, c := range columns {
			pr[c.Name] = PreviewCell{Value: row[c.Name]}
		}
		rows[i] = pr
	}
	return &PreviewDataset{Columns: columns, Rows: rows}
}

// EffectiveColumns returns the columns that survive drops, in original
// order. A column is dropped when any row holds the dropped marker for it.
func (p *PreviewDataset) EffectiveColumns() []Column {
	surviving := make([]Column, 0, len(p.Columns))
	for _, c := range p.Columns {
		if !p.columnDropped(c.Name) {
			surviving = append(surviving, c)
		}
	}
	return surviving
}

func (p *PreviewDataset) columnDropped(name string) bool {
	for _, row := range p.Rows {
		if IsDropped(row[name].Value) {
			return true
		}
	}
	return false
}

// ColumnValues returns the column's current preview values in row order
func (p *PreviewDataset) ColumnValues(name string) []Value {
	values := make([]Value, len(p.Rows))
	for i, row := range p.Rows {
		values[i] = row[name].Value
	}
	return values
}

// ChangedCells counts cells whose value differs from the original
func (p *PreviewDataset) ChangedCells() int {
	count := 0
	for _, row := range p.Rows {
		for _, cell := range row {
			if cell.Changed {
				count++
			}
		}
	}
	return count
}
