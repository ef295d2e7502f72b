// Package pipeline executes a cleaning action queue over a dataset,
// producing a change-annotated preview. Execution is a pure fold: the
// input dataset is never mutated, every call recomputes the whole preview
// from scratch, and no action may fail: unparseable or degenerate input
// degrades to a no-op or a defined fallback value.
package pipeline

import (
	"goscrub/domain/cleaning"
	"goscrub/domain/dataset"
)

// Executor runs action queues against dataset snapshots
type Executor struct{}

// NewExecutor creates a pipeline executor
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute folds the actions over the dataset's rows in queue order and
// returns the annotated preview. Action effects are order-dependent (a
// type change before a round changes the round's semantics), so callers
// must pass the queue in its current order.
func (e *Executor) Execute(d *dataset.Dataset, actions []cleaning.Action) *dataset.PreviewDataset {
	preview := dataset.NewPreview(d)

	for _, action := range actions {
		switch act := action.(type) {
		case cleaning.RemoveDuplicates:
			applyRemoveDuplicates(preview)
		case cleaning.FillMissing:
			applyFillMissing(preview, act)
		case cleaning.ChangeType:
			applyChangeType(preview, act)
		case cleaning.DropColumn:
			applyDropColumn(preview, act)
		case cleaning.TrimWhitespace:
			applyTextTransform(preview, act.Col, trimTransform)
		case cleaning.Lowercase:
			applyTextTransform(preview, act.Col, lowerTransform)
		case cleaning.Uppercase:
			applyTextTransform(preview, act.Col, upperTransform)
		case cleaning.StripNonAlnum:
			applyTextTransform(preview, act.Col, stripTransform)
		case cleaning.CapitalizeWords:
			applyTextTransform(preview, act.Col, capitalizeTransform)
		case cleaning.ReplaceSubstring:
			applyReplaceSubstring(preview, act)
		case cleaning.ExtractDatePart:
			applyExtractDatePart(preview, act)
		case cleaning.RoundNumbers:
			applyRoundNumbers(preview, act)
		case cleaning.ScaleMinMax:
			applyScaleMinMax(preview, act)
		}
	}

	preview.Stats = computeStats(preview)
	return preview
}

// setCell writes a new value into the preview cell, marking it changed
// only when the value actually differs. The changed flag accumulates: a
// later no-op never clears a flag set by an earlier action.
func setCell(row dataset.PreviewRow, column string, value dataset.Value) {
	cell := row[column]
	if dataset.Equal(cell.Value, value) {
		return
	}
	row[column] = dataset.PreviewCell{Value: value, Changed: true}
}

// effectiveValues extracts a row's surviving cell values for stable-key
// serialization. Dropped cells do not define row identity.
func effectiveValues(row dataset.PreviewRow, columns []dataset.Column) map[string]dataset.Value {
	values := make(map[string]dataset.Value, len(columns))
	for _, c := range columns {
		values[c.Name] = row[c.Name].Value
	}
	return values
}

// computeStats recomputes the aggregate preview statistics after the fold
func computeStats(p *dataset.PreviewDataset) dataset.PreviewStats {
	stats := dataset.PreviewStats{RowCount: len(p.Rows)}
	columns := p.EffectiveColumns()

	seen := make(map[string]bool, len(p.Rows))
	for _, row := range p.Rows {
		for _, c := range columns {
			if dataset.IsMissing(row[c.Name].Value) {
				stats.MissingCells++
			}
		}
		key := dataset.StableKey(effectiveValues(row, columns))
		if seen[key] {
			stats.DuplicateRows++
		}
		seen[key] = true
	}
	return stats
}
