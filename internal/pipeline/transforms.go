package pipeline

import (
	"math"
	"strings"
	"unicode"

	"goscrub/domain/cleaning"
	"goscrub/domain/dataset"
	"goscrub/internal/stats"
)

// applyRemoveDuplicates drops every row whose stable key matches an
// earlier row's, keeping the first occurrence in its original position.
func applyRemoveDuplicates(p *dataset.PreviewDataset) {
	columns := p.EffectiveColumns()
	seen := make(map[string]bool, len(p.Rows))
	kept := p.Rows[:0]
	for _, row := range p.Rows {
		key := dataset.StableKey(effectiveValues(row, columns))
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	p.Rows = kept
}

// applyFillMissing writes the strategy's fill value into missing cells.
// Mean and median are computed once from the column's current parseable
// values; cells already holding a value are untouched.
func applyFillMissing(p *dataset.PreviewDataset, act cleaning.FillMissing) {
	var fill dataset.Value
	switch act.Strategy {
	case cleaning.FillZero:
		fill = float64(0)
	case cleaning.FillMean:
		fill = stats.Mean(parseableValues(p, act.Col))
	case cleaning.FillMedian:
		fill = stats.Median(parseableValues(p, act.Col))
	case cleaning.FillCustom:
		trimmed := strings.TrimSpace(act.CustomValue)
		if f, ok := dataset.AsFloat(trimmed); ok {
			fill = f
		} else {
			fill = act.CustomValue
		}
	default:
		return
	}

	for _, row := range p.Rows {
		cell := row[act.Col]
		if dataset.IsDropped(cell.Value) || !dataset.IsMissing(cell.Value) {
			continue
		}
		setCell(row, act.Col, fill)
	}
}

// applyChangeType coerces every cell to the target type, falling back to
// nil where the value does not convert.
func applyChangeType(p *dataset.PreviewDataset, act cleaning.ChangeType) {
	for _, row := range p.Rows {
		cell := row[act.Col]
		if dataset.IsDropped(cell.Value) {
			continue
		}
		setCell(row, act.Col, convert(cell.Value, act.Target))
	}
}

func convert(v dataset.Value, target cleaning.TypeTarget) dataset.Value {
	switch target {
	case cleaning.TargetInteger:
		if f, ok := dataset.AsFloat(v); ok {
			return math.Trunc(f)
		}
		return nil
	case cleaning.TargetFloat:
		if f, ok := dataset.AsFloat(v); ok {
			return f
		}
		return nil
	case cleaning.TargetText:
		return dataset.AsString(v)
	case cleaning.TargetBoolean:
		switch strings.ToLower(strings.TrimSpace(dataset.AsString(v))) {
		case "true", "1", "yes", "y":
			return true
		default:
			return false
		}
	case cleaning.TargetDate:
		if t, ok := dataset.AsTime(v); ok {
			return t
		}
		return nil
	default:
		return v
	}
}

// applyDropColumn marks every cell of the column as removed. The column
// stays in the row maps so positions are stable; effective column lists
// and exports skip it.
func applyDropColumn(p *dataset.PreviewDataset, act cleaning.DropColumn) {
	for _, row := range p.Rows {
		if _, present := row[act.Col]; !present {
			continue
		}
		row[act.Col] = dataset.PreviewCell{Value: dataset.Dropped, Changed: true}
	}
}

// textTransform maps a string cell to its transformed value
type textTransform func(string) string

func trimTransform(s string) string  { return strings.TrimSpace(s) }
func lowerTransform(s string) string { return strings.ToLower(s) }
func upperTransform(s string) string { return strings.ToUpper(s) }

// stripTransform keeps letters, digits, and spaces, including characters
// outside ASCII.
func stripTransform(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return -1
	}, s)
}

func capitalizeTransform(s string) string {
	fields := strings.Split(s, " ")
	for i, word := range fields {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

// applyTextTransform applies fn to string cells. Missing and non-string
// cells are untouched; a fixed point leaves the changed flag alone.
func applyTextTransform(p *dataset.PreviewDataset, column string, fn textTransform) {
	for _, row := range p.Rows {
		cell := row[column]
		s, ok := cell.Value.(string)
		if !ok || dataset.IsMissing(cell.Value) {
			continue
		}
		setCell(row, column, fn(s))
	}
}

// applyReplaceSubstring performs a literal replace-all within the column.
// An empty find text is a no-op; the queue's validation prevents it but
// the executor still refuses to replace-all on nothing.
func applyReplaceSubstring(p *dataset.PreviewDataset, act cleaning.ReplaceSubstring) {
	if act.Find == "" {
		return
	}
	for _, row := range p.Rows {
		cell := row[act.Col]
		s, ok := cell.Value.(string)
		if !ok || dataset.IsMissing(cell.Value) {
			continue
		}
		setCell(row, act.Col, strings.ReplaceAll(s, act.Find, act.Replace))
	}
}

// applyExtractDatePart replaces parseable date cells with one calendar
// component. Cells that do not parse as dates are left untouched.
func applyExtractDatePart(p *dataset.PreviewDataset, act cleaning.ExtractDatePart) {
	for _, row := range p.Rows {
		cell := row[act.Col]
		if dataset.IsDropped(cell.Value) || dataset.IsMissing(cell.Value) {
			continue
		}
		t, ok := dataset.AsTime(cell.Value)
		if !ok {
			continue
		}
		switch act.Part {
		case cleaning.PartYear:
			setCell(row, act.Col, float64(t.Year()))
		case cleaning.PartMonth:
			// 1-indexed month
			setCell(row, act.Col, float64(int(t.Month())))
		case cleaning.PartDay:
			setCell(row, act.Col, float64(t.Day()))
		case cleaning.PartWeekday:
			setCell(row, act.Col, t.Weekday().String())
		}
	}
}

// applyRoundNumbers rounds parseable numeric cells to the configured
// decimal places. Non-finite and non-numeric values are untouched.
func applyRoundNumbers(p *dataset.PreviewDataset, act cleaning.RoundNumbers) {
	factor := math.Pow(10, float64(act.Places))
	for _, row := range p.Rows {
		cell := row[act.Col]
		if dataset.IsMissing(cell.Value) || dataset.IsDropped(cell.Value) {
			continue
		}
		f, ok := dataset.AsFloat(cell.Value)
		if !ok {
			continue
		}
		setCell(row, act.Col, math.Round(f*factor)/factor)
	}
}

// applyScaleMinMax normalizes the column's parseable values into
// [act.Min, act.Max]. The source range is the column's current finite
// values across the whole preview at the time this action runs, which is
// why chaining two scales on one column is unsound and blocked upstream.
// A degenerate column (min == max) maps every finite value to act.Min.
func applyScaleMinMax(p *dataset.PreviewDataset, act cleaning.ScaleMinMax) {
	values := parseableValues(p, act.Col)
	if len(values) == 0 {
		return
	}
	min, max := stats.MinMax(values)

	for _, row := range p.Rows {
		cell := row[act.Col]
		if dataset.IsMissing(cell.Value) || dataset.IsDropped(cell.Value) {
			continue
		}
		f, ok := dataset.AsFloat(cell.Value)
		if !ok {
			continue
		}
		if min == max {
			setCell(row, act.Col, act.Min)
			continue
		}
		scaled := act.Min + (f-min)/(max-min)*(act.Max-act.Min)
		setCell(row, act.Col, scaled)
	}
}

// parseableValues returns the column's current finite numeric values
func parseableValues(p *dataset.PreviewDataset, column string) []float64 {
	var values []float64
	for _, row := range p.Rows {
		cell := row[column]
		if dataset.IsDropped(cell.Value) {
			continue
		}
		if f, ok := dataset.AsFloat(cell.Value); ok {
			values = append(values, f)
		}
	}
	return values
}
