// Package inference classifies dataset columns into numeric, categorical,
// date, or text from a bounded sample of their values.
package inference

import (
	"goscrub/domain/dataset"
)

// Config defines the inference thresholds and rules
type Config struct {
	// NumericThreshold is the fraction of non-missing values that must
	// parse to a finite number for a column to classify as numeric.
	NumericThreshold float64 `json:"numeric_threshold"`
	// MaxCategories is the distinct-value ceiling for categorical columns.
	MaxCategories int `json:"max_categories"`
	// CategoricalRatio is the distinct-to-total ceiling below which a
	// column still classifies as categorical.
	CategoricalRatio float64 `json:"categorical_ratio"`
	// SampleLimit bounds how many non-missing values per column are
	// examined.
	SampleLimit int `json:"sample_limit"`
}

// DefaultConfig returns the thresholds used in production
func DefaultConfig() Config {
	return Config{
		NumericThreshold: 0.8,
		MaxCategories:    50,
		CategoricalRatio: 0.2,
		SampleLimit:      50,
	}
}

// Engine infers column types. Classification order is numeric >
// categorical > date > text: the numeric parse rate is the strongest
// signal, the category and date heuristics progressively weaker, so ties
// and threshold edges favor the earlier type.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the given config
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// NewDefaultEngine creates an engine with production thresholds
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultConfig())
}

// InferColumn classifies one column from its values in row order. Parse
// checks run over the bounded sample; the distinct-value cardinality runs
// over every non-missing value, since a 50-value sample can never exceed
// the category ceiling on its own.
func (e *Engine) InferColumn(values []dataset.Value) dataset.ColumnType {
	nonMissing := make([]dataset.Value, 0, len(values))
	for _, v := range values {
		if !dataset.IsMissing(v) {
			nonMissing = append(nonMissing, v)
		}
	}
	if len(nonMissing) == 0 {
		return dataset.TypeText
	}
	sample := e.sample(nonMissing)

	numericCount := 0
	for _, v := range sample {
		if _, ok := dataset.AsFloat(v); ok {
			numericCount++
		}
	}
	if float64(numericCount)/float64(len(sample)) >= e.config.NumericThreshold {
		return dataset.TypeNumeric
	}

	distinct := make(map[string]struct{}, len(nonMissing))
	for _, v := range nonMissing {
		distinct[dataset.AsString(v)] = struct{}{}
	}
	ratio := float64(len(distinct)) / float64(len(nonMissing))
	if len(distinct) <= e.config.MaxCategories || ratio < e.config.CategoricalRatio {
		return dataset.TypeCategorical
	}

	for _, v := range sample {
		if _, ok := dataset.AsTime(v); ok {
			return dataset.TypeDate
		}
	}

	return dataset.TypeText
}

// InferDataset populates every column's Type in place and returns the
// columns for convenience.
func (e *Engine) InferDataset(d *dataset.Dataset) []dataset.Column {
	for i := range d.Columns {
		d.Columns[i].Type = e.InferColumn(d.ColumnValues(d.Columns[i].Name))
	}
	return d.Columns
}

// sample bounds the values used for parse checks to the first SampleLimit
func (e *Engine) sample(values []dataset.Value) []dataset.Value {
	limit := e.config.SampleLimit
	if limit <= 0 || limit > len(values) {
		return values
	}
	return values[:limit]
}
