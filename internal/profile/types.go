package profile

import (
	"time"

	"goscrub/internal/stats"
)

// NumericProfile contains descriptive statistics for a numeric column
type NumericProfile struct {
	Count          int             `json:"count"`
	Mean           float64         `json:"mean"`
	Median         float64         `json:"median"`
	Mode           float64         `json:"mode"`
	StdDev         float64         `json:"std_dev"`
	Variance       float64         `json:"variance"`
	Min            float64         `json:"min"`
	Max            float64         `json:"max"`
	Range          float64         `json:"range"`
	Skewness       float64         `json:"skewness"`
	KurtosisExcess float64         `json:"kurtosis_excess"`
	ZScoreOutliers int             `json:"zscore_outliers"`
	IQROutliers    int             `json:"iqr_outliers"`
	Fences         stats.IQRFences `json:"fences"`
}

// FrequencyEntry is one level of a categorical frequency table
type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalProfile contains frequency analysis for a categorical column
type CategoricalProfile struct {
	Count         int              `json:"count"`
	UniqueCount   int              `json:"unique_count"`
	TopValues     []FrequencyEntry `json:"top_values"`
	MostFrequent  string           `json:"most_frequent"`
	LeastFrequent string           `json:"least_frequent"`
	EntropyBits   float64          `json:"entropy_bits"`
}

// DatetimeProfile contains range analysis for a date column
type DatetimeProfile struct {
	Count         int       `json:"count"`
	Min           time.Time `json:"min"`
	Max           time.Time `json:"max"`
	SpanDays      int       `json:"span_days"`
	CommonMonth   string    `json:"common_month"`
	CommonWeekday string    `json:"common_weekday"`
}

// CorrelationEntry is the Pearson coefficient for one numeric column pair
type CorrelationEntry struct {
	X string  `json:"x"`
	Y string  `json:"y"`
	R float64 `json:"r"`
}

// AssociationEntry is the chi-square association for one categorical pair
type AssociationEntry struct {
	X    string  `json:"x"`
	Y    string  `json:"y"`
	Chi2 float64 `json:"chi2"`
	DF   int     `json:"df"`
	P    float64 `json:"p"`
}

// ColumnProfile wraps the per-type profile for one column. Exactly one of
// the pointers is set, matching the column's inferred type.
type ColumnProfile struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Missing     int                 `json:"missing"`
	Numeric     *NumericProfile     `json:"numeric,omitempty"`
	Categorical *CategoricalProfile `json:"categorical,omitempty"`
	Datetime    *DatetimeProfile    `json:"datetime,omitempty"`
}

// Quality summarizes dataset-level quality metrics
type Quality struct {
	RowCount      int     `json:"row_count"`
	ColumnCount   int     `json:"column_count"`
	MissingCells  int     `json:"missing_cells"`
	MissingRatio  float64 `json:"missing_ratio"`
	DuplicateRows int     `json:"duplicate_rows"`
}

// Report is the full profiling output for one dataset
type Report struct {
	DatasetID    string             `json:"dataset_id"`
	Columns      []ColumnProfile    `json:"columns"`
	Correlations []CorrelationEntry `json:"correlations"`
	Associations []AssociationEntry `json:"associations"`
	Quality      Quality            `json:"quality"`
	GeneratedAt  time.Time          `json:"generated_at"`
}
