// Package profile computes per-column descriptive statistics and pairwise
// relationship metrics over a dataset. All computation is read-only; the
// report never feeds back into the dataset it describes.
package profile

import (
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"goscrub/domain/dataset"
	"goscrub/internal/stats"
)

// Config holds profiler tuning knobs
type Config struct {
	// ZScoreThreshold flags values whose |z| exceeds it as outliers.
	ZScoreThreshold float64
	// TopK bounds the categorical frequency table.
	TopK int
}

// DefaultConfig returns the production profiler settings
func DefaultConfig() Config {
	return Config{ZScoreThreshold: 3.0, TopK: 10}
}

// Profiler computes profiling reports
type Profiler struct {
	config Config
}

// NewProfiler creates a profiler with the given config
func NewProfiler(config Config) *Profiler {
	if config.TopK <= 0 {
		config.TopK = DefaultConfig().TopK
	}
	if config.ZScoreThreshold <= 0 {
		config.ZScoreThreshold = DefaultConfig().ZScoreThreshold
	}
	return &Profiler{config: config}
}

// NewDefaultProfiler creates a profiler with production settings
func NewDefaultProfiler() *Profiler {
	return NewProfiler(DefaultConfig())
}

// Profile computes a full report for the dataset. Columns are profiled
// concurrently; pairwise metrics run after every column profile is in.
func (p *Profiler) Profile(d *dataset.Dataset) *Report {
	report := &Report{
		DatasetID:   d.ID.String(),
		Columns:     make([]ColumnProfile, len(d.Columns)),
		GeneratedAt: time.Now(),
	}

	var g errgroup.Group
	for i, col := range d.Columns {
		i, col := i, col
		g.Go(func() error {
			report.Columns[i] = p.ProfileColumn(col, d.ColumnValues(col.Name))
			return nil
		})
	}
	g.Wait() //nolint:errcheck // column profiling is total

	report.Correlations = p.correlations(d)
	report.Associations = p.associations(d)
	report.Quality = p.quality(d)
	return report
}

// ProfileColumn profiles a single column according to its inferred type
func (p *Profiler) ProfileColumn(col dataset.Column, values []dataset.Value) ColumnProfile {
	cp := ColumnProfile{Name: col.Name, Type: string(col.Type)}
	for _, v := range values {
		if dataset.IsMissing(v) {
			cp.Missing++
		}
	}

	switch col.Type {
	case dataset.TypeNumeric:
		cp.Numeric = p.numericProfile(values)
	case dataset.TypeDate:
		cp.Datetime = p.datetimeProfile(values)
	default:
		cp.Categorical = p.categoricalProfile(values)
	}
	return cp
}

func (p *Profiler) numericProfile(values []dataset.Value) *NumericProfile {
	data := numericSeries(values)
	min, max := stats.MinMax(data)
	zOutliers := stats.ZScoreOutliers(data, p.config.ZScoreThreshold)
	iqrOutliers, fences := stats.IQROutliers(data)

	return &NumericProfile{
		Count:          len(data),
		Mean:           stats.Mean(data),
		Median:         stats.Median(data),
		Mode:           stats.Mode(data),
		StdDev:         stats.StdDev(data),
		Variance:       stats.Variance(data),
		Min:            min,
		Max:            max,
		Range:          max - min,
		Skewness:       stats.Skewness(data),
		KurtosisExcess: stats.KurtosisExcess(data),
		ZScoreOutliers: len(zOutliers),
		IQROutliers:    len(iqrOutliers),
		Fences:         fences,
	}
}

func (p *Profiler) categoricalProfile(values []dataset.Value) *CategoricalProfile {
	series := stringSeries(values)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range series {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]FrequencyEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, FrequencyEntry{Value: v, Count: counts[v]})
	}
	// Count descending, first-seen order breaking ties
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	cp := &CategoricalProfile{
		Count:       len(series),
		UniqueCount: len(entries),
		EntropyBits: stats.Entropy(series),
	}
	if len(entries) > 0 {
		cp.MostFrequent = entries[0].Value
		cp.LeastFrequent = entries[len(entries)-1].Value
	}
	top := entries
	if len(top) > p.config.TopK {
		top = top[:p.config.TopK]
	}
	cp.TopValues = top
	return cp
}

func (p *Profiler) datetimeProfile(values []dataset.Value) *DatetimeProfile {
	var times []time.Time
	for _, v := range values {
		if t, ok := dataset.AsTime(v); ok {
			times = append(times, t)
		}
	}
	dp := &DatetimeProfile{Count: len(times)}
	if len(times) == 0 {
		return dp
	}

	min, max := times[0], times[0]
	monthCounts := make(map[time.Month]int)
	weekdayCounts := make(map[time.Weekday]int)
	for _, t := range times {
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
		monthCounts[t.Month()]++
		weekdayCounts[t.Weekday()]++
	}

	dp.Min = min
	dp.Max = max
	dp.SpanDays = int(max.Sub(min).Hours() / 24)
	dp.CommonMonth = commonMonth(monthCounts).String()
	dp.CommonWeekday = commonWeekday(weekdayCounts).String()
	return dp
}

// correlations computes Pearson r for every numeric column pair
func (p *Profiler) correlations(d *dataset.Dataset) []CorrelationEntry {
	var numeric []string
	for _, c := range d.Columns {
		if c.Type == dataset.TypeNumeric {
			numeric = append(numeric, c.Name)
		}
	}

	var entries []CorrelationEntry
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			x := alignedSeries(d, numeric[i])
			y := alignedSeries(d, numeric[j])
			entries = append(entries, CorrelationEntry{
				X: numeric[i],
				Y: numeric[j],
				R: stats.Pearson(x, y),
			})
		}
	}
	return entries
}

// associations computes chi-square for every categorical column pair
func (p *Profiler) associations(d *dataset.Dataset) []AssociationEntry {
	var categorical []string
	for _, c := range d.Columns {
		if c.Type == dataset.TypeCategorical {
			categorical = append(categorical, c.Name)
		}
	}

	var entries []AssociationEntry
	for i := 0; i < len(categorical); i++ {
		for j := i + 1; j < len(categorical); j++ {
			x := stringColumn(d, categorical[i])
			y := stringColumn(d, categorical[j])
			cs := stats.ChiSquareStat(stats.BuildContingency(x, y))
			entries = append(entries, AssociationEntry{
				X:    categorical[i],
				Y:    categorical[j],
				Chi2: cs.Stat,
				DF:   cs.DF,
				P:    stats.ChiSquareP(cs),
			})
		}
	}
	return entries
}

func (p *Profiler) quality(d *dataset.Dataset) Quality {
	q := Quality{
		RowCount:     len(d.Rows),
		ColumnCount:  len(d.Columns),
		MissingCells: d.MissingCells(),
	}
	totalCells := q.RowCount * q.ColumnCount
	if totalCells > 0 {
		q.MissingRatio = float64(q.MissingCells) / float64(totalCells)
	}

	seen := make(map[string]bool, len(d.Rows))
	for _, row := range d.Rows {
		key := dataset.StableKey(row)
		if seen[key] {
			q.DuplicateRows++
		}
		seen[key] = true
	}
	return q
}

// numericSeries extracts the finite numeric values of a column
func numericSeries(values []dataset.Value) []float64 {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := dataset.AsFloat(v); ok {
			data = append(data, f)
		}
	}
	return data
}

// alignedSeries keeps row alignment, substituting NaN for unparseable
// cells so pairwise functions can filter by index.
func alignedSeries(d *dataset.Dataset, name string) []float64 {
	data := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		if f, ok := dataset.AsFloat(row[name]); ok {
			data[i] = f
		} else {
			data[i] = math.NaN()
		}
	}
	return data
}

func stringSeries(values []dataset.Value) []string {
	series := make([]string, 0, len(values))
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		series = append(series, dataset.AsString(v))
	}
	return series
}

func stringColumn(d *dataset.Dataset, name string) []string {
	series := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		if dataset.IsMissing(row[name]) {
			continue
		}
		series[i] = dataset.AsString(row[name])
	}
	return series
}

func commonMonth(counts map[time.Month]int) time.Month {
	best, bestCount := time.January, -1
	for m := time.January; m <= time.December; m++ {
		if counts[m] > bestCount {
			best, bestCount = m, counts[m]
		}
	}
	return best
}

func commonWeekday(counts map[time.Weekday]int) time.Weekday {
	best, bestCount := time.Sunday, -1
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}
