package profile

import (
	"math"
	"testing"

	"goscrub/domain/dataset"
)

func buildDataset(columns []dataset.Column, rows []dataset.Row) *dataset.Dataset {
	return dataset.New("test", columns, rows)
}

func TestProfile_NumericColumn(t *testing.T) {
	cols := []dataset.Column{{Name: "v", Type: dataset.TypeNumeric}}
	rows := []dataset.Row{
		{"v": 1.0}, {"v": 2.0}, {"v": 3.0}, {"v": 4.0}, {"v": nil},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	if len(report.Columns) != 1 {
		t.Fatalf("columns = %d", len(report.Columns))
	}
	cp := report.Columns[0]
	if cp.Missing != 1 {
		t.Errorf("missing = %d, want 1", cp.Missing)
	}
	if cp.Numeric == nil {
		t.Fatal("numeric profile not set")
	}
	np := cp.Numeric
	if np.Count != 4 {
		t.Errorf("count = %d, want 4", np.Count)
	}
	if np.Mean != 2.5 || np.Median != 2.5 {
		t.Errorf("mean/median = %f/%f, want 2.5/2.5", np.Mean, np.Median)
	}
	if np.Min != 1 || np.Max != 4 || np.Range != 3 {
		t.Errorf("min/max/range = %f/%f/%f", np.Min, np.Max, np.Range)
	}
}

func TestProfile_CategoricalColumn(t *testing.T) {
	cols := []dataset.Column{{Name: "c", Type: dataset.TypeCategorical}}
	rows := []dataset.Row{
		{"c": "a"}, {"c": "b"}, {"c": "a"}, {"c": "a"}, {"c": "b"}, {"c": "c"},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	cp := report.Columns[0].Categorical
	if cp == nil {
		t.Fatal("categorical profile not set")
	}
	if cp.Count != 6 || cp.UniqueCount != 3 {
		t.Errorf("count/unique = %d/%d, want 6/3", cp.Count, cp.UniqueCount)
	}
	if cp.MostFrequent != "a" || cp.LeastFrequent != "c" {
		t.Errorf("most/least = %q/%q", cp.MostFrequent, cp.LeastFrequent)
	}
	if len(cp.TopValues) != 3 || cp.TopValues[0].Value != "a" || cp.TopValues[0].Count != 3 {
		t.Errorf("top values = %v", cp.TopValues)
	}
	if cp.EntropyBits <= 0 {
		t.Errorf("entropy = %f, want > 0", cp.EntropyBits)
	}
}

func TestProfile_FrequencyTiesKeepFirstSeen(t *testing.T) {
	cols := []dataset.Column{{Name: "c", Type: dataset.TypeCategorical}}
	rows := []dataset.Row{
		{"c": "x"}, {"c": "y"}, {"c": "x"}, {"c": "y"},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	cp := report.Columns[0].Categorical
	if cp.TopValues[0].Value != "x" {
		t.Errorf("tie broke against first-seen order: %v", cp.TopValues)
	}
}

func TestProfile_TopKBoundsFrequencyTable(t *testing.T) {
	cols := []dataset.Column{{Name: "c", Type: dataset.TypeCategorical}}
	var rows []dataset.Row
	for i := 0; i < 30; i++ {
		rows = append(rows, dataset.Row{"c": string(rune('a' + i%15))})
	}

	report := NewProfiler(Config{TopK: 5, ZScoreThreshold: 3}).Profile(buildDataset(cols, rows))

	cp := report.Columns[0].Categorical
	if len(cp.TopValues) != 5 {
		t.Errorf("top values = %d, want 5", len(cp.TopValues))
	}
	if cp.UniqueCount != 15 {
		t.Errorf("unique = %d, want 15", cp.UniqueCount)
	}
}

func TestProfile_DateColumn(t *testing.T) {
	cols := []dataset.Column{{Name: "d", Type: dataset.TypeDate}}
	rows := []dataset.Row{
		{"d": "2024-01-01"}, {"d": "2024-01-08"}, {"d": "2024-01-15"}, {"d": "garbage"},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	dp := report.Columns[0].Datetime
	if dp == nil {
		t.Fatal("datetime profile not set")
	}
	if dp.Count != 3 {
		t.Errorf("count = %d, want 3", dp.Count)
	}
	if dp.SpanDays != 14 {
		t.Errorf("span = %d days, want 14", dp.SpanDays)
	}
	// All three dates are Mondays in January
	if dp.CommonWeekday != "Monday" || dp.CommonMonth != "January" {
		t.Errorf("common weekday/month = %q/%q", dp.CommonWeekday, dp.CommonMonth)
	}
}

func TestProfile_Correlations(t *testing.T) {
	cols := []dataset.Column{
		{Name: "x", Type: dataset.TypeNumeric},
		{Name: "y", Type: dataset.TypeNumeric},
		{Name: "label", Type: dataset.TypeCategorical},
	}
	rows := []dataset.Row{
		{"x": 1.0, "y": 2.0, "label": "a"},
		{"x": 2.0, "y": 4.0, "label": "b"},
		{"x": 3.0, "y": 6.0, "label": "a"},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	if len(report.Correlations) != 1 {
		t.Fatalf("correlations = %d, want 1 pair", len(report.Correlations))
	}
	entry := report.Correlations[0]
	if entry.X != "x" || entry.Y != "y" {
		t.Errorf("pair = %s/%s", entry.X, entry.Y)
	}
	if math.Abs(entry.R-1) > 1e-9 {
		t.Errorf("r = %f, want 1", entry.R)
	}
}

func TestProfile_CorrelationSkipsUnparseableRows(t *testing.T) {
	cols := []dataset.Column{
		{Name: "x", Type: dataset.TypeNumeric},
		{Name: "y", Type: dataset.TypeNumeric},
	}
	rows := []dataset.Row{
		{"x": 1.0, "y": 2.0},
		{"x": nil, "y": 100.0},
		{"x": 2.0, "y": 4.0},
		{"x": 3.0, "y": 6.0},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	if r := report.Correlations[0].R; math.Abs(r-1) > 1e-9 {
		t.Errorf("r = %f, want 1 after skipping incomplete rows", r)
	}
}

func TestProfile_Associations(t *testing.T) {
	cols := []dataset.Column{
		{Name: "a", Type: dataset.TypeCategorical},
		{Name: "b", Type: dataset.TypeCategorical},
	}
	var rows []dataset.Row
	// a perfectly determines b
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			rows = append(rows, dataset.Row{"a": "left", "b": "up"})
		} else {
			rows = append(rows, dataset.Row{"a": "right", "b": "down"})
		}
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	if len(report.Associations) != 1 {
		t.Fatalf("associations = %d, want 1", len(report.Associations))
	}
	entry := report.Associations[0]
	if entry.DF != 1 {
		t.Errorf("df = %d, want 1", entry.DF)
	}
	if entry.Chi2 <= 0 {
		t.Errorf("chi2 = %f, want > 0", entry.Chi2)
	}
	if entry.P >= 0.01 {
		t.Errorf("p = %f, want < 0.01 for a perfect association", entry.P)
	}
}

func TestProfile_Quality(t *testing.T) {
	cols := []dataset.Column{
		{Name: "a", Type: dataset.TypeNumeric},
		{Name: "b", Type: dataset.TypeText},
	}
	rows := []dataset.Row{
		{"a": 1.0, "b": "x"},
		{"a": 1.0, "b": "x"},
		{"a": nil, "b": "y"},
		{"a": 2.0, "b": ""},
	}

	report := NewDefaultProfiler().Profile(buildDataset(cols, rows))

	q := report.Quality
	if q.RowCount != 4 || q.ColumnCount != 2 {
		t.Errorf("shape = %dx%d", q.RowCount, q.ColumnCount)
	}
	if q.MissingCells != 2 {
		t.Errorf("missing = %d, want 2", q.MissingCells)
	}
	if q.MissingRatio != 0.25 {
		t.Errorf("missing ratio = %f, want 0.25", q.MissingRatio)
	}
	if q.DuplicateRows != 1 {
		t.Errorf("duplicates = %d, want 1", q.DuplicateRows)
	}
}

func TestProfile_EmptyDataset(t *testing.T) {
	cols := []dataset.Column{{Name: "v", Type: dataset.TypeNumeric}}

	report := NewDefaultProfiler().Profile(buildDataset(cols, nil))

	np := report.Columns[0].Numeric
	if np == nil {
		t.Fatal("numeric profile not set")
	}
	if np.Count != 0 || np.Mean != 0 || np.StdDev != 0 {
		t.Errorf("empty column profile = %+v", np)
	}
	if report.Quality.MissingRatio != 0 {
		t.Errorf("missing ratio = %f, want 0", report.Quality.MissingRatio)
	}
}
