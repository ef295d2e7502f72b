package pipeline

import (
	"testing"
	"time"

	"goscrub/domain/cleaning"
	"goscrub/domain/dataset"
)

func testDataset(columns []string, rows []dataset.Row) *dataset.Dataset {
	cols := make([]dataset.Column, len(columns))
	for i, name := range columns {
		cols[i] = dataset.Column{Name: name}
	}
	return dataset.New("test", cols, rows)
}

func cellValue(p *dataset.PreviewDataset, row int, column string) dataset.Value {
	return p.Rows[row][column].Value
}

func TestExecute_EmptyQueueIsIdentity(t *testing.T) {
	d := testDataset([]string{"a", "b"}, []dataset.Row{
		{"a": 1.0, "b": "x"},
		{"a": 2.0, "b": "y"},
	})

	p := NewExecutor().Execute(d, nil)

	if len(p.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(p.Rows))
	}
	if p.ChangedCells() != 0 {
		t.Errorf("changed cells = %d, want 0", p.ChangedCells())
	}
	if p.Stats.RowCount != 2 || p.Stats.MissingCells != 0 || p.Stats.DuplicateRows != 0 {
		t.Errorf("stats = %+v", p.Stats)
	}
}

func TestExecute_DoesNotMutateInput(t *testing.T) {
	d := testDataset([]string{"name"}, []dataset.Row{
		{"name": "  alice  "},
	})
	trim, _ := cleaning.NewTrimWhitespace("name")

	NewExecutor().Execute(d, []cleaning.Action{trim})

	if d.Rows[0]["name"] != "  alice  " {
		t.Errorf("input dataset mutated: %v", d.Rows[0]["name"])
	}
}

func TestExecute_Deterministic(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": "1"}, {"v": nil}, {"v": "3"},
	})
	fill, _ := cleaning.NewFillMissing("v", cleaning.FillMean, "")
	actions := []cleaning.Action{fill}

	first := NewExecutor().Execute(d, actions)
	second := NewExecutor().Execute(d, actions)

	for i := range first.Rows {
		if !dataset.Equal(cellValue(first, i, "v"), cellValue(second, i, "v")) {
			t.Errorf("row %d differs between runs", i)
		}
	}
}

func TestRemoveDuplicates_FirstSurvives(t *testing.T) {
	d := testDataset([]string{"a", "b"}, []dataset.Row{
		{"a": 1.0, "b": "x"},
		{"a": 2.0, "b": "y"},
		{"a": 1.0, "b": "x"},
	})

	p := NewExecutor().Execute(d, []cleaning.Action{cleaning.NewRemoveDuplicates()})

	if len(p.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(p.Rows))
	}
	if cellValue(p, 0, "b") != "x" || cellValue(p, 1, "b") != "y" {
		t.Errorf("wrong surviving rows: %v, %v", p.Rows[0], p.Rows[1])
	}
	if p.Stats.DuplicateRows != 0 {
		t.Errorf("duplicates after removal = %d, want 0", p.Stats.DuplicateRows)
	}
}

func TestFillMissing_Mean(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": 10.0}, {"v": nil}, {"v": 30.0},
	})
	fill, _ := cleaning.NewFillMissing("v", cleaning.FillMean, "")

	p := NewExecutor().Execute(d, []cleaning.Action{fill})

	if got := cellValue(p, 1, "v"); got != 20.0 {
		t.Errorf("filled value = %v, want 20", got)
	}
	if !p.Rows[1]["v"].Changed {
		t.Error("filled cell not marked changed")
	}
	if p.Rows[0]["v"].Changed || p.Rows[2]["v"].Changed {
		t.Error("untouched cells marked changed")
	}
	if p.Stats.MissingCells != 0 {
		t.Errorf("missing cells = %d, want 0", p.Stats.MissingCells)
	}
}

func TestFillMissing_Strategies(t *testing.T) {
	rows := []dataset.Row{
		{"v": 1.0}, {"v": 2.0}, {"v": 100.0}, {"v": nil},
	}

	cases := []struct {
		strategy cleaning.FillStrategy
		custom   string
		want     dataset.Value
	}{
		{cleaning.FillZero, "", float64(0)},
		{cleaning.FillMedian, "", 2.0},
		{cleaning.FillCustom, "7.5", 7.5},
		{cleaning.FillCustom, "n/a", "n/a"},
	}
	for _, tc := range cases {
		d := testDataset([]string{"v"}, rows)
		fill, err := cleaning.NewFillMissing("v", tc.strategy, tc.custom)
		if err != nil {
			t.Fatalf("NewFillMissing(%s): %v", tc.strategy, err)
		}
		p := NewExecutor().Execute(d, []cleaning.Action{fill})
		if got := cellValue(p, 3, "v"); !dataset.Equal(got, tc.want) {
			t.Errorf("%s fill = %v, want %v", tc.strategy, got, tc.want)
		}
	}
}

func TestFillMissing_MeanWithNoParseableValues(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": "abc"}, {"v": nil},
	})
	fill, _ := cleaning.NewFillMissing("v", cleaning.FillMean, "")

	p := NewExecutor().Execute(d, []cleaning.Action{fill})

	if got := cellValue(p, 1, "v"); got != float64(0) {
		t.Errorf("mean fallback = %v, want 0", got)
	}
}

func TestChangeType_Conversions(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": "3.7"}, {"v": "-2.1"}, {"v": "nope"},
	})
	change, _ := cleaning.NewChangeType("v", cleaning.TargetInteger)

	p := NewExecutor().Execute(d, []cleaning.Action{change})

	if got := cellValue(p, 0, "v"); got != 3.0 {
		t.Errorf("3.7 to integer = %v, want 3", got)
	}
	if got := cellValue(p, 1, "v"); got != -2.0 {
		t.Errorf("-2.1 to integer = %v, want -2", got)
	}
	if got := cellValue(p, 2, "v"); got != nil {
		t.Errorf("unconvertible cell = %v, want nil", got)
	}
	if !p.Rows[2]["v"].Changed {
		t.Error("nulled cell not marked changed")
	}
}

func TestChangeType_Boolean(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": "Yes"}, {"v": "1"}, {"v": "no"}, {"v": "TRUE"},
	})
	change, _ := cleaning.NewChangeType("v", cleaning.TargetBoolean)

	p := NewExecutor().Execute(d, []cleaning.Action{change})

	wants := []dataset.Value{true, true, false, true}
	for i, want := range wants {
		if got := cellValue(p, i, "v"); got != want {
			t.Errorf("row %d = %v, want %v", i, got, want)
		}
	}
}

func TestDropColumn_ExcludedFromStats(t *testing.T) {
	d := testDataset([]string{"keep", "drop"}, []dataset.Row{
		{"keep": 1.0, "drop": nil},
		{"keep": 2.0, "drop": nil},
	})
	drop, _ := cleaning.NewDropColumn("drop")

	p := NewExecutor().Execute(d, []cleaning.Action{drop})

	effective := p.EffectiveColumns()
	if len(effective) != 1 || effective[0].Name != "keep" {
		t.Fatalf("effective columns = %v", effective)
	}
	// The dropped column's missing cells no longer count
	if p.Stats.MissingCells != 0 {
		t.Errorf("missing cells = %d, want 0", p.Stats.MissingCells)
	}
	if !dataset.IsDropped(cellValue(p, 0, "drop")) {
		t.Error("dropped cell does not carry the dropped marker")
	}
}

func TestDropColumn_ChangesRowIdentity(t *testing.T) {
	// Rows identical except in the dropped column become duplicates
	d := testDataset([]string{"a", "b"}, []dataset.Row{
		{"a": 1.0, "b": "x"},
		{"a": 1.0, "b": "y"},
	})
	drop, _ := cleaning.NewDropColumn("b")

	p := NewExecutor().Execute(d, []cleaning.Action{drop})

	if p.Stats.DuplicateRows != 1 {
		t.Errorf("duplicates = %d, want 1", p.Stats.DuplicateRows)
	}
}

func TestTextTransforms(t *testing.T) {
	cases := []struct {
		name string
		make func() (cleaning.Action, error)
		in   dataset.Value
		want dataset.Value
	}{
		{"trim", func() (cleaning.Action, error) { return cleaning.NewTrimWhitespace("v") }, "  hi  ", "hi"},
		{"lower", func() (cleaning.Action, error) { return cleaning.NewLowercase("v") }, "HeLLo", "hello"},
		{"upper", func() (cleaning.Action, error) { return cleaning.NewUppercase("v") }, "hello", "HELLO"},
		{"strip", func() (cleaning.Action, error) { return cleaning.NewStripNonAlnum("v") }, "a-b_c 1!", "abc 1"},
		{"capitalize", func() (cleaning.Action, error) { return cleaning.NewCapitalizeWords("v") }, "hello wide world", "Hello Wide World"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := tc.make()
			if err != nil {
				t.Fatal(err)
			}
			d := testDataset([]string{"v"}, []dataset.Row{{"v": tc.in}})
			p := NewExecutor().Execute(d, []cleaning.Action{action})
			if got := cellValue(p, 0, "v"); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextTransform_NonStringUntouched(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{{"v": 42.0}})
	upper, _ := cleaning.NewUppercase("v")

	p := NewExecutor().Execute(d, []cleaning.Action{upper})

	if got := cellValue(p, 0, "v"); got != 42.0 {
		t.Errorf("numeric cell altered to %v", got)
	}
	if p.Rows[0]["v"].Changed {
		t.Error("numeric cell marked changed")
	}
}

func TestTrimWhitespace_AlreadyCleanNotChanged(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{{"v": "clean"}})
	trim, _ := cleaning.NewTrimWhitespace("v")

	p := NewExecutor().Execute(d, []cleaning.Action{trim})

	if p.Rows[0]["v"].Changed {
		t.Error("idempotent transform marked a cell changed")
	}
}

func TestChangedFlag_Accumulates(t *testing.T) {
	// A later no-op action must not clear an earlier change flag
	d := testDataset([]string{"v"}, []dataset.Row{{"v": "  hi"}})
	trim, _ := cleaning.NewTrimWhitespace("v")
	lower, _ := cleaning.NewLowercase("v")

	p := NewExecutor().Execute(d, []cleaning.Action{trim, lower})

	if got := cellValue(p, 0, "v"); got != "hi" {
		t.Fatalf("got %q", got)
	}
	if !p.Rows[0]["v"].Changed {
		t.Error("change flag lost after no-op follow-up")
	}
}

func TestReplaceSubstring(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": "$1,000"}, {"v": "plain"},
	})
	replace, err := cleaning.NewReplaceSubstring("v", ",", "")
	if err != nil {
		t.Fatal(err)
	}

	p := NewExecutor().Execute(d, []cleaning.Action{replace})

	if got := cellValue(p, 0, "v"); got != "$1000" {
		t.Errorf("got %q, want $1000", got)
	}
	if p.Rows[1]["v"].Changed {
		t.Error("cell without a match marked changed")
	}
}

func TestReplaceSubstring_EmptyFindIsNoOp(t *testing.T) {
	// The constructor rejects empty find text; an action built without it
	// must degrade to a no-op rather than corrupt cells.
	d := testDataset([]string{"v"}, []dataset.Row{{"v": "abc"}})
	action := cleaning.ReplaceSubstring{Col: "v", Find: "", Replace: "X"}

	p := NewExecutor().Execute(d, []cleaning.Action{action})

	if got := cellValue(p, 0, "v"); got != "abc" {
		t.Errorf("got %q, want abc", got)
	}
}

func TestExtractDatePart(t *testing.T) {
	when := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	d := testDataset([]string{"d"}, []dataset.Row{
		{"d": when}, {"d": "2023-07-04"}, {"d": "not a date"},
	})

	cases := []struct {
		part  cleaning.DatePart
		want0 dataset.Value
		want1 dataset.Value
	}{
		{cleaning.PartYear, float64(2024), float64(2023)},
		{cleaning.PartMonth, float64(3), float64(7)},
		{cleaning.PartDay, float64(15), float64(4)},
		{cleaning.PartWeekday, "Friday", "Tuesday"},
	}
	for _, tc := range cases {
		extract, _ := cleaning.NewExtractDatePart("d", tc.part)
		p := NewExecutor().Execute(d, []cleaning.Action{extract})
		if got := cellValue(p, 0, "d"); !dataset.Equal(got, tc.want0) {
			t.Errorf("%s of time.Time = %v, want %v", tc.part, got, tc.want0)
		}
		if got := cellValue(p, 1, "d"); !dataset.Equal(got, tc.want1) {
			t.Errorf("%s of date string = %v, want %v", tc.part, got, tc.want1)
		}
		if got := cellValue(p, 2, "d"); got != "not a date" {
			t.Errorf("unparseable cell altered to %v", got)
		}
	}
}

func TestRoundNumbers(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": 3.14159}, {"v": "2.7182"}, {"v": "text"},
	})
	round, _ := cleaning.NewRoundNumbers("v", 2)

	p := NewExecutor().Execute(d, []cleaning.Action{round})

	if got := cellValue(p, 0, "v"); got != 3.14 {
		t.Errorf("got %v, want 3.14", got)
	}
	if got := cellValue(p, 1, "v"); got != 2.72 {
		t.Errorf("got %v, want 2.72", got)
	}
	if got := cellValue(p, 2, "v"); got != "text" {
		t.Errorf("non-numeric cell altered to %v", got)
	}
}

func TestScaleMinMax(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": 0.0}, {"v": 5.0}, {"v": 10.0},
	})
	scale, _ := cleaning.NewScaleMinMax("v", 0, 1)

	p := NewExecutor().Execute(d, []cleaning.Action{scale})

	wants := []float64{0, 0.5, 1}
	for i, want := range wants {
		if got := cellValue(p, i, "v"); got != want {
			t.Errorf("row %d = %v, want %v", i, got, want)
		}
	}
}

func TestScaleMinMax_ConstantColumn(t *testing.T) {
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": 4.0}, {"v": 4.0},
	})
	scale, _ := cleaning.NewScaleMinMax("v", 2, 8)

	p := NewExecutor().Execute(d, []cleaning.Action{scale})

	for i := range p.Rows {
		if got := cellValue(p, i, "v"); got != 2.0 {
			t.Errorf("row %d = %v, want lower bound 2", i, got)
		}
	}
}

func TestExecute_OrderMatters(t *testing.T) {
	// Rounding before scaling gives a different result than after
	d := testDataset([]string{"v"}, []dataset.Row{
		{"v": 1.234}, {"v": 5.678},
	})
	round, _ := cleaning.NewRoundNumbers("v", 0)
	scale, _ := cleaning.NewScaleMinMax("v", 0, 1)

	roundFirst := NewExecutor().Execute(d, []cleaning.Action{round, scale})
	scaleFirst := NewExecutor().Execute(d, []cleaning.Action{scale, round})

	if dataset.Equal(cellValue(roundFirst, 0, "v"), cellValue(scaleFirst, 0, "v")) &&
		dataset.Equal(cellValue(roundFirst, 1, "v"), cellValue(scaleFirst, 1, "v")) {
		t.Error("action order had no effect on the result")
	}
}
