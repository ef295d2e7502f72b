package inference

import (
	"fmt"
	"testing"

	"goscrub/domain/dataset"
)

func TestInferColumn_Numeric(t *testing.T) {
	e := NewDefaultEngine()

	values := []dataset.Value{1.5, "2", 3, "4.25", nil, "5"}
	if got := e.InferColumn(values); got != dataset.TypeNumeric {
		t.Errorf("got %s, want numeric", got)
	}

	// 80% parse rate is enough even with stray text
	values = []dataset.Value{"1", "2", "3", "4", "oops"}
	if got := e.InferColumn(values); got != dataset.TypeNumeric {
		t.Errorf("got %s, want numeric at threshold", got)
	}

	// Below threshold falls through
	values = []dataset.Value{"1", "2", "x", "y", "z"}
	if got := e.InferColumn(values); got == dataset.TypeNumeric {
		t.Error("40% numeric should not classify as numeric")
	}
}

func TestInferColumn_Categorical(t *testing.T) {
	e := NewDefaultEngine()

	var values []dataset.Value
	for i := 0; i < 100; i++ {
		values = append(values, []string{"red", "green", "blue"}[i%3])
	}
	if got := e.InferColumn(values); got != dataset.TypeCategorical {
		t.Errorf("got %s, want categorical", got)
	}
}

func TestInferColumn_CategoricalBoundary(t *testing.T) {
	e := NewDefaultEngine()

	// 5 values, 4 distinct: under the distinct ceiling, so categorical
	values := []dataset.Value{"ab", "cd", "ef", "gh", "ab"}
	if got := e.InferColumn(values); got != dataset.TypeCategorical {
		t.Errorf("got %s, want categorical", got)
	}
}

func TestInferColumn_CategoricalByRatio(t *testing.T) {
	e := NewDefaultEngine()

	// 60 distinct labels over 600 rows: above the distinct ceiling but
	// repetitive enough that the ratio rule keeps it categorical.
	var values []dataset.Value
	for i := 0; i < 600; i++ {
		values = append(values, fmt.Sprintf("label_%02d", i%60))
	}
	if got := e.InferColumn(values); got != dataset.TypeCategorical {
		t.Errorf("got %s, want categorical by ratio", got)
	}
}

func TestInferColumn_Date(t *testing.T) {
	e := NewDefaultEngine()

	// 60 distinct date strings, all unique, so neither categorical rule
	// fires and the date parse check decides.
	var values []dataset.Value
	for i := 0; i < 60; i++ {
		values = append(values, fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1))
	}
	if got := e.InferColumn(values); got != dataset.TypeDate {
		t.Errorf("got %s, want date", got)
	}
}

func TestInferColumn_Text(t *testing.T) {
	e := NewDefaultEngine()

	var values []dataset.Value
	for i := 0; i < 60; i++ {
		values = append(values, fmt.Sprintf("free form note number %d about nothing", i))
	}
	if got := e.InferColumn(values); got != dataset.TypeText {
		t.Errorf("got %s, want text", got)
	}
}

func TestInferColumn_AllMissing(t *testing.T) {
	e := NewDefaultEngine()

	values := []dataset.Value{nil, "", nil}
	if got := e.InferColumn(values); got != dataset.TypeText {
		t.Errorf("got %s, want text for all-missing column", got)
	}
	if got := e.InferColumn(nil); got != dataset.TypeText {
		t.Errorf("got %s, want text for empty column", got)
	}
}

func TestInferColumn_MissingValuesIgnored(t *testing.T) {
	e := NewDefaultEngine()

	// Missing cells must not dilute the numeric parse rate
	values := []dataset.Value{nil, nil, nil, nil, nil, nil, "1", "2", "3"}
	if got := e.InferColumn(values); got != dataset.TypeNumeric {
		t.Errorf("got %s, want numeric despite missing cells", got)
	}
}

func TestInferDataset_PopulatesTypes(t *testing.T) {
	var rows []dataset.Row
	for i := 0; i < 10; i++ {
		rows = append(rows, dataset.Row{
			"amount": float64(i) * 1.5,
			"status": []string{"open", "closed"}[i%2],
		})
	}
	d := dataset.New("orders", []dataset.Column{{Name: "amount"}, {Name: "status"}}, rows)

	e := NewDefaultEngine()
	e.InferDataset(d)

	if d.Columns[0].Type != dataset.TypeNumeric {
		t.Errorf("amount inferred as %s, want numeric", d.Columns[0].Type)
	}
	if d.Columns[1].Type != dataset.TypeCategorical {
		t.Errorf("status inferred as %s, want categorical", d.Columns[1].Type)
	}
}
