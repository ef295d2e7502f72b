package export

import (
	"strings"
	"testing"
	"time"

	"goscrub/domain/cleaning"
	"goscrub/domain/dataset"
	"goscrub/internal/pipeline"
)

func preview(columns []string, rows []dataset.Row, actions ...cleaning.Action) *dataset.PreviewDataset {
	cols := make([]dataset.Column, len(columns))
	for i, name := range columns {
		cols[i] = dataset.Column{Name: name}
	}
	d := dataset.New("test", cols, rows)
	return pipeline.NewExecutor().Execute(d, actions)
}

func TestSerialize_HeaderAndRows(t *testing.T) {
	p := preview([]string{"name", "amount"}, []dataset.Row{
		{"name": "alice", "amount": 10.5},
		{"name": "bob", "amount": nil},
	})

	out, err := NewSerializer().Serialize(p)
	if err != nil {
		t.Fatal(err)
	}

	want := "name,amount\nalice,10.5\nbob,\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSerialize_QuotesSpecialCharacters(t *testing.T) {
	p := preview([]string{"note"}, []dataset.Row{
		{"note": `said "hi", then left`},
	})

	out, err := NewSerializer().Serialize(p)
	if err != nil {
		t.Fatal(err)
	}

	want := "note\n\"said \"\"hi\"\", then left\"\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSerialize_ExcludesDroppedColumns(t *testing.T) {
	drop, _ := cleaning.NewDropColumn("secret")
	p := preview([]string{"keep", "secret"}, []dataset.Row{
		{"keep": "a", "secret": "x"},
		{"keep": "b", "secret": "y"},
	}, drop)

	out, err := NewSerializer().Serialize(p)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out, "secret") || strings.Contains(out, "x") {
		t.Errorf("dropped column leaked into export: %q", out)
	}
	want := "keep\na\nb\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSerialize_DatesAsCalendarDays(t *testing.T) {
	when := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	p := preview([]string{"d"}, []dataset.Row{{"d": when}})

	out, err := NewSerializer().Serialize(p)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "2024-03-15") {
		t.Errorf("date not rendered as calendar day: %q", out)
	}
	if strings.Contains(out, "23:59") {
		t.Errorf("timestamp leaked into export: %q", out)
	}
}

func TestFilename(t *testing.T) {
	s := NewSerializer()
	today := time.Now().Format("20060102")

	if got := s.Filename("orders.csv"); got != "orders_cleaned_"+today+".csv" {
		t.Errorf("got %q", got)
	}
	if got := s.Filename("orders.xlsx"); got != "orders_cleaned_"+today+".csv" {
		t.Errorf("got %q", got)
	}
	if got := s.Filename(""); got != "dataset_cleaned_"+today+".csv" {
		t.Errorf("got %q", got)
	}
}
