// Package export renders a cleaned preview as delimited text for download.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"goscrub/domain/dataset"
)

// Serializer renders preview datasets as RFC 4180 CSV: a header row from
// the surviving columns, one line per row, embedded commas, quotes, and
// newlines escaped by quoting with doubled quotes.
type Serializer struct{}

// NewSerializer creates an export serializer
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize renders the preview. Dropped columns are excluded from the
// header and from every row; dates render as calendar dates, not internal
// timestamps.
func (s *Serializer) Serialize(p *dataset.PreviewDataset) (string, error) {
	columns := p.EffectiveColumns()
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(names); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range p.Rows {
		for i, c := range columns {
			record[i] = dataset.AsString(row[c.Name].Value)
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}

// Filename suggests a download filename for a cleaned dataset
func (s *Serializer) Filename(base string) string {
	base = strings.TrimSuffix(base, ".csv")
	base = strings.TrimSuffix(base, ".xlsx")
	if base == "" {
		base = "dataset"
	}
	return fmt.Sprintf("%s_cleaned_%s.csv", base, time.Now().Format("20060102"))
}
