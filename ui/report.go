package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"goscrub/internal/profile"
)

// handleReportHTML renders the profiling report as an HTML fragment for
// the dashboard's report panel.
func (s *Server) handleReportHTML(w http.ResponseWriter, _ *http.Request) {
	report, err := s.service.Profile()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	md := renderReportMarkdown(report)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(md), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out) //nolint:errcheck
}

// renderReportMarkdown builds the markdown source for a profile report
func renderReportMarkdown(r *profile.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Data Profile\n\n")
	fmt.Fprintf(&sb, "%d rows, %d columns, %.1f%% missing cells, %d duplicate rows\n\n",
		r.Quality.RowCount, r.Quality.ColumnCount, r.Quality.MissingRatio*100, r.Quality.DuplicateRows)

	fmt.Fprintf(&sb, "### Columns\n\n")
	fmt.Fprintf(&sb, "| Column | Type | Missing | Highlights |\n")
	fmt.Fprintf(&sb, "|---|---|---|---|\n")
	for _, c := range r.Columns {
		fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n", c.Name, c.Type, c.Missing, columnHighlights(c))
	}

	if len(r.Correlations) > 0 {
		fmt.Fprintf(&sb, "\n### Correlations\n\n")
		for _, e := range r.Correlations {
			fmt.Fprintf(&sb, "- %s vs %s: r = %.3f\n", e.X, e.Y, e.R)
		}
	}
	if len(r.Associations) > 0 {
		fmt.Fprintf(&sb, "\n### Associations\n\n")
		for _, e := range r.Associations {
			fmt.Fprintf(&sb, "- %s vs %s: chi2 = %.2f (df %d, p = %.3f)\n", e.X, e.Y, e.Chi2, e.DF, e.P)
		}
	}
	return sb.String()
}

func columnHighlights(c profile.ColumnProfile) string {
	switch {
	case c.Numeric != nil:
		return fmt.Sprintf("mean %.2f, sd %.2f, %d outliers",
			c.Numeric.Mean, c.Numeric.StdDev, c.Numeric.IQROutliers)
	case c.Categorical != nil:
		return fmt.Sprintf("%d levels, top %q, entropy %.2f bits",
			c.Categorical.UniqueCount, c.Categorical.MostFrequent, c.Categorical.EntropyBits)
	case c.Datetime != nil:
		return fmt.Sprintf("%s to %s (%d days)",
			c.Datetime.Min.Format("2006-01-02"), c.Datetime.Max.Format("2006-01-02"), c.Datetime.SpanDays)
	default:
		return ""
	}
}
