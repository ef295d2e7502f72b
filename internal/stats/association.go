package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxContingencyLevels caps how many category levels per variable enter a
// contingency table. Levels beyond the cap (by first-seen order) are
// ignored to bound the cost of the chi-square computation.
const MaxContingencyLevels = 12

// ChiSquare holds the Pearson chi-square statistic for one categorical pair
type ChiSquare struct {
	Stat float64 `json:"stat"`
	DF   int     `json:"df"`
}

// ChiSquareStat computes the standard Pearson chi-square statistic and its
// degrees of freedom (rows-1)(cols-1) from a contingency table of observed
// counts. Degenerate tables (empty, single row or column, zero total)
// yield {0, 0}.
func ChiSquareStat(table [][]int) ChiSquare {
	rows := len(table)
	if rows < 2 {
		return ChiSquare{}
	}
	cols := len(table[0])
	if cols < 2 {
		return ChiSquare{}
	}

	rowTotals := make([]int, rows)
	colTotals := make([]int, cols)
	total := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rowTotals[i] += table[i][j]
			colTotals[j] += table[i][j]
			total += table[i][j]
		}
	}
	if total == 0 {
		return ChiSquare{}
	}

	chi := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			expected := float64(rowTotals[i]*colTotals[j]) / float64(total)
			if expected > 0 {
				observed := float64(table[i][j])
				diff := observed - expected
				chi += diff * diff / expected
			}
		}
	}
	return ChiSquare{Stat: chi, DF: (rows - 1) * (cols - 1)}
}

// ChiSquareP returns the upper-tail p-value for a chi-square statistic.
// Returns 1 for zero degrees of freedom.
func ChiSquareP(cs ChiSquare) float64 {
	if cs.DF <= 0 || cs.Stat <= 0 {
		return 1
	}
	dist := distuv.ChiSquared{K: float64(cs.DF)}
	return 1 - dist.CDF(cs.Stat)
}

// BuildContingency builds an observed-count table from two index-aligned
// categorical series. Empty values are skipped; levels are capped at
// MaxContingencyLevels per variable in first-seen order.
func BuildContingency(x, y []string) [][]int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	xLevels := make(map[string]int)
	yLevels := make(map[string]int)
	for i := 0; i < n; i++ {
		if x[i] == "" || y[i] == "" {
			continue
		}
		if _, ok := xLevels[x[i]]; !ok && len(xLevels) < MaxContingencyLevels {
			xLevels[x[i]] = len(xLevels)
		}
		if _, ok := yLevels[y[i]]; !ok && len(yLevels) < MaxContingencyLevels {
			yLevels[y[i]] = len(yLevels)
		}
	}
	if len(xLevels) == 0 || len(yLevels) == 0 {
		return nil
	}

	table := make([][]int, len(xLevels))
	for i := range table {
		table[i] = make([]int, len(yLevels))
	}
	for i := 0; i < n; i++ {
		xi, xok := xLevels[x[i]]
		yi, yok := yLevels[y[i]]
		if xok && yok {
			table[xi][yi]++
		}
	}
	return table
}

// Entropy computes Shannon entropy in bits over the frequency distribution
// of non-empty values. Returns 0 for empty input.
func Entropy(values []string) float64 {
	counts := make(map[string]int)
	total := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
		total++
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
