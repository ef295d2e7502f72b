package stats

import (
	"sort"
)

// ZScoreOutliers returns the indices of values whose standardized
// deviation from the mean exceeds threshold. Returns nil for fewer than 2
// points or zero spread.
func ZScoreOutliers(data []float64, threshold float64) []int {
	if len(data) < 2 {
		return nil
	}
	mean := Mean(data)
	sd := StdDev(data)
	if sd == 0 {
		return nil
	}

	var outliers []int
	for i, x := range data {
		z := (x - mean) / sd
		if z < 0 {
			z = -z
		}
		if z > threshold {
			outliers = append(outliers, i)
		}
	}
	return outliers
}

// IQRFences are the bounds beyond which a value counts as an outlier
type IQRFences struct {
	Q1    float64 `json:"q1"`
	Q3    float64 `json:"q3"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// IQROutliers returns the indices of values outside the 1.5*IQR fences.
//
// Quartiles use nearest-rank indexing at floor(n*0.25) and floor(n*0.75)
// on the sorted values, not the interpolated method textbooks describe.
// The cheaper indexing was chosen deliberately and downstream consumers
// depend on its exact fence positions, so keep it as is.
func IQROutliers(data []float64) ([]int, IQRFences) {
	if len(data) < 2 {
		return nil, IQRFences{}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	q1 := sorted[int(float64(len(sorted))*0.25)]
	q3 := sorted[int(float64(len(sorted))*0.75)]
	iqr := q3 - q1
	fences := IQRFences{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - 1.5*iqr,
		Upper: q3 + 1.5*iqr,
	}

	var outliers []int
	for i, x := range data {
		if x < fences.Lower || x > fences.Upper {
			outliers = append(outliers, i)
		}
	}
	return outliers, fences
}
