package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a single cell value: float64, string, bool, time.Time, or nil
// for a missing cell.
type Value interface{}

// dropped is the private marker type for cells belonging to a dropped column.
type dropped struct{}

// Dropped marks a cell whose column has been removed by a drop action.
// Effective column lists and exports skip columns holding this marker.
var Dropped Value = dropped{}

// IsDropped reports whether v is the dropped-column marker
func IsDropped(v Value) bool {
	_, ok := v.(dropped)
	return ok
}

// IsMissing reports whether v counts as a missing cell: nil, empty string,
// or NaN. Dropped cells are not "missing"; they no longer exist.
func IsMissing(v Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	default:
		return false
	}
}

// AsFloat attempts to interpret v as a finite float64.
// Strings are trimmed and parsed; booleans and dates do not convert.
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return AsFloat(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// dateLayouts are tried in order when parsing string dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// AsTime attempts to interpret v as a calendar date
func AsTime(v Value) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		// Bare numbers are not dates even though some layouts would accept them
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// AsString renders v for display and serialization. Missing values render
// as the empty string; dates use a fixed calendar format.
func AsString(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case dropped:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return AsString(float64(t))
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Equal compares two cell values. Dates compare by instant, numbers and
// strings by value; two missing values are equal regardless of marker kind.
func Equal(a, b Value) bool {
	if IsMissing(a) && IsMissing(b) {
		return true
	}
	at, aok := a.(time.Time)
	bt, bok := b.(time.Time)
	if aok && bok {
		return at.Equal(bt)
	}
	if aok != bok {
		return false
	}
	return a == b
}
