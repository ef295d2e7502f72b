package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// StableKey returns a canonical serialization of a row's values for
// duplicate detection: JSON with keys sorted, NaN normalized to null so
// the encoding is total. Dropped cells must be excluded by the caller;
// only effective values define row identity.
func StableKey(values map[string]Value) string {
	sanitized := make(map[string]Value, len(values))
	for k, v := range values {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			sanitized[k] = nil
			continue
		}
		sanitized[k] = v
	}

	// encoding/json sorts map keys, giving a stable encoding
	encoded, err := json.Marshal(sanitized)
	if err == nil {
		return string(encoded)
	}

	// Unmarshalable values fall back to a sorted fmt rendering
	keys := make([]string, 0, len(sanitized))
	for k := range sanitized {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v;", k, sanitized[k])
	}
	return sb.String()
}
