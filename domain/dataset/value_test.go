package dataset

import (
	"math"
	"testing"
	"time"
)

func TestIsMissing(t *testing.T) {
	missing := []Value{nil, "", math.NaN()}
	for _, v := range missing {
		if !IsMissing(v) {
			t.Errorf("IsMissing(%v) = false, want true", v)
		}
	}
	present := []Value{0.0, "0", " ", false, time.Time{}}
	for _, v := range present {
		if IsMissing(v) {
			t.Errorf("IsMissing(%v) = true, want false", v)
		}
	}
	if IsMissing(Dropped) {
		t.Error("dropped marker must not count as missing")
	}
}

func TestAsFloat(t *testing.T) {
	cases := []struct {
		in   Value
		want float64
		ok   bool
	}{
		{3.5, 3.5, true},
		{" 42 ", 42, true},
		{"-0.5", -0.5, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{true, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
	}
	for _, tc := range cases {
		got, ok := AsFloat(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("AsFloat(%v) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAsTime(t *testing.T) {
	for _, s := range []string{"2024-03-15", "2024/03/15", "03/15/2024", "Mar 15, 2024"} {
		got, ok := AsTime(s)
		if !ok {
			t.Errorf("AsTime(%q) failed", s)
			continue
		}
		if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
			t.Errorf("AsTime(%q) = %v", s, got)
		}
	}

	// Bare numbers never parse as dates
	for _, s := range []string{"20240315", "1234", "3.14"} {
		if _, ok := AsTime(s); ok {
			t.Errorf("AsTime(%q) parsed a bare number as a date", s)
		}
	}

	if _, ok := AsTime(nil); ok {
		t.Error("AsTime(nil) should fail")
	}
}

func TestAsString(t *testing.T) {
	when := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	cases := []struct {
		in   Value
		want string
	}{
		{nil, ""},
		{math.NaN(), ""},
		{Dropped, ""},
		{"hi", "hi"},
		{1.5, "1.5"},
		{10.0, "10"},
		{true, "true"},
		{when, "2024-03-15"},
	}
	for _, tc := range cases {
		if got := AsString(tc.in); got != tc.want {
			t.Errorf("AsString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	utc := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	elsewhere := utc.In(time.FixedZone("X", 3600))

	if !Equal(nil, "") || !Equal(nil, math.NaN()) {
		t.Error("missing values must compare equal regardless of marker")
	}
	if !Equal(utc, elsewhere) {
		t.Error("same instant in different zones must compare equal")
	}
	if Equal(utc, utc.Add(time.Second)) {
		t.Error("different instants compared equal")
	}
	if Equal(1.0, "1") {
		t.Error("number and numeric string compared equal")
	}
	if !Equal(2.5, 2.5) || !Equal("a", "a") {
		t.Error("identical scalars compared unequal")
	}
}

func TestStableKey(t *testing.T) {
	a := map[string]Value{"x": 1.0, "y": "hi"}
	b := map[string]Value{"y": "hi", "x": 1.0}
	if StableKey(a) != StableKey(b) {
		t.Error("key order affected the stable key")
	}

	c := map[string]Value{"x": 2.0, "y": "hi"}
	if StableKey(a) == StableKey(c) {
		t.Error("different values produced the same key")
	}
}

func TestStableKey_NaNIsTotal(t *testing.T) {
	withNaN := map[string]Value{"x": math.NaN()}
	withNil := map[string]Value{"x": nil}
	if StableKey(withNaN) != StableKey(withNil) {
		t.Error("NaN and nil must serialize identically")
	}
	if StableKey(withNaN) == "" {
		t.Error("NaN row produced an empty key")
	}
}
