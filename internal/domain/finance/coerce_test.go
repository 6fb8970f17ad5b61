package finance

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberLenient(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "0"},
		{"float", 12.5, "12.5"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"numeric string", "42.75", "42.75"},
		{"padded string", "  10 ", "10"},
		{"empty string", "", "0"},
		{"garbled string", "12abc", "0"},
		{"NaN", math.NaN(), "0"},
		{"+Inf", math.Inf(1), "0"},
		{"-Inf", math.Inf(-1), "0"},
		{"json.Number", json.Number("3.14"), "3.14"},
		{"bool", true, "0"},
		{"decimal passthrough", d("9.9"), "9.9"},
	}
	for _, c := range cases {
		got := Number(c.in)
		if !got.Equal(d(c.want)) {
			t.Errorf("%s: Number(%v) = %s, want %s", c.name, c.in, got, c.want)
		}
	}
}

func TestParseNumberStrict(t *testing.T) {
	// absent values are fine even in strict mode
	for _, in := range []interface{}{nil, "", "  "} {
		got, err := ParseNumber(in)
		if err != nil || !got.IsZero() {
			t.Errorf("ParseNumber(%v) = (%s, %v), want (0, nil)", in, got, err)
		}
	}

	// malformed values are rejected instead of masked as zero
	for _, in := range []interface{}{math.NaN(), math.Inf(1), "not-a-number", true, []int{1}} {
		if _, err := ParseNumber(in); err == nil {
			t.Errorf("ParseNumber(%v): expected error, got nil", in)
		}
	}
}
