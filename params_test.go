package main

import (
	"math"
	"testing"
)

func TestParseParamExpr(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5707", 1.5707, true},
		{"-0.5", -0.5, true},
		{"3.14e-2", 0.0314, true},
		{"pi", math.Pi, true},
		{"PI", math.Pi, true},
		{"pi/2", math.Pi / 2, true},
		{"3*pi/4", 3 * math.Pi / 4, true},
		{"3pi/4", 3 * math.Pi / 4, true},
		{"2pi", 2 * math.Pi, true},
		{"-pi", -math.Pi, true},
		{"-pi/2", -math.Pi / 2, true},
		{" pi / 2 ", math.Pi / 2, true},
		{"", 0, false},
		{"tau", 0, false},
		{"pi/0", 0, false},
		{"x*pi", 0, false},
	}

	for _, c := range cases {
		got, ok := parseParamExpr(c.in)
		if ok != c.ok {
			t.Errorf("parseParamExpr(%q): ok=%v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && math.Abs(got-c.want) > 1e-9 {
			t.Errorf("parseParamExpr(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatParam(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 4, "-pi/4"},
		{3 * math.Pi / 4, "3*pi/4"},
		{2 * math.Pi, "2*pi"},
		{1.25, "1.25"},
	}

	for _, c := range cases {
		if got := formatParam(c.in); got != c.want {
			t.Errorf("formatParam(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatParamRoundTrip(t *testing.T) {
	for _, pf := range piForms {
		parsed, ok := parseParamExpr(pf.display)
		if !ok {
			t.Fatalf("formatParam output %q does not parse back", pf.display)
		}
		if math.Abs(parsed-pf.value) > 1e-9 {
			t.Errorf("round trip %q: got %v, want %v", pf.display, parsed, pf.value)
		}
	}
}

func TestKetOrdering(t *testing.T) {
	// Qubit 0 is the leftmost character; index bit i is qubit i.
	if got := ket(1, 3); got != "100" {
		t.Errorf("ket(1, 3) = %q, want %q", got, "100")
	}
	if got := ket(4, 3); got != "001" {
		t.Errorf("ket(4, 3) = %q, want %q", got, "001")
	}
	if got := ket(0, 2); got != "00" {
		t.Errorf("ket(0, 2) = %q, want %q", got, "00")
	}
}
