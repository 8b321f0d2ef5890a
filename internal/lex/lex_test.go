// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package lex_test

import (
	"math"
	"testing"

	"github.com/creachadair/rjson/internal/lex"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go4.org/mem"
)

func TestClasses(t *testing.T) {
	var space, start []byte
	for c := 0; c < 256; c++ {
		if lex.IsSpace(byte(c)) {
			space = append(space, byte(c))
		}
		if lex.IsNumStart(byte(c)) {
			start = append(start, byte(c))
		}
	}
	if diff := cmp.Diff("\t\n\r ", string(space)); diff != "" {
		t.Errorf("IsSpace (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("-0123456789", string(start)); diff != "" {
		t.Errorf("IsNumStart (-want, +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		src, lit string
		want     bool
	}{
		{"true", "true", true},
		{"true}", "true", true},
		{"tru", "true", false},
		{"trUe", "true", false},
		{"false,", "false", true},
		{"nul", "null", false},
		{"", "", true},
	}
	for _, tc := range tests {
		if got := lex.HasLiteral([]byte(tc.src), tc.lit); got != tc.want {
			t.Errorf("HasLiteral(%q, %q): got %v, want %v", tc.src, tc.lit, got, tc.want)
		}
	}

	if !lex.Equal([]byte("name"), "name") {
		t.Error(`Equal("name", "name") is false`)
	}
	if lex.Equal([]byte("name"), "names") || lex.Equal([]byte("names"), "name") {
		t.Error("Equal matched a prefix")
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		base float64
		exp  int
		want float64
	}{
		{10, 0, 1},
		{0, 0, 1},
		{7, 1, 7},
		{2, -1, 0.5},
		{2, 10, 1024},
		{3, 5, 243},
		{10, 2, 100},
		{2, -3, 0.125},
		{-2, 3, -8},
		{10, 400, math.Inf(1)},
	}
	for _, tc := range tests {
		if got := lex.Pow(tc.base, tc.exp); got != tc.want {
			t.Errorf("Pow(%v, %d): got %v, want %v", tc.base, tc.exp, got, tc.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"0", 0, true},
		{"-0", 0, true},
		{"1", 1, true},
		{"-15", -15, true},
		{"5139", 5139, true},
		{"0.5", 0.5, true},
		{"-0.5e2", -50, true},
		{"2.1", 2.1, true},
		{"2.4", 2.4, true},
		{"1e2", 100, true},
		{"1E2", 100, true},
		{"25e-1", 2.5, true},
		{"0e5", 0, true},
		{"1.25", 1.25, true},
		{"0e400", 0, true},
		{"0.0e309", 0, true},
		{"-0E999", 0, true},
		{"-0.0E999", 0, true},

		// Rejected.
		{"", 0, false},
		{"-", 0, false},
		{"01", 0, false},
		{"-01", 0, false},
		{"00.5", 0, false},
		{"1e+2", 0, false},
		{"1.", 0, false},
		{".5", 0, false},
		{"-.5", 0, false},
		{"1e", 0, false},
		{"1e-", 0, false},
		{"1e--2", 0, false},
		{"1e2-3", 0, false},
		{"1.2.3", 0, false},
		{"12a", 0, false},
		{"--1", 0, false},
		{"1 ", 0, false},
	}
	for _, tc := range tests {
		got, ok := lex.ParseNumber([]byte(tc.input))
		if ok != tc.ok {
			t.Errorf("ParseNumber(%q): got ok=%v, want %v", tc.input, ok, tc.ok)
		} else if ok && got != tc.want {
			t.Errorf("ParseNumber(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseNumberAgrees(t *testing.T) {
	inputs := []string{
		"3.25e-5", "-6.32", "0.001", "123456789", "-0.001E-10",
		"0.1e-2", "98.6", "6.02e23", "1.602e-19", "-42.125",
	}
	approx := cmpopts.EquateApprox(1e-9, 0)
	for _, in := range inputs {
		want, err := mem.ParseFloat(mem.S(in), 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", in, err)
		}
		got, ok := lex.ParseNumber([]byte(in))
		if !ok {
			t.Errorf("ParseNumber(%q) failed", in)
			continue
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("ParseNumber(%q) (-want, +got):\n%s", in, diff)
		}
	}
}

func TestParseNumberHugeExponent(t *testing.T) {
	if got, ok := lex.ParseNumber([]byte("1e99999999999999999999")); !ok || !math.IsInf(got, 1) {
		t.Errorf("Huge exponent: got %v, %v; want +Inf", got, ok)
	}
	if got, ok := lex.ParseNumber([]byte("1e-99999999999999999999")); !ok || got != 0 {
		t.Errorf("Huge negative exponent: got %v, %v; want 0", got, ok)
	}
}
