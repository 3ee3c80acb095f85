// Copyright 2023 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package tochar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextFormatElement(t *testing.T) {
	testData := []struct {
		input   string
		element FormatElement
		length  int
	}{
		{"$", CurrencyDollar, 1},
		{"0", Digit0, 1},
		{"9", Digit9, 1},
		{"X", DigitXUpper, 1},
		{"x", DigitXLower, 1},
		{".", DecimalPointDot, 1},
		{"D", DecimalPointD, 1},
		{"d", DecimalPointD, 1},
		{",", GroupSeparatorComma, 1},
		{"G", GroupSeparatorG, 1},
		{"g", GroupSeparatorG, 1},
		{"S", SignS, 1},
		{"s", SignS, 1},
		{"B", ElementB, 1},
		{"b", ElementB, 1},
		{"V", ElementV, 1},
		{"v", ElementV, 1},
		{"C", CurrencyCUpper, 1},
		{"c", CurrencyCLower, 1},
		{"L", CurrencyL, 1},
		{"l", CurrencyL, 1},
		{"MI", SignMi, 2},
		{"mi", SignMi, 2},
		{"Mi", SignMi, 2},
		{"PR", SignPr, 2},
		{"pr", SignPr, 2},
		{"RN", RomanUpper, 2},
		{"Rn", RomanUpper, 2},
		{"rN", RomanLower, 2},
		{"EEEE", ExponentUpper, 4},
		{"eeee", ExponentLower, 4},
		{"EeEe", ExponentUpper, 4},
		{"FM", CompactMode, 2},
		{"fm", CompactMode, 2},
		{"TM", TmUpper, 2},
		{"tm", TmLower, 2},
		{"TME", TmeUpper, 3},
		{"tme", TmeLower, 3},
		{"TM9", Tm9Upper, 3},
		{"tm9", Tm9Lower, 3},

		// The scan is greedy: longer elements win over their prefixes, and
		// only the leading element of a longer input is returned.
		{"TM9X", Tm9Upper, 3},
		{"TME9", TmeUpper, 3},
		{"TMX", TmUpper, 2},
		{"MI9", SignMi, 2},
		{"9.99", Digit9, 1},
		{"EEEE9", ExponentUpper, 4},
	}
	for _, d := range testData {
		t.Run(d.input, func(t *testing.T) {
			e, n, ok := nextFormatElement(d.input)
			require.True(t, ok)
			require.Equal(t, d.element, e)
			require.Equal(t, d.length, n)
		})
	}
}

func TestNextFormatElementInvalid(t *testing.T) {
	for _, input := range []string{
		"", "Z", "z", "#", " ", "-", "+", "1", "8",
		// Prefixes of multi-character elements are not elements themselves.
		"M", "m", "P", "p", "R", "r", "E", "e", "EEE", "ee", "F", "f", "T", "t", "TX",
	} {
		t.Run(input, func(t *testing.T) {
			_, _, ok := nextFormatElement(input)
			require.False(t, ok)
		})
	}
}

func TestFormatElementString(t *testing.T) {
	// Diagnostics spell elements in uppercase regardless of input case.
	testData := []struct {
		element  FormatElement
		expected string
	}{
		{Digit0, "0"},
		{Digit9, "9"},
		{DigitXUpper, "X"},
		{DigitXLower, "X"},
		{DecimalPointDot, "."},
		{DecimalPointD, "D"},
		{ElementV, "V"},
		{GroupSeparatorComma, ","},
		{GroupSeparatorG, "G"},
		{SignS, "S"},
		{SignMi, "MI"},
		{SignPr, "PR"},
		{ExponentUpper, "EEEE"},
		{ExponentLower, "EEEE"},
		{RomanUpper, "RN"},
		{RomanLower, "RN"},
		{TmUpper, "TM"},
		{TmLower, "TM"},
		{TmeUpper, "TME"},
		{TmeLower, "TME"},
		{Tm9Upper, "TM9"},
		{Tm9Lower, "TM9"},
		{CompactMode, "FM"},
		{ElementB, "B"},
		{CurrencyDollar, "$"},
		{CurrencyCUpper, "C"},
		{CurrencyCLower, "C"},
		{CurrencyL, "L"},
	}
	for _, d := range testData {
		require.Equal(t, d.expected, d.element.String())
	}
}
