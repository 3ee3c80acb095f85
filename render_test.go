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

func TestRenderDecimal(t *testing.T) {
	testData := []struct {
		v        Datum
		format   string
		expected string
	}{
		// Decimal points: '.' and 'D' are visible, 'V' is not.
		{DFloat(1.2), "9.99", " 1.20"},
		{DFloat(1.2), "9D99", " 1.20"},
		{DFloat(1.2), "9V99", " 120"},

		// Grouping and overflow. Digit slots overflow to '#'; the group
		// separator stays.
		{DInt(1234), "9,999", " 1,234"},
		{DInt(12345), "9,999", "#,###"},
		{DInt(12345), "999", " ###"},
		{DFloat(12345.6), "99.9", " ##.#"},

		// Sign elements.
		{DInt(-3), "9", "-3"},
		{DInt(3), "9", " 3"},
		{DInt(3), "S9", "+3"},
		{DInt(-3), "S9", "-3"},
		{DInt(3), "9S", "3+"},
		{DInt(-3), "9S", "3-"},
		{DInt(3), "9MI", "3 "},
		{DInt(-3), "9MI", "3-"},
		{DInt(3), "9PR", " 3 "},
		{DInt(-3), "9PR", "<3>"},

		// Integer-part suppression and the '0' placeholder.
		{DFloat(0.5), "9.9", "  .5"},
		{DFloat(0.5), "0.9", " 0.5"},
		{DFloat(0.12), "0.99", " 0.12"},
		{DFloat(0.12), "9.99", "  .12"},
		{DFloat(0.5), ".9", " .5"},
		{DFloat(0.5), "V9", " 5"},
		{DInt(0), "9", " 0"},
		{DInt(0), "9.99", "  .00"},
		{DInt(0), "0.99", " 0.00"},

		// Leading zeros and padding.
		{DInt(12), "9999", "   12"},
		{DInt(12), "0000", " 0012"},
		{DInt(12), "9099", "  012"},
		{DFloat(12.3), "9999.99", "   12.30"},
		{DInt(1234567), "9,999,999", " 1,234,567"},
		{DInt(1234567), "0,999,999", " 1,234,567"},
		{DInt(45), "0,999,999", " 0,000,045"},

		// Rounding happens at the requested scale.
		{DFloat(1.25), "9.9", " 1.2"},
		{DFloat(1.35), "9.9", " 1.4"},
		{mustDecimalDatum("1.25"), "9.9", " 1.3"},
		{mustDecimalDatum("-1.25"), "9.9", "-1.3"},
		// Rounding at the scale can itself overflow the integer slots.
		{DFloat(9.99), "9.9", " #.#"},

		// Exponent rendering preserves the marker's letter case.
		{DFloat(12345), "9.99EEEE", " 1.23E+04"},
		{DFloat(12345), "9.99eeee", " 1.23e+04"},
		{DInt(12345), "99999EEEE", " 1E+04"},
		{DFloat(0.00012), "9.99EEEE", " 1.20E-04"},
		{mustDecimalDatum("12345"), "9.99EEEE", " 1.23E+04"},
		{mustDecimalDatum("0"), "9.99EEEE", " 0.00E+00"},
		// Extra integer digits were dropped at parse time.
		{DFloat(12345), "999.99EEEE", " 1.23E+04"},
		// An exponent with no integer digit slots still renders; the
		// mantissa digit overflows the zero-width integer part.
		{DFloat(1.5), ".9EEEE", " .#####"},

		// Currency marks.
		{DFloat(1.2), "$9.99", " $1.20"},
		{DFloat(1.2), "L9.99", " $1.20"},
		{DFloat(1.2), "C9.99", " USD1.20"},
		{DFloat(1.2), "c9.99", " usd1.20"},
		{DInt(-3), "$9", "-$3"},
		// The currency mark renders before the digits wherever it appears
		// in the format string.
		{DInt(-3), "S9$", "-$3"},

		// Signs combined with the exponent.
		{DFloat(12345), "9.99EEEEMI", "1.23E+04 "},
		{DFloat(-12345), "9.99EEEEMI", "1.23E+04-"},
		{DFloat(-12345), "S9.99EEEE", "-1.23E+04"},
	}
	for _, d := range testData {
		t.Run(d.format, func(t *testing.T) {
			out, err := NumericalToStringWithFormat(d.v, d.format, ProductInternal)
			require.NoError(t, err)
			require.Equal(t, d.expected, out)
		})
	}
}

func mustDecimalDatum(s string) Datum {
	d, err := NewDDecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Overflow output contains one '#' per digit placeholder and no value
// digits.
func TestRenderOverflowShape(t *testing.T) {
	for _, format := range []string{"9", "99", "9,99", "0,009", "99.9"} {
		pf, err := ParseForTest(format)
		require.NoError(t, err)

		out, err := NumericalToStringWithFormat(DInt(123456789), format, ProductInternal)
		require.NoError(t, err)

		hashes := 0
		for i := 0; i < len(out); i++ {
			require.NotContains(t, "0123456789", string(out[i]), format)
			if out[i] == '#' {
				hashes++
			}
		}
		require.Equal(t, pf.NumIntegerDigit+pf.Scale, hashes, format)
	}
}

// Without an explicit sign element, rendering v and -v differs at exactly
// one position: the sign slot holds ' ' for v and '-' for -v.
func TestRenderSignSymmetry(t *testing.T) {
	for _, format := range []string{"9999", "9,999.99", "0000V9"} {
		for _, v := range []float64{3, 42.5, 1234} {
			pos, err := NumericalToStringWithFormat(DFloat(v), format, ProductInternal)
			require.NoError(t, err)
			neg, err := NumericalToStringWithFormat(DFloat(-v), format, ProductInternal)
			require.NoError(t, err)

			require.Equal(t, len(pos), len(neg), format)
			diffs := 0
			for i := 0; i < len(pos); i++ {
				if pos[i] != neg[i] {
					diffs++
					require.Equal(t, byte(' '), pos[i], format)
					require.Equal(t, byte('-'), neg[i], format)
				}
			}
			require.Equal(t, 1, diffs, "%s of %v", format, v)
		}
	}
}

func TestRenderUnimplemented(t *testing.T) {
	testData := []struct {
		v      Datum
		format string
		msg    string
	}{
		{DInt(1), "TM", "Text minimal output is not supported yet"},
		{DInt(1), "TM9", "Text minimal output is not supported yet"},
		{DInt(1), "TME", "Text minimal output is not supported yet"},
		{DInt(1), "XX", "Hexadecimal output is not supported yet"},
		{DInt(1), "RN", "Roman numeral output is not supported yet"},
		{DInt(1), "rn", "Roman numeral output is not supported yet"},
		{DInt(1), "B9", "'B', 'FM', sign and currency are not implemented yet"},
		{DInt(1), "9FM", "'B', 'FM', sign and currency are not implemented yet"},
	}
	for _, d := range testData {
		t.Run(d.format, func(t *testing.T) {
			_, err := NumericalToStringWithFormat(d.v, d.format, ProductInternal)
			require.EqualError(t, err, d.msg)
			requireUnimplemented(t, err)
		})
	}
}
