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
	"fmt"
	"math"
	"regexp"
	"strings"

	"fortio.org/safecast"
	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// Datum is a numeric input value with a known kind. The closed set of kinds
// is DInt, DUint, DFloat and DDecimal.
type Datum interface {
	datum()
}

// DInt is a signed integer Datum.
type DInt int64

// DUint is an unsigned integer Datum.
type DUint uint64

// DFloat is a floating-point Datum.
type DFloat float64

// DDecimal is a fixed-point or arbitrary-precision decimal Datum.
type DDecimal struct {
	apd.Decimal
}

func (DInt) datum()     {}
func (DUint) datum()    {}
func (DFloat) datum()   {}
func (DDecimal) datum() {}

// NewDDecimalFromString builds a DDecimal from its decimal string
// representation.
func NewDDecimalFromString(s string) (*DDecimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &DDecimal{Decimal: *d}, nil
}

// parsedNumber is the canonical decomposition of a number rendered with a
// "%#.Nf" or "%#.Ne" conversion: sign, integer digits, fractional digits and
// the signed exponent digits ("+07", "-04", ...). integerPart is "" when the
// integer part is zero.
type parsedNumber struct {
	negative   bool
	isInfinity bool
	isNan      bool

	integerPart    string
	fractionalPart string
	exponent       string
}

// canonicalNumberRE matches the output grammar of the "%#.Nf" and "%#.Ne"
// conversions. Everything the renderer consumes must match it.
var canonicalNumberRE = regexp.MustCompile(`^-?[0-9]+\.[0-9]*(e[+-][0-9]+)?$`)

// prenormalize converts v into the canonical parsedNumber form driven by the
// parsed format's scale and exponent flag. Integer kinds are first converted
// losslessly to decimal.
func prenormalize(pf ParsedFormat, v Datum) (parsedNumber, error) {
	switch t := v.(type) {
	case DInt:
		var d DDecimal
		d.SetInt64(int64(t))
		return prenormalize(pf, d)
	case DUint:
		var d DDecimal
		d.Coeff.SetUint64(uint64(t))
		return prenormalize(pf, d)
	case DFloat:
		return prenormalizeFloat(pf, float64(t))
	case DDecimal:
		return prenormalizeDecimal(pf, &t.Decimal)
	case *DDecimal:
		return prenormalizeDecimal(pf, &t.Decimal)
	}
	return parsedNumber{}, errors.AssertionFailedf("unsupported value %T", v)
}

func prenormalizeFloat(pf ParsedFormat, f float64) (parsedNumber, error) {
	switch {
	case math.IsInf(f, 1):
		return parsedNumber{isInfinity: true}, nil
	case math.IsInf(f, -1):
		return parsedNumber{negative: true, isInfinity: true}, nil
	case math.IsNaN(f):
		return parsedNumber{isNan: true}, nil
	}

	// The '#' flag keeps the decimal point even at scale 0, so the canonical
	// grammar always contains a '.'.
	verb := "%#.*f"
	if pf.HasExponent {
		verb = "%#.*e"
	}
	return parseCanonicalNumber(fmt.Sprintf(verb, pf.Scale, f))
}

func prenormalizeDecimal(pf ParsedFormat, d *apd.Decimal) (parsedNumber, error) {
	switch d.Form {
	case apd.Infinite:
		return parsedNumber{negative: d.Negative, isInfinity: true}, nil
	case apd.NaN, apd.NaNSignaling:
		return parsedNumber{isNan: true}, nil
	}

	var s string
	var err error
	if pf.HasExponent {
		s, err = decimalSciString(d, pf.Scale)
	} else {
		s, err = decimalFixedString(d, pf.Scale)
	}
	if err != nil {
		return parsedNumber{}, err
	}
	return parseCanonicalNumber(s)
}

// decimalFixedString renders d the way the "%#.<scale>f" conversion renders
// a float: all integer digits, a decimal point, exactly scale fractional
// digits, rounding half away from zero.
func decimalFixedString(d *apd.Decimal, scale int) (string, error) {
	scale32, err := safecast.Conv[int32](scale)
	if err != nil {
		return "", errors.AssertionFailedf("fractional digit count %d out of range", scale)
	}

	// The quantized coefficient needs room for every integer digit plus the
	// requested fractional digits.
	need := d.NumDigits() + int64(scale) + 2
	if d.Exponent > 0 {
		need += int64(d.Exponent)
	}
	prec, err := safecast.Conv[uint32](need)
	if err != nil {
		return "", errors.AssertionFailedf("value too wide to format: %s", d.String())
	}

	ctx := apd.BaseContext.WithPrecision(prec)
	ctx.Rounding = apd.RoundHalfUp
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, d, -scale32); err != nil {
		return "", errors.AssertionFailedf("quantize %s to %d fractional digits: %v",
			d.String(), scale, err)
	}

	s := q.Text('f')
	if scale == 0 {
		s += "."
	}
	return s, nil
}

// decimalSciString renders d the way the "%#.<scale>e" conversion renders a
// float: one integer digit, a decimal point, exactly scale fractional
// digits, and a signed exponent of at least two digits.
func decimalSciString(d *apd.Decimal, scale int) (string, error) {
	if d.IsZero() {
		var b strings.Builder
		if d.Negative {
			b.WriteByte('-')
		}
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", scale))
		b.WriteString("e+00")
		return b.String(), nil
	}

	prec, err := safecast.Conv[uint32](scale + 1)
	if err != nil {
		return "", errors.AssertionFailedf("fractional digit count %d out of range", scale)
	}
	ctx := apd.BaseContext.WithPrecision(prec)
	ctx.Rounding = apd.RoundHalfUp
	var m apd.Decimal
	if _, err := ctx.Round(&m, d); err != nil {
		return "", errors.AssertionFailedf("round %s to %d significant digits: %v",
			d.String(), scale+1, err)
	}

	// The decimal exponent is recomputed after rounding: rounding can carry
	// into a new leading digit (9.99 at scale 0 becomes 1e+01).
	exp10 := m.NumDigits() - 1 + int64(m.Exponent)

	digits := m.Coeff.String()
	mantissa := digits[1:]
	if len(mantissa) > scale {
		// Digits beyond the requested scale are trailing zeros left over
		// from the coefficient representation.
		mantissa = mantissa[:scale]
	} else if len(mantissa) < scale {
		mantissa += strings.Repeat("0", scale-len(mantissa))
	}

	var b strings.Builder
	if m.Negative {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	b.WriteByte('.')
	b.WriteString(mantissa)
	fmt.Fprintf(&b, "e%+03d", exp10)
	return b.String(), nil
}

// parseCanonicalNumber decomposes a canonical "%#.Nf"/"%#.Ne" rendering. A
// string outside the canonical grammar is an internal invariant violation,
// not a user error.
func parseCanonicalNumber(s string) (parsedNumber, error) {
	var n parsedNumber
	switch s {
	case "inf":
		n.isInfinity = true
		return n, nil
	case "-inf":
		n.negative = true
		n.isInfinity = true
		return n, nil
	case "nan":
		n.isNan = true
		return n, nil
	}

	if !canonicalNumberRE.MatchString(s) {
		return parsedNumber{}, errors.AssertionFailedf("unexpected number rendering %q", s)
	}

	if ePos := strings.IndexByte(s, 'e'); ePos >= 0 {
		n.exponent = s[ePos+1:]
		s = s[:ePos]
	}

	dotPos := strings.IndexByte(s, '.')
	n.fractionalPart = s[dotPos+1:]

	if s[0] == '-' {
		n.negative = true
		n.integerPart = s[1:dotPos]
	} else {
		n.integerPart = s[:dotPos]
	}

	// A zero integer part is treated as absent integer digits.
	if n.integerPart == "0" {
		n.integerPart = ""
	}

	return n, nil
}
