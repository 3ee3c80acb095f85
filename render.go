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
	"strings"

	"github.com/cockroachdb/errors"
)

// formatAsDecimal renders v under a format string with the decimal output
// type.
func formatAsDecimal(pf ParsedFormat, v Datum) (string, error) {
	n, err := prenormalize(pf, v)
	if err != nil {
		return "", err
	}
	return renderDecimal(pf, n)
}

// renderDecimal assembles the output string from the parsed format and the
// canonical number:
//
//	left_padding || sign.prefix || currency || integer || fractional || sign.suffix
func renderDecimal(pf ParsedFormat, n parsedNumber) (string, error) {
	if n.isInfinity || n.isNan {
		return "", unimplementedf("INF/NAN is not supported yet")
	}
	if pf.HasB || pf.HasFM {
		return "", unimplementedf("'B', 'FM', sign and currency are not implemented yet")
	}

	fractional, err := fractionalOutput(pf, n)
	if err != nil {
		return "", err
	}

	integerText := ""
	leftPaddingSize := pf.DecimalPointIndex

	if pf.NumIntegerDigit > 0 && generateIntegerPart(pf, n) {
		integerText, leftPaddingSize, err = integerOutput(pf, n)
		if err != nil {
			return "", err
		}
	}

	currency, err := currencyOutput(pf)
	if err != nil {
		return "", err
	}
	prefix, suffix, err := signOutput(n.negative, pf)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(leftPaddingSize + len(prefix) + len(currency) +
		len(integerText) + len(fractional) + len(suffix))
	b.WriteString(strings.Repeat(" ", leftPaddingSize))
	b.WriteString(prefix)
	b.WriteString(currency)
	b.WriteString(integerText)
	b.WriteString(fractional)
	b.WriteString(suffix)
	return b.String(), nil
}

// overflows reports whether the value has more integer digits than the
// format provides. Overflow turns every digit slot, in the integer and the
// fractional part, into '#' and the exponent into "####".
func overflows(pf ParsedFormat, n parsedNumber) bool {
	return len(n.integerPart) > pf.NumIntegerDigit
}

// generateIntegerPart decides whether any integer-part output is produced.
// For value 0.12 and format "9.99" it is suppressed and the output is
// "  .12"; a '0' placeholder before the decimal point, an exponent, or an
// empty fractional part all force it back on.
func generateIntegerPart(pf ParsedFormat, n parsedNumber) bool {
	switch {
	case n.integerPart != "":
		return true
	case pf.HasExponent:
		return true
	case pf.HasFirstZero && pf.IndexOfFirstZero < pf.DecimalPointIndex:
		return true
	case n.fractionalPart == "":
		return true
	}
	return false
}

// fractionalOutput walks the format elements forward from the decimal point
// and emits the fractional part, the decimal point itself, and the exponent.
func fractionalOutput(pf ParsedFormat, n parsedNumber) (string, error) {
	var b strings.Builder
	overflow := overflows(pf, n)
	fractionalIdx := 0
	for i := pf.DecimalPointIndex; i < len(pf.Elements); i++ {
		switch pf.Elements[i] {
		case DecimalPointDot, DecimalPointD:
			b.WriteByte('.')
		case ElementV:
			// 'V' generates no output.
		case Digit9, Digit0:
			if overflow {
				b.WriteByte('#')
			} else if fractionalIdx < len(n.fractionalPart) {
				b.WriteByte(n.fractionalPart[fractionalIdx])
			}
			// A fractional part shorter than the scale only happens in
			// compact mode, where missing digits stay blank.
			fractionalIdx++
		case ExponentLower:
			if overflow {
				b.WriteString("####")
			} else {
				b.WriteByte('e')
				b.WriteString(n.exponent)
			}
		case ExponentUpper:
			if overflow {
				b.WriteString("####")
			} else {
				b.WriteByte('E')
				b.WriteString(n.exponent)
			}
		default:
			return "", errors.AssertionFailedf(
				"unexpected format element %q at index %d", pf.Elements[i].String(), i)
		}
	}
	return b.String(), nil
}

// integerOutput walks the format elements backward from the decimal point
// and emits the integer part. It returns the emitted text and the number of
// spaces to pad on the left: positions before the first emitted element
// become padding, so for value 12.3 and format "9999.99" the result is
// ("12", 2).
func integerOutput(pf ParsedFormat, n parsedNumber) (string, int, error) {
	overflow := overflows(pf, n)
	integerPart := n.integerPart
	if integerPart == "" {
		integerPart = "0"
	}

	// The output is generated backward and reversed at the end.
	buf := make([]byte, 0, pf.DecimalPointIndex)
	integerIdx := len(integerPart) - 1
	formatIdx := pf.DecimalPointIndex - 1
	for ; formatIdx >= 0; formatIdx-- {
		if integerIdx < 0 {
			// All value digits are emitted; keep going only while a '0'
			// placeholder at or before this position forces leading zeros.
			if !(pf.HasFirstZero && formatIdx >= pf.IndexOfFirstZero) {
				break
			}
		}

		switch pf.Elements[formatIdx] {
		case Digit0, Digit9:
			if overflow {
				buf = append(buf, '#')
			} else if integerIdx >= 0 {
				buf = append(buf, integerPart[integerIdx])
			} else {
				buf = append(buf, '0')
			}
			integerIdx--
		case GroupSeparatorComma, GroupSeparatorG:
			buf = append(buf, ',')
		default:
			return "", 0, errors.AssertionFailedf(
				"unexpected format element %q at index %d",
				pf.Elements[formatIdx].String(), formatIdx)
		}
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), formatIdx + 1, nil
}

// currencyOutput maps the currency mark to its output: '$' and 'L' emit
// "$", 'C' emits "usd" or "USD" following its letter case.
func currencyOutput(pf ParsedFormat) (string, error) {
	if !pf.HasCurrency {
		return "", nil
	}
	switch pf.Currency {
	case CurrencyDollar, CurrencyL:
		return "$", nil
	case CurrencyCLower:
		return "usd", nil
	case CurrencyCUpper:
		return "USD", nil
	}
	return "", errors.AssertionFailedf("unexpected currency element %q", pf.Currency.String())
}

// signOutput produces the sign prefix and suffix. Without an explicit sign
// element the prefix is "-" for negatives and " " otherwise.
func signOutput(negative bool, pf ParsedFormat) (prefix, suffix string, err error) {
	if !pf.HasSign {
		if negative {
			return "-", "", nil
		}
		return " ", "", nil
	}
	switch pf.Sign {
	case SignS:
		s := "+"
		if negative {
			s = "-"
		}
		if pf.SignAtFront {
			return s, "", nil
		}
		return "", s, nil
	case SignMi:
		if negative {
			return "", "-", nil
		}
		return "", " ", nil
	case SignPr:
		if negative {
			return "<", ">", nil
		}
		return " ", " ", nil
	}
	return "", "", errors.AssertionFailedf("unexpected sign element %q", pf.Sign.String())
}
