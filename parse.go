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

import "github.com/cockroachdb/errors"

// OutputType identifies which of the four renderers a parsed format string
// selects.
type OutputType int

const (
	// OutputDecimal is the ordinary decimal rendering, e.g. "9,999.99".
	OutputDecimal OutputType = iota
	// OutputHexadecimal is selected by formats containing 'X', e.g. "0X0X".
	OutputHexadecimal
	// OutputRomanNumeral is selected by "RN" formats.
	OutputRomanNumeral
	// OutputTextMinimal is selected by "TM", "TME" and "TM9" formats.
	OutputTextMinimal
)

// ParsedFormat is the normalized description of a format string produced by
// the parser. It is immutable after parsing and may be cached and shared
// across goroutines.
//
// Elements holds only the render-time significant elements: digits, decimal
// points, group separators and the exponent marker. Sign, currency, 'FM',
// 'B' and the mode elements are recorded in the dedicated fields so that
// DecimalPointIndex stays an index into render positions only.
type ParsedFormat struct {
	OutputType OutputType
	Elements   []FormatElement

	// DecimalPointIndex is the index in Elements of the element terminating
	// the integer part: the decimal point if one exists, the exponent marker
	// if 'EEEE' is present without an explicit decimal point, and
	// len(Elements) otherwise. It is meaningful only for OutputDecimal.
	DecimalPointIndex int

	// HasFirstZero/IndexOfFirstZero locate the first '0' digit placeholder
	// in Elements. It controls leading-zero generation.
	HasFirstZero     bool
	IndexOfFirstZero int

	// NumIntegerDigit and Scale count the digit placeholders before and
	// after the decimal point.
	NumIntegerDigit int
	Scale           int

	// HasDecimalPoint/DecimalPoint record the decimal-point element ('.',
	// 'D' or 'V') if one appeared.
	HasDecimalPoint bool
	DecimalPoint    FormatElement

	// HasSign/Sign record the sign element ('S', 'MI' or 'PR') if one
	// appeared; SignAtFront is true only for a leading 'S'.
	HasSign     bool
	Sign        FormatElement
	SignAtFront bool

	// HasCurrency/Currency record the currency mark ('$', 'C' or 'L') if
	// one appeared.
	HasCurrency bool
	Currency    FormatElement

	// HasRoman/Roman and HasTm/Tm record the mode element, preserving case.
	HasRoman bool
	Roman    FormatElement
	HasTm    bool
	Tm       FormatElement

	HasFM       bool
	HasB        bool
	HasExponent bool
}

// parserState enumerates the states of the format-string state machine.
type parserState int

const (
	// stateStart is the initial state.
	stateStart parserState = iota
	// stateIntegerPart: consuming the integer part.
	stateIntegerPart
	// stateFractionalPart: consuming the fractional part.
	stateFractionalPart
	// stateAfterExponent: the exponent element has been consumed.
	stateAfterExponent
	// stateHexadecimal: consuming a hexadecimal format string.
	stateHexadecimal
	// stateAfterBackSign: the trailing sign has been consumed.
	stateAfterBackSign
	// stateRomanNumeral: consuming an "RN" format string.
	stateRomanNumeral
	// stateTextMinimal: consuming a "TM" format string.
	stateTextMinimal
)

// formatParser consumes a stream of format elements and accumulates a
// ParsedFormat, enforcing the positional rules through the state machine and
// the global co-occurrence rules through flags and final validation.
type formatParser struct {
	state             parserState
	hasX              bool
	has9              bool
	hasGroupSeparator bool
	digitCount        int
	decimalPointSet   bool

	pf ParsedFormat
}

// parseFormat parses a format string into a ParsedFormat.
func parseFormat(format string) (ParsedFormat, error) {
	var p formatParser
	return p.parse(format)
}

func (p *formatParser) parse(format string) (ParsedFormat, error) {
	if len(format) > FormatMaxOutputWidth {
		return ParsedFormat{}, formatErrorf(
			ErrFormatTooLong, "Format string too long; limit %d", FormatMaxOutputWidth)
	}

	for idx := 0; idx < len(format); {
		e, n, ok := nextFormatElement(format[idx:])
		if !ok {
			return ParsedFormat{}, formatErrorf(
				ErrInvalidFormatSyntax, "Invalid format element '%s'", format[idx:idx+1])
		}

		// Only the render-time significant elements enter Elements: digits,
		// decimal points, group separators and the exponent.
		switch e {
		case Digit0:
			p.pf.Elements = append(p.pf.Elements, e)
			if !p.pf.HasFirstZero {
				p.pf.HasFirstZero = true
				p.pf.IndexOfFirstZero = len(p.pf.Elements) - 1
			}
		case Digit9, DigitXUpper, DigitXLower,
			DecimalPointDot, DecimalPointD, ElementV,
			GroupSeparatorComma, GroupSeparatorG,
			ExponentUpper, ExponentLower:
			p.pf.Elements = append(p.pf.Elements, e)
		}

		idx += n
		if err := p.processElement(e); err != nil {
			return ParsedFormat{}, err
		}
	}

	if err := p.finalValidate(); err != nil {
		return ParsedFormat{}, err
	}

	switch {
	case p.pf.HasTm:
		p.pf.OutputType = OutputTextMinimal
	case p.pf.HasRoman:
		p.pf.OutputType = OutputRomanNumeral
	case p.hasX:
		p.pf.OutputType = OutputHexadecimal
	default:
		p.pf.OutputType = OutputDecimal
		p.pf.NumIntegerDigit = p.digitCount - p.pf.Scale

		// With a format like "9999" there is no decimal point; the integer
		// part covers all of Elements.
		if !p.decimalPointSet {
			p.pf.DecimalPointIndex = len(p.pf.Elements)
		}

		if p.pf.HasExponent {
			// At most one integer digit is kept when an exponent is present:
			// extra leading digits are dropped, so an elements array holding
			// "999.99EEEE" becomes "9.99EEEE". Group separators cannot
			// co-occur with the exponent, so everything before the decimal
			// point is a digit and DecimalPointIndex counts the integer
			// digits.
			if p.pf.DecimalPointIndex >= 2 {
				p.pf.Elements = p.pf.Elements[p.pf.DecimalPointIndex-1:]
				p.pf.DecimalPointIndex = 1
			}
		}
	}

	return p.pf, nil
}

// processElement handles one format element: flag elements are recorded
// without touching the state machine, everything else goes through the
// per-state handlers.
func (p *formatParser) processElement(e FormatElement) error {
	switch e {
	case CompactMode:
		if p.pf.HasFM {
			return formatErrorf(ErrInvalidFormatCombination, "'FM' cannot be repeated")
		}
		p.pf.HasFM = true
		return nil
	case CurrencyDollar, CurrencyCUpper, CurrencyCLower, CurrencyL:
		if p.pf.HasCurrency {
			return formatErrorf(
				ErrInvalidFormatCombination, "There can be at most one of '$', 'C' or 'L'")
		}
		p.pf.HasCurrency = true
		p.pf.Currency = e
		return nil
	case ElementB:
		if p.pf.HasB {
			return formatErrorf(ErrInvalidFormatCombination, "There can be at most one 'B'")
		}
		p.pf.HasB = true
		return nil
	}

	switch e {
	case Digit9, Digit0, DigitXUpper, DigitXLower:
		p.digitCount++
	}

	switch p.state {
	case stateStart:
		return p.onStart(e)
	case stateIntegerPart:
		return p.onIntegerPart(e)
	case stateFractionalPart:
		return p.onFractionalPart(e)
	case stateAfterExponent:
		return p.onAfterExponent(e)
	case stateAfterBackSign:
		return p.onAfterBackSign(e)
	case stateHexadecimal:
		return p.onHexadecimal(e)
	case stateTextMinimal:
		return formatErrorf(ErrInvalidFormatCombination,
			"'TM', 'TM9' or 'TME' cannot be combined with other format elements")
	case stateRomanNumeral:
		return formatErrorf(ErrInvalidFormatCombination,
			"'RN' cannot appear together with '%s'", e)
	}
	return errors.AssertionFailedf("unknown parser state %d", p.state)
}

func (p *formatParser) onStart(e FormatElement) error {
	switch e {
	case SignS:
		p.pf.HasSign = true
		p.pf.Sign = e
		p.pf.SignAtFront = true
		p.state = stateIntegerPart
	case SignMi, SignPr:
		return formatErrorf(ErrInvalidFormatCombination,
			"'%s' can only appear after all digits and 'EEEE'", e)
	case Digit9:
		p.has9 = true
		p.state = stateIntegerPart
	case Digit0:
		p.state = stateIntegerPart
	case DigitXUpper, DigitXLower:
		p.hasX = true
		p.state = stateHexadecimal
	case RomanUpper, RomanLower:
		p.pf.HasRoman = true
		p.pf.Roman = e
		p.state = stateRomanNumeral
	case DecimalPointDot, DecimalPointD, ElementV:
		p.setDecimalPoint(e)
		p.state = stateFractionalPart
	case TmUpper, TmLower, TmeUpper, TmeLower, Tm9Upper, Tm9Lower:
		p.pf.HasTm = true
		p.pf.Tm = e
		p.state = stateTextMinimal
	default:
		return formatErrorf(ErrInvalidFormatCombination, "Unexpected '%s'", e)
	}
	return nil
}

func (p *formatParser) onIntegerPart(e FormatElement) error {
	switch e {
	case SignS, SignMi, SignPr:
		return p.setBackSign(e)
	case ExponentUpper, ExponentLower:
		if p.hasGroupSeparator {
			return formatErrorf(ErrInvalidFormatCombination,
				"',' or 'G' cannot appear together with 'EEEE'")
		}
		p.state = stateAfterExponent
		p.pf.HasExponent = true
		p.pf.DecimalPointIndex = len(p.pf.Elements) - 1
		p.decimalPointSet = true
	case DigitXUpper, DigitXLower:
		if p.has9 {
			return formatErrorf(ErrInvalidFormatCombination,
				"'X' cannot appear together with '9'")
		}
		if p.hasGroupSeparator {
			return formatErrorf(ErrInvalidFormatCombination,
				"'X' cannot appear together with ',' or 'G'")
		}
		// Reached when the format string starts with something like "0X".
		p.hasX = true
		p.state = stateHexadecimal
	case Digit9:
		p.has9 = true
	case Digit0:
	case GroupSeparatorComma, GroupSeparatorG:
		p.hasGroupSeparator = true
	case DecimalPointDot, DecimalPointD, ElementV:
		// A decimal point seen before this state would have moved the
		// machine to stateFractionalPart already.
		if p.pf.HasDecimalPoint {
			return errors.AssertionFailedf(
				"decimal point already set while in the integer part")
		}
		p.setDecimalPoint(e)
		p.state = stateFractionalPart
	case TmUpper, TmLower, TmeUpper, TmeLower, Tm9Upper, Tm9Lower:
		return formatErrorf(ErrInvalidFormatCombination,
			"'TM', 'TM9' or 'TME' cannot be combined with other format elements")
	default:
		return formatErrorf(ErrInvalidFormatCombination, "Unexpected '%s'", e)
	}
	return nil
}

func (p *formatParser) onFractionalPart(e FormatElement) error {
	switch e {
	case Digit0, Digit9:
		p.pf.Scale++
	case DigitXUpper, DigitXLower:
		return formatErrorf(ErrInvalidFormatCombination,
			"'X' cannot appear together with '%s'", p.pf.DecimalPoint)
	case ExponentUpper, ExponentLower:
		if p.hasGroupSeparator {
			return formatErrorf(ErrInvalidFormatCombination,
				"',' or 'G' cannot appear together with 'EEEE'")
		}
		p.state = stateAfterExponent
		p.pf.HasExponent = true
	case SignS, SignMi, SignPr:
		return p.setBackSign(e)
	case DecimalPointDot, DecimalPointD, ElementV:
		return formatErrorf(ErrInvalidFormatCombination,
			"There can be at most one of '.', 'D', or 'V'")
	case GroupSeparatorComma, GroupSeparatorG:
		return formatErrorf(ErrInvalidFormatCombination,
			"',' or 'G' cannot appear after '.', 'D' or 'V'")
	default:
		return formatErrorf(ErrInvalidFormatCombination, "Unexpected '%s'", e)
	}
	return nil
}

func (p *formatParser) onAfterExponent(e FormatElement) error {
	switch e {
	case SignS, SignMi, SignPr:
		return p.setBackSign(e)
	case GroupSeparatorComma, GroupSeparatorG:
		return formatErrorf(ErrInvalidFormatCombination,
			"',' or 'G' cannot appear together with 'EEEE'")
	default:
		return formatErrorf(ErrInvalidFormatCombination,
			"'%s' cannot appear after 'EEEE'", e)
	}
}

func (p *formatParser) onAfterBackSign(e FormatElement) error {
	switch e {
	case Digit0, Digit9, DigitXUpper, DigitXLower, ExponentUpper, ExponentLower:
		if p.pf.Sign == SignS {
			return formatErrorf(ErrInvalidFormatCombination,
				"'S' can only appear before or after all digits and 'EEEE'")
		}
		return formatErrorf(ErrInvalidFormatCombination,
			"'%s' can only appear after all digits and 'EEEE'", p.pf.Sign)
	default:
		return formatErrorf(ErrInvalidFormatCombination,
			"Unexpected format element '%s'", e)
	}
}

func (p *formatParser) onHexadecimal(e FormatElement) error {
	switch e {
	case Digit0, DigitXUpper, DigitXLower:
	case SignS, SignMi, SignPr:
		return p.setBackSign(e)
	default:
		return formatErrorf(ErrInvalidFormatCombination,
			"'X' cannot appear together with '%s'", e)
	}
	return nil
}

// setBackSign records a sign element seen after digits, rejecting a second
// sign. A leading 'S' is handled in onStart and keeps SignAtFront.
func (p *formatParser) setBackSign(e FormatElement) error {
	if p.pf.HasSign {
		return formatErrorf(ErrInvalidFormatCombination,
			"There can be at most one of 'S', 'MI', or 'PR'")
	}
	p.pf.HasSign = true
	p.pf.Sign = e
	p.state = stateAfterBackSign
	return nil
}

func (p *formatParser) setDecimalPoint(e FormatElement) {
	p.pf.HasDecimalPoint = true
	p.pf.DecimalPoint = e
	p.pf.DecimalPointIndex = len(p.pf.Elements) - 1
	p.decimalPointSet = true
}

// finalValidate enforces the co-occurrence rules that can only be checked
// once the whole element stream has been consumed.
func (p *formatParser) finalValidate() error {
	if p.pf.HasCurrency {
		switch {
		case p.pf.HasTm:
			return formatErrorf(ErrInvalidFormatCombination,
				"'TM', 'TM9' or 'TME' cannot be combined with other format elements")
		case p.hasX:
			return formatErrorf(ErrInvalidFormatCombination,
				"'X' cannot appear together with '%s'", p.pf.Currency)
		case p.pf.HasRoman:
			return formatErrorf(ErrInvalidFormatCombination,
				"'RN' cannot appear together with '%s'", p.pf.Currency)
		}
	}

	if p.pf.HasB {
		switch {
		case p.pf.HasTm:
			return formatErrorf(ErrInvalidFormatCombination,
				"'TM', 'TM9' or 'TME' cannot be combined with other format elements")
		case p.hasX:
			return formatErrorf(ErrInvalidFormatCombination,
				"'X' cannot appear together with 'B'")
		case p.pf.HasRoman:
			return formatErrorf(ErrInvalidFormatCombination,
				"'RN' cannot appear together with 'B'")
		}
	}

	if p.pf.HasFM && p.pf.HasTm {
		return formatErrorf(ErrInvalidFormatCombination,
			"'TM', 'TM9' or 'TME' cannot be combined with other format elements")
	}

	if p.pf.HasTm || p.pf.HasRoman {
		return nil
	}

	if p.digitCount == 0 {
		return formatErrorf(ErrEmptyDigits,
			"Format string must contain at least one of 'X', '0' or '9'")
	}

	if p.hasX && p.digitCount > 16 {
		return formatErrorf(ErrHexTooLong, "Max number of 'X' is 16")
	}

	return nil
}
