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

// ProductMode selects between the internal and external SQL dialects of the
// calling analyzer. Numeric rendering is identical in both modes; the
// parameter exists so that callers thread their mode through uniformly.
type ProductMode int

const (
	// ProductInternal is the dialect used inside the engine.
	ProductInternal ProductMode = iota
	// ProductExternal is the dialect exposed to external callers.
	ProductExternal
)

// FormatMaxOutputWidth caps the length of accepted format strings. Formats
// longer than this fail with ErrFormatTooLong. It is read at the start of
// each parse; changing it mid-call has no effect on calls already running.
var FormatMaxOutputWidth = 1024

// ValidateFormat checks a numeric format string and returns the first
// diagnostic, or nil if the format is valid. It accepts every format the
// parser accepts, including the output modes the renderer does not
// implement; use it for catalog and DDL validation.
func ValidateFormat(format string) error {
	_, err := parseFormat(format)
	return err
}

// NumericalToStringWithFormat renders v under the given format string.
func NumericalToStringWithFormat(v Datum, format string, mode ProductMode) (string, error) {
	if v == nil {
		return "", errors.AssertionFailedf("nil value")
	}

	pf, err := parseFormat(format)
	if err != nil {
		return "", err
	}

	switch pf.OutputType {
	case OutputDecimal:
		return formatAsDecimal(pf, v)
	case OutputTextMinimal:
		return "", unimplementedf("Text minimal output is not supported yet")
	case OutputHexadecimal:
		return "", unimplementedf("Hexadecimal output is not supported yet")
	case OutputRomanNumeral:
		return "", unimplementedf("Roman numeral output is not supported yet")
	}
	return "", errors.AssertionFailedf("unknown output type %d", pf.OutputType)
}

// ParseForTest exposes the parse output so that tests can assert on the
// normalized format description.
func ParseForTest(format string) (ParsedFormat, error) {
	return parseFormat(format)
}
