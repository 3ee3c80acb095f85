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

// Sentinel errors classifying format-string diagnostics. Errors returned by
// this package, other than internal assertion failures, are marked with one
// of these reference errors; use errors.Is
// to test for them. The error message, not the sentinel, carries the
// user-facing diagnostic.
var (
	// ErrInvalidFormatSyntax: the format string contains a character that is
	// not part of any format element.
	ErrInvalidFormatSyntax = errors.New("invalid format element")

	// ErrInvalidFormatCombination: all format elements are recognized but
	// their arrangement is illegal (duplicate sign, 'X' with '9', a group
	// separator with 'EEEE', ...).
	ErrInvalidFormatCombination = errors.New("invalid format element combination")

	// ErrFormatTooLong: the format string exceeds FormatMaxOutputWidth.
	ErrFormatTooLong = errors.New("format string too long")

	// ErrEmptyDigits: the format string contains no 'X', '0' or '9' and is
	// not a Roman-numeral or text-minimal format.
	ErrEmptyDigits = errors.New("format string contains no digit element")

	// ErrHexTooLong: a hexadecimal format string has more than 16 digit
	// elements.
	ErrHexTooLong = errors.New("too many hexadecimal digit elements")

	// ErrUnimplemented: the format is valid but requests an output mode that
	// is not implemented ('B', 'FM', INF/NAN, and the hexadecimal,
	// Roman-numeral and text-minimal output types).
	ErrUnimplemented = errors.New("unimplemented")
)

const errPrefix = "Error in format string: "

// formatErrorf builds a format-string diagnostic and marks it with the given
// sentinel. All diagnostics share the "Error in format string:" prefix so
// that they surface to SQL clients as a single recognizable line.
func formatErrorf(kind error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(errPrefix+format, args...), kind)
}

// unimplementedf builds an error for a recognized-but-unsupported mode.
func unimplementedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnimplemented)
}
