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

// Package tochar renders numeric values into strings under the control of
// Oracle-style TO_CHAR numeric format strings.
//
// A format string is a sequence of format elements: digit placeholders ('0',
// '9', 'X'), decimal points ('.', 'D', 'V'), group separators (',', 'G'),
// sign markers ('S', 'MI', 'PR'), currency marks ('$', 'C', 'L'), the
// exponent marker ('EEEE'), and the mode elements 'RN', 'TM', 'TM9', 'TME',
// 'FM' and 'B'. Matching is case-insensitive; letter case is preserved where
// it affects output ('EEEE' emits 'e' or 'E', 'C' emits "usd" or "USD").
//
// For example:
//
//	NumericalToStringWithFormat(DFloat(1.2), "9.99", ProductInternal)  // " 1.20"
//	NumericalToStringWithFormat(DInt(-3), "9", ProductInternal)        // "-3"
//	NumericalToStringWithFormat(DInt(12345), "9,999", ProductInternal) // " #,###"
//
// Format strings are validated against a rich set of co-occurrence rules
// before rendering; ValidateFormat runs the validation alone. Every
// diagnostic is a single line prefixed "Error in format string:" and is
// classified by one of the exported sentinel errors.
//
// The package is purely functional: no shared mutable state, no I/O. A
// ParsedFormat is immutable once produced and may be shared across
// goroutines without synchronization.
//
// The hexadecimal, Roman-numeral and text-minimal output modes, the 'B' and
// 'FM' flags, and infinities and NaNs are recognized by the parser but not
// rendered; rendering them returns an error marked ErrUnimplemented.
package tochar
