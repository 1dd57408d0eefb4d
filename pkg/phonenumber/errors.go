// Copyright 2022 the Exposure Notifications Verification Server authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phonenumber

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when the input contains a rune that is not
	// a digit, a leading plus, or a formatting separator.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrTooShort is returned when the input has too few digits to be a phone
	// number.
	ErrTooShort = errors.New("too few digits")

	// ErrTooLong is returned when the input has more digits than any E.164
	// number.
	ErrTooLong = errors.New("too many digits")

	// ErrMultiplePlusSigns is returned when a plus sign appears anywhere other
	// than the first position.
	ErrMultiplePlusSigns = errors.New("plus sign is only permitted at the start")

	// ErrUnresolved indicates no calling code and length combination matched.
	ErrUnresolved = errors.New("no matching country")

	// ErrAmbiguousCountry indicates the number matched several countries that
	// share a calling code and was attributed to the calling code's default.
	ErrAmbiguousCountry = errors.New("ambiguous country")

	// ErrUnknownCountry is returned when a country hint is not in the table.
	ErrUnknownCountry = errors.New("unknown country")
)

// Error is a normalization failure. It wraps one of the sentinel errors above
// and records where in the input the failure was detected.
type Error struct {
	// Kind is the sentinel error.
	Kind error

	// Input is the original input.
	Input string

	// Offset is the byte offset into Input, or -1 if the failure does not
	// correspond to a single position.
	Offset int
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d in %q", e.Kind, e.Offset, e.Input)
	}
	return fmt.Sprintf("%s in %q", e.Kind, e.Input)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, input string, offset int) *Error {
	return &Error{Kind: kind, Input: input, Offset: offset}
}
