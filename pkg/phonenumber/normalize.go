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
	"fmt"
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
)

// MaxDigits is the longest digit sequence permitted by E.164.
const MaxDigits = 15

// Normalized is the output of Normalize.
type Normalized struct {
	// Digits is the canonical digit string with formatting, IDD, and trunk
	// artifacts removed.
	Digits string

	// HadExplicitPlus is true if the input began with a plus sign.
	HadExplicitPlus bool

	// International is true if the digits begin with a calling code, either
	// because of an explicit plus or an international access code.
	International bool
}

// String returns the digits, prefixed with a plus when they are international.
func (n *Normalized) String() string {
	if n.International {
		return "+" + n.Digits
	}
	return n.Digits
}

// IsSeparator reports whether r is a formatting character permitted between
// digits.
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '-', '(', ')', '.':
		return true
	}
	return false
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Normalize strips formatting from raw using the default table. See
// Engine.Normalize.
func Normalize(raw, hint string) (*Normalized, error) {
	return Default().Normalize(raw, hint)
}

// Normalize validates the character set of raw and reduces it to a digit
// string. Surrounding spaces are ignored; any other whitespace is an invalid
// character.
//
// A single leading plus is permitted and recorded. A leading "00" (or "011"
// when the hint is a North American country) is treated as an international
// access code. Leading zeros after an international prefix are dropped. When a
// hint is supplied and the number is not international, the hint's trunk
// prefix is removed if that turns an invalid national length into a valid one.
// Without a hint, leading zeros are dropped.
//
// The result is stable: normalizing the result's String form again with the
// same hint returns the same Digits.
func (e *Engine) Normalize(raw, hint string) (*Normalized, error) {
	var country *countries.Country
	if hint != "" {
		c, ok := e.table.Lookup(hint)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, hint)
		}
		country = c
	}
	return normalize(raw, country)
}

func normalize(raw string, hint *countries.Country) (*Normalized, error) {
	start := len(raw) - len(strings.TrimLeft(raw, " "))
	trimmed := strings.Trim(raw, " ")

	var n Normalized
	digits := make([]byte, 0, len(trimmed))

	for i, r := range trimmed {
		switch {
		case IsDigit(r):
			digits = append(digits, byte(r))
		case r == '+':
			if i != 0 {
				return nil, newError(ErrMultiplePlusSigns, raw, start+i)
			}
			n.HadExplicitPlus = true
		case IsSeparator(r):
		default:
			return nil, newError(ErrInvalidCharacter, raw, start+i)
		}
	}

	s := string(digits)
	n.International = n.HadExplicitPlus

	if !n.International {
		if idd := internationalPrefix(s, hint); idd != "" {
			s = s[len(idd):]
			n.International = true
		}
	}

	switch {
	case n.International:
		s = strings.TrimLeft(s, "0")
	case hint != nil:
		s = stripTrunk(s, hint)
	default:
		s = strings.TrimLeft(s, "0")
	}

	if len(s) == 0 {
		return nil, newError(ErrTooShort, raw, -1)
	}
	if len(s) > MaxDigits {
		return nil, newError(ErrTooLong, raw, -1)
	}

	n.Digits = s
	return &n, nil
}

// internationalPrefix returns the international access code at the start of
// s, if any.
func internationalPrefix(s string, hint *countries.Country) string {
	if hint != nil && hint.CallingCode == 1 && strings.HasPrefix(s, "011") {
		return "011"
	}
	if strings.HasPrefix(s, "00") {
		return "00"
	}
	return ""
}

// stripTrunk removes the country's trunk prefix once, but only when s is not
// already a valid national length and the remainder is.
func stripTrunk(s string, c *countries.Country) string {
	t := c.TrunkPrefix
	if t == "" || !strings.HasPrefix(s, t) || c.ValidLength(len(s)) {
		return s
	}
	rest := s[len(t):]
	if !c.ValidLength(len(rest)) || internationalPrefix(rest, c) != "" {
		return s
	}
	return rest
}
