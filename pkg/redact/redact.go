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

// Package redact rewrites the phone numbers found in text.
package redact

import (
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
	"github.com/google/exposure-notifications-phonenumbers/pkg/scanner"
)

// Placeholder replaces a number when no digits would remain hidden.
const Placeholder = "[PHONE]"

// ReplaceFunc returns the replacement for a match.
type ReplaceFunc func(m *scanner.Match) string

// Replace returns text with every candidate found by s replaced by the result
// of fn. If s is nil, a scanner with no hint is used.
func Replace(s *scanner.Scanner, text string, fn ReplaceFunc) string {
	if s == nil {
		s, _ = scanner.New(nil, nil)
	}

	c := s.Cursor(text)
	m, ok := c.Next()
	if !ok {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for ; ok; m, ok = c.Next() {
		b.WriteString(text[last:m.Start])
		b.WriteString(fn(m))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Redact replaces every candidate with stars followed by its last visible
// digits. A candidate is replaced by Placeholder if visible is zero or would
// reveal every digit.
func Redact(s *scanner.Scanner, text string, visible int) string {
	return Replace(s, text, func(m *scanner.Match) string {
		return Mask(m.Raw, visible)
	})
}

// Mask hides all but the last visible digits of raw, dropping separators.
func Mask(raw string, visible int) string {
	digits := make([]byte, 0, len(raw))
	for _, r := range raw {
		if phonenumber.IsDigit(r) {
			digits = append(digits, byte(r))
		}
	}

	if visible <= 0 || visible >= len(digits) {
		return Placeholder
	}

	hidden := len(digits) - visible
	return strings.Repeat("*", hidden) + string(digits[hidden:])
}
