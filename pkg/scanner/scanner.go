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

// Package scanner finds phone numbers in free-form text.
//
// Candidates are found with a single greedy left-to-right pass. A candidate
// starts at a digit, or at a plus or opening parenthesis immediately followed
// by a digit. A digit start must not follow a letter or digit, and a plus or
// parenthesis start must not follow a digit. It extends over digits and the
// separators space, dash, parentheses, and dot. It ends at any other rune, at a
// second plus, at the same separator twice in a row, at a third consecutive
// separator, or once it holds 15 digits. A run that would continue with more
// digits past that point is reported as too long.
//
// The scan never backtracks, so two numbers separated only by a single space
// are read as one candidate.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// Config configures a Scanner.
type Config struct {
	// Hint is the country assumed for numbers written without an international
	// prefix.
	Hint string

	// MinDigits is the fewest digits a candidate must contain to be reported.
	// If zero, it defaults to the shortest full international number in the
	// table, or the hint country's shortest national number if that is
	// smaller.
	MinDigits int
}

// Match is a candidate found in text. Start and End are byte offsets into the
// scanned text; Raw is text[Start:End].
type Match struct {
	Raw   string `json:"raw"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	// Normalized is the E.164 form of a resolved number, or the bare digits of
	// an unresolved one. It is only set when HasNormalized is true.
	Normalized    string `json:"normalized,omitempty"`
	HasNormalized bool   `json:"-"`

	// Valid is true when the candidate resolved to a country.
	Valid bool `json:"valid"`

	// Number is the parsed number, or nil if parsing failed.
	Number *phonenumber.PhoneNumber `json:"-"`

	// Err is the parse failure, if any.
	Err error `json:"-"`
}

// Scanner finds phone numbers in text. It is safe for concurrent use.
type Scanner struct {
	engine    *phonenumber.Engine
	hint      string
	minDigits int
}

// New creates a scanner. If engine is nil, phonenumber.Default is used. If
// cfg is nil, the zero Config is used.
func New(engine *phonenumber.Engine, cfg *Config) (*Scanner, error) {
	if engine == nil {
		engine = phonenumber.Default()
	}
	if cfg == nil {
		cfg = new(Config)
	}
	if cfg.MinDigits < 0 {
		return nil, fmt.Errorf("min digits must be positive, got %d", cfg.MinDigits)
	}

	table := engine.Table()

	min := table.MinE164Length()
	hint := ""
	if cfg.Hint != "" {
		c, ok := table.Lookup(cfg.Hint)
		if !ok {
			return nil, fmt.Errorf("%w: %q", phonenumber.ErrUnknownCountry, cfg.Hint)
		}
		hint = c.Code
		if l := c.MinLength(); l < min {
			min = l
		}
	}
	if cfg.MinDigits > 0 {
		min = cfg.MinDigits
	}

	return &Scanner{
		engine:    engine,
		hint:      hint,
		minDigits: min,
	}, nil
}

// MinDigits returns the fewest digits a reported candidate contains.
func (s *Scanner) MinDigits() int {
	return s.minDigits
}

// Scan returns every candidate in text using the default engine and no hint.
func Scan(text string) []*Match {
	s, _ := New(nil, nil)
	return s.Scan(text)
}

// Scan returns every candidate in text, in order.
func (s *Scanner) Scan(text string) []*Match {
	var out []*Match
	c := s.Cursor(text)
	for {
		m, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// ScanValid returns only the candidates that resolved to a country.
func (s *Scanner) ScanValid(text string) []*Match {
	var out []*Match
	c := s.Cursor(text)
	for {
		m, ok := c.Next()
		if !ok {
			return out
		}
		if m.Valid {
			out = append(out, m)
		}
	}
}

// Count returns the number of candidates in text.
func (s *Scanner) Count(text string) int {
	n := 0
	c := s.Cursor(text)
	for {
		if _, ok := c.Next(); !ok {
			return n
		}
		n++
	}
}

// Cursor returns a lazy iterator over the candidates in text.
func (s *Scanner) Cursor(text string) *Cursor {
	return &Cursor{scanner: s, text: text}
}

// Cursor iterates over candidates. It is not safe for concurrent use.
type Cursor struct {
	scanner *Scanner
	text    string
	pos     int
}

// Next returns the next candidate. It returns false when the text is
// exhausted.
func (c *Cursor) Next() (*Match, bool) {
	for c.pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		if !c.isStart(c.pos, r, size) {
			c.pos += size
			continue
		}

		run := scanRun(c.text, c.pos)
		c.pos = run.next
		if run.digits < c.scanner.minDigits && !run.tooLong {
			continue
		}
		return c.scanner.match(c.text, run), true
	}
	return nil, false
}

// Reset rewinds the cursor to the start of the text.
func (c *Cursor) Reset() {
	c.pos = 0
}

// isStart reports whether a candidate can begin at byte offset pos.
func (c *Cursor) isStart(pos int, r rune, size int) bool {
	switch {
	case phonenumber.IsDigit(r):
	case r == '+' || r == '(':
		next, _ := utf8.DecodeRuneInString(c.text[pos+size:])
		if !phonenumber.IsDigit(next) {
			return false
		}
	default:
		return false
	}

	if pos == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(c.text[:pos])
	if r == '+' || r == '(' {
		return !phonenumber.IsDigit(prev)
	}
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

type run struct {
	start, end int
	next       int
	digits     int
	tooLong    bool
}

// scanRun consumes a candidate starting at pos. The returned end excludes
// trailing separators.
func scanRun(text string, pos int) run {
	out := run{start: pos, end: pos}

	var lastSep rune
	seps := 0

	i := pos
	if text[i] == '+' {
		i++
	}

loop:
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case phonenumber.IsDigit(r):
			out.digits++
			i += size
			out.end = i
			seps = 0

			if out.digits == phonenumber.MaxDigits {
				if over := overflow(text, i); over > i {
					out.tooLong = true
					out.next = over
					return out
				}
				break loop
			}

		case phonenumber.IsSeparator(r):
			if (seps > 0 && r == lastSep) || seps >= 2 {
				break loop
			}
			seps++
			lastSep = r
			i += size

		default:
			break loop
		}
	}

	out.next = out.end
	return out
}

// overflow continues a run that reached the digit cap at pos, following the
// same separator rules. It returns the end of the last digit found past the
// cap, or pos when the run ends without another digit.
func overflow(text string, pos int) int {
	end := pos

	var lastSep rune
	seps := 0

	for i := pos; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case phonenumber.IsDigit(r):
			i += size
			end = i
			seps = 0
		case phonenumber.IsSeparator(r):
			if (seps > 0 && r == lastSep) || seps >= 2 {
				return end
			}
			seps++
			lastSep = r
			i += size
		default:
			return end
		}
	}
	return end
}

func (s *Scanner) match(text string, r run) *Match {
	raw := text[r.start:r.end]
	m := &Match{
		Raw:   raw,
		Start: r.start,
		End:   r.end,
	}

	if r.tooLong {
		m.Err = &phonenumber.Error{Kind: phonenumber.ErrTooLong, Input: raw, Offset: -1}
		return m
	}

	n, err := s.engine.Parse(raw, s.hint)
	if err != nil {
		m.Err = err
		return m
	}

	m.Number = n
	m.Valid = n.Valid()
	m.HasNormalized = true
	m.Normalized = n.String()
	return m
}
