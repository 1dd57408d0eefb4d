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

package scanner

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// result is the comparable subset of a Match.
type result struct {
	Raw        string
	Start      int
	End        int
	Normalized string
	Valid      bool
	Country    string
}

func results(matches []*Match) []result {
	out := make([]result, 0, len(matches))
	for _, m := range matches {
		r := result{
			Raw:        m.Raw,
			Start:      m.Start,
			End:        m.End,
			Normalized: m.Normalized,
			Valid:      m.Valid,
		}
		if m.Number != nil && m.Number.Country() != nil {
			r.Country = m.Number.Country().Code
		}
		out = append(out, r)
	}
	return out
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		hint string
		want []result
	}{
		{
			name: "empty",
			text: "",
			want: []result{},
		},
		{
			name: "no_numbers",
			text: "nothing to see here, call 911 maybe",
			want: []result{},
		},
		{
			name: "two_international",
			text: "Call me at +12025550173 or +442079460958 for support.",
			want: []result{
				{Raw: "+12025550173", Start: 11, End: 23, Normalized: "+12025550173", Valid: true, Country: "US"},
				{Raw: "+442079460958", Start: 27, End: 40, Normalized: "+442079460958", Valid: true, Country: "GB"},
			},
		},
		{
			name: "formats_with_hint",
			text: "Numbers: (202) 555-0173, 202.555.0174, 202-555-0175",
			hint: "US",
			want: []result{
				{Raw: "(202) 555-0173", Start: 9, End: 23, Normalized: "+12025550173", Valid: true, Country: "US"},
				{Raw: "202.555.0174", Start: 25, End: 37, Normalized: "+12025550174", Valid: true, Country: "US"},
				{Raw: "202-555-0175", Start: 39, End: 51, Normalized: "+12025550175", Valid: true, Country: "US"},
			},
		},
		{
			name: "formats_without_hint",
			text: "Numbers: (202) 555-0173",
			want: []result{
				{Raw: "(202) 555-0173", Start: 9, End: 23, Normalized: "+2025550173", Valid: true, Country: "EG"},
			},
		},
		{
			name: "second_plus_ends_run",
			text: "Call +1 202 555 0173 +44 20 7946 0958",
			want: []result{
				{Raw: "+1 202 555 0173", Start: 5, End: 20, Normalized: "+12025550173", Valid: true, Country: "US"},
				{Raw: "+44 20 7946 0958", Start: 21, End: 37, Normalized: "+442079460958", Valid: true, Country: "GB"},
			},
		},
		{
			name: "no_start_after_letter",
			text: "Order A12025550173 or ref 5550173x",
			want: []result{
				{Raw: "5550173", Start: 26, End: 33, Normalized: "5550173", Valid: false},
			},
		},
		{
			name: "plus_after_letter",
			text: "abc+12025550173",
			want: []result{
				{Raw: "+12025550173", Start: 3, End: 15, Normalized: "+12025550173", Valid: true, Country: "US"},
			},
		},
		{
			name: "parenthesis_after_letter",
			text: "tel(202) 555-0173",
			hint: "US",
			want: []result{
				{Raw: "(202) 555-0173", Start: 3, End: 17, Normalized: "+12025550173", Valid: true, Country: "US"},
			},
		},
		{
			name: "short_runs_discarded",
			text: "Valid: +12025550173, Invalid: 123",
			want: []result{
				{Raw: "+12025550173", Start: 7, End: 19, Normalized: "+12025550173", Valid: true, Country: "US"},
			},
		},
		{
			name: "repeated_separator",
			text: "12345...67890123",
			want: []result{
				{Raw: "67890123", Start: 8, End: 16, Normalized: "+67890123", Valid: true, Country: "VU"},
			},
		},
		{
			name: "doubled_dashes",
			text: "ext 202--555--0173",
			want: []result{},
		},
		{
			name: "trailing_separators_trimmed",
			text: "Dial +1 (202) 555-0173).",
			want: []result{
				{Raw: "+1 (202) 555-0173", Start: 5, End: 22, Normalized: "+12025550173", Valid: true, Country: "US"},
			},
		},
		{
			name: "national_trunk_with_hint",
			text: "Call 0645342545 now",
			hint: "FR",
			want: []result{
				{Raw: "0645342545", Start: 5, End: 15, Normalized: "+33645342545", Valid: true, Country: "FR"},
			},
		},
		{
			name: "multibyte_offsets",
			text: "Téléphone : +33 6 45 34 25 45 ☎",
			want: []result{
				{Raw: "+33 6 45 34 25 45", Start: 14, End: 31, Normalized: "+33645342545", Valid: true, Country: "FR"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(nil, &Config{Hint: tc.hint})
			if err != nil {
				t.Fatal(err)
			}

			matches := s.Scan(tc.text)
			if diff := cmp.Diff(tc.want, results(matches), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}

			for _, m := range matches {
				if got := tc.text[m.Start:m.End]; got != m.Raw {
					t.Errorf("expected raw %q to match text slice %q", m.Raw, got)
				}
			}
		})
	}
}

func TestScanner_TooLong(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		raw  string
	}{
		{name: "digits", text: "1234567890123456789", raw: "123456789012345"},
		{name: "adjacent_merge", text: "Call 202 555 0173 202 555 0174", raw: "202 555 0173 202 55"},
		{name: "space_after_cap", text: "+43 1234 5678 9012 3 45 67", raw: "+43 1234 5678 9012 3"},
		{name: "dash_after_cap", text: "123-456-789-012-345-6", raw: "123-456-789-012-345"},
		{name: "long_tail_not_reemitted", text: "+43 1234 5678 9012 3 4567890 end", raw: "+43 1234 5678 9012 3"},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(nil, &Config{Hint: "US"})
			if err != nil {
				t.Fatal(err)
			}

			matches := s.Scan(tc.text)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}

			m := matches[0]
			if m.Raw != tc.raw {
				t.Errorf("expected raw %q, got %q", tc.raw, m.Raw)
			}
			if m.Valid || m.HasNormalized || m.Number != nil {
				t.Errorf("expected an invalid match without a normalized form, got %#v", m)
			}
			if !errors.Is(m.Err, phonenumber.ErrTooLong) {
				t.Errorf("expected ErrTooLong, got %v", m.Err)
			}
		})
	}
}

func TestScanner_FifteenDigitsThenSeparator(t *testing.T) {
	t.Parallel()

	// Exactly 15 digits followed by a non-digit is not an overflow.
	for _, text := range []string{"+123456789012345 ok", "+123456789012345 - ok", "+123456789012345."} {
		matches := Scan(text)
		if len(matches) != 1 {
			t.Fatalf("%q: expected 1 match, got %d", text, len(matches))
		}
		if errors.Is(matches[0].Err, phonenumber.ErrTooLong) {
			t.Errorf("%q: unexpected ErrTooLong", text)
		}
		if !matches[0].HasNormalized {
			t.Errorf("%q: expected a normalized form", text)
		}
	}
}

func TestScanner_ParseFailureDegrades(t *testing.T) {
	t.Parallel()

	s, err := New(nil, &Config{MinDigits: 3})
	if err != nil {
		t.Fatal(err)
	}

	// Zeros normalize to nothing; the scan must continue past the failure.
	matches := s.Scan("000 0000 and +442079460958")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if m := matches[0]; m.Valid || m.HasNormalized || !errors.Is(m.Err, phonenumber.ErrTooShort) {
		t.Errorf("expected degraded match, got %#v", m)
	}
	if m := matches[1]; !m.Valid || m.Normalized != "+442079460958" {
		t.Errorf("expected valid match, got %#v", m)
	}
}

func TestScanner_Deterministic(t *testing.T) {
	t.Parallel()

	text := "a +1 202 555 0173 b (0)20 7946 0958 c 0044 20 7946 0958 d 5550173"

	s, err := New(nil, &Config{Hint: "GB"})
	if err != nil {
		t.Fatal(err)
	}

	first := results(s.Scan(text))
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, results(s.Scan(text))); diff != "" {
			t.Fatalf("scan %d differs (-first, +got):\n%s", i, diff)
		}
	}

	// Matches are ordered and never overlap.
	last := -1
	for _, r := range first {
		if r.Start < last {
			t.Errorf("match %q starts at %d before previous end %d", r.Raw, r.Start, last)
		}
		if r.End <= r.Start {
			t.Errorf("match %q has empty span", r.Raw)
		}
		last = r.End
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	s, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	text := "+12025550173, +442079460958, +33645342545"
	c := s.Cursor(text)

	var first []string
	for {
		m, ok := c.Next()
		if !ok {
			break
		}
		first = append(first, m.Normalized)
	}
	if diff := cmp.Diff([]string{"+12025550173", "+442079460958", "+33645342545"}, first); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if _, ok := c.Next(); ok {
		t.Errorf("expected exhausted cursor")
	}

	c.Reset()
	m, ok := c.Next()
	if !ok || m.Normalized != "+12025550173" {
		t.Errorf("expected reset cursor to restart, got %#v", m)
	}
}

func TestScanner_ScanValidAndCount(t *testing.T) {
	t.Parallel()

	s, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	text := "Contact: +12025550173, +987654321, +442079460958"
	if got, want := s.Count(text), 3; got != want {
		t.Errorf("expected %d candidates, got %d", want, got)
	}

	valid := s.ScanValid(text)
	if got, want := len(valid), 2; got != want {
		t.Fatalf("expected %d valid, got %d", want, got)
	}
	for _, m := range valid {
		if !m.Valid {
			t.Errorf("expected only valid matches, got %#v", m)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.MinDigits(), 7; got != want {
		t.Errorf("expected min digits %d, got %d", want, got)
	}

	s, err = New(nil, &Config{Hint: "ac"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.MinDigits(), 4; got != want {
		t.Errorf("expected min digits %d, got %d", want, got)
	}

	s, err = New(nil, &Config{Hint: "US", MinDigits: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.MinDigits(), 10; got != want {
		t.Errorf("expected min digits %d, got %d", want, got)
	}

	if _, err := New(nil, &Config{Hint: "ZZ"}); !errors.Is(err, phonenumber.ErrUnknownCountry) {
		t.Errorf("expected ErrUnknownCountry, got %v", err)
	}
	if _, err := New(nil, &Config{MinDigits: -1}); err == nil {
		t.Errorf("expected error for negative min digits")
	}
}

func TestMatch_JSON(t *testing.T) {
	t.Parallel()

	matches := Scan("Phone: +12025550173")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	b, err := json.Marshal(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"raw":"+12025550173","start":7,"end":19,"normalized":"+12025550173","valid":true}`
	if got := string(b); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func FuzzScan(f *testing.F) {
	for _, s := range []string{
		"Call me at +12025550173 or +442079460958",
		"(202) 555-0173, 202.555.0174",
		"1234567890123456789",
		"Téléphone : +33 6 45 34 25 45",
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		last := 0
		for _, m := range Scan(text) {
			if m.Start < last || m.End <= m.Start || m.End > len(text) {
				t.Fatalf("bad span [%d, %d) after %d in %q", m.Start, m.End, last, text)
			}
			if text[m.Start:m.End] != m.Raw {
				t.Fatalf("raw %q does not match text", m.Raw)
			}
			if m.Valid && !m.HasNormalized {
				t.Fatalf("valid match without normalized form: %#v", m)
			}
			last = m.End
		}
	})
}
