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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		hint string
		want *Normalized
		err  error
	}{
		{
			name: "e164",
			raw:  "+12025550173",
			want: &Normalized{Digits: "12025550173", HadExplicitPlus: true, International: true},
		},
		{
			name: "separators",
			raw:  "  +1 (202) 555-0173 ",
			want: &Normalized{Digits: "12025550173", HadExplicitPlus: true, International: true},
		},
		{
			name: "dots",
			raw:  "202.555.0173",
			want: &Normalized{Digits: "2025550173"},
		},
		{
			name: "leading_zeros_after_plus",
			raw:  "+0012345678912",
			want: &Normalized{Digits: "12345678912", HadExplicitPlus: true, International: true},
		},
		{
			name: "idd",
			raw:  "0044 20 7946 0958",
			want: &Normalized{Digits: "442079460958", International: true},
		},
		{
			name: "nanp_idd_with_hint",
			raw:  "011 44 20 7946 0958",
			hint: "US",
			want: &Normalized{Digits: "442079460958", International: true},
		},
		{
			name: "nanp_idd_without_hint",
			raw:  "011 44 20 7946 0958",
			want: &Normalized{Digits: "11442079460958"},
		},
		{
			name: "leading_zeros_without_hint",
			raw:  "0645342545",
			want: &Normalized{Digits: "645342545"},
		},
		{
			name: "trunk_with_hint",
			raw:  "0645342545",
			hint: "FR",
			want: &Normalized{Digits: "645342545"},
		},
		{
			name: "gb_trunk",
			raw:  "07911 123456",
			hint: "gb",
			want: &Normalized{Digits: "7911123456"},
		},
		{
			name: "nanp_trunk",
			raw:  "1 (202) 555-0173",
			hint: "US",
			want: &Normalized{Digits: "2025550173"},
		},
		{
			name: "hungary_trunk",
			raw:  "06 1 234 5678",
			hint: "HU",
			want: &Normalized{Digits: "12345678"},
		},
		{
			name: "trunk_kept_when_length_valid",
			raw:  "881234567",
			hint: "TM",
			want: &Normalized{Digits: "881234567"},
		},
		{
			name: "italy_keeps_zero",
			raw:  "06 1234 5678",
			hint: "IT",
			want: &Normalized{Digits: "0612345678"},
		},
		{
			name: "invalid_character",
			raw:  "202-555-O173",
			err:  ErrInvalidCharacter,
		},
		{
			name: "letters",
			raw:  "invalid_phone_number",
			err:  ErrInvalidCharacter,
		},
		{
			name: "embedded_plus",
			raw:  "+1 202 +555 0173",
			err:  ErrMultiplePlusSigns,
		},
		{
			name: "plus_not_first",
			raw:  "1+2025550173",
			err:  ErrMultiplePlusSigns,
		},
		{
			name: "empty",
			raw:  "   ",
			err:  ErrTooShort,
		},
		{
			name: "only_separators",
			raw:  "+ ( ) - .",
			err:  ErrTooShort,
		},
		{
			name: "only_zeros",
			raw:  "0000",
			err:  ErrTooShort,
		},
		{
			name: "too_long",
			raw:  "12345678901234567890",
			err:  ErrTooLong,
		},
		{
			name: "unknown_hint",
			raw:  "2025550173",
			hint: "ZZ",
			err:  ErrUnknownCountry,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tc.raw, tc.hint)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_ErrorOffset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    string
		kind   error
		offset int
	}{
		{raw: "202-555-O173", kind: ErrInvalidCharacter, offset: 8},
		{raw: "  12x", kind: ErrInvalidCharacter, offset: 4},
		{raw: "+1 +2", kind: ErrMultiplePlusSigns, offset: 3},
		{raw: "12345678901234567890", kind: ErrTooLong, offset: -1},
		{raw: "\t+12025550173", kind: ErrInvalidCharacter, offset: 0},
		{raw: " +12025550173\n", kind: ErrInvalidCharacter, offset: 13},
		{raw: "\u00a0+12025550173", kind: ErrInvalidCharacter, offset: 0},
		{raw: "+12025550173\u3000", kind: ErrInvalidCharacter, offset: 12},
	}

	for _, tc := range cases {
		_, err := Normalize(tc.raw, "")

		var nerr *Error
		if !errors.As(err, &nerr) {
			t.Errorf("%q: expected *Error, got %T", tc.raw, err)
			continue
		}
		if nerr.Kind != tc.kind {
			t.Errorf("%q: expected kind %v, got %v", tc.raw, tc.kind, nerr.Kind)
		}
		if nerr.Offset != tc.offset {
			t.Errorf("%q: expected offset %d, got %d", tc.raw, tc.offset, nerr.Offset)
		}
		if nerr.Input != tc.raw {
			t.Errorf("%q: expected input to be recorded, got %q", tc.raw, nerr.Input)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		hint string
	}{
		{raw: "+1 (202) 555-0173"},
		{raw: "+1 (202) 555-0173", hint: "US"},
		{raw: "1 202 555 0173", hint: "US"},
		{raw: "0044 20 7946 0958"},
		{raw: "07911 123456", hint: "GB"},
		{raw: "0645342545", hint: "FR"},
		{raw: "06 06 12 34 56", hint: "HU"},
		{raw: "8 881 234 567", hint: "TM"},
		{raw: "000123"},
		{raw: "+0012345678912"},
	}

	for _, tc := range cases {
		first, err := Normalize(tc.raw, tc.hint)
		if err != nil {
			t.Errorf("%q: %v", tc.raw, err)
			continue
		}

		second, err := Normalize(first.String(), tc.hint)
		if err != nil {
			t.Errorf("%q: second pass: %v", tc.raw, err)
			continue
		}
		if diff := cmp.Diff(first.Digits, second.Digits); diff != "" {
			t.Errorf("%q: not idempotent (-first, +second):\n%s", tc.raw, diff)
		}
		if first.International != second.International {
			t.Errorf("%q: international changed from %t to %t", tc.raw, first.International, second.International)
		}
	}
}

func TestNormalized_String(t *testing.T) {
	t.Parallel()

	if got, want := (&Normalized{Digits: "123", International: true}).String(), "+123"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := (&Normalized{Digits: "123"}).String(), "123"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
