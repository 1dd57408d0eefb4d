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

package suggest

import (
	"errors"
	"testing"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCorrections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		hint string
		want []string
	}{
		{
			name: "already_valid",
			raw:  "+1 (202) 555-0173",
			want: []string{"+12025550173"},
		},
		{
			name: "already_valid_with_hint",
			raw:  "079111 23456",
			hint: "GB",
			want: []string{"+447911123456"},
		},
		{
			name: "common_countries",
			raw:  "645342545",
			want: []string{"+33645342545", "+44645342545", "+49645342545", "+61645342545"},
		},
		{
			name: "common_countries_shared_code",
			raw:  "7911123456",
			want: []string{"+17911123456", "+447911123456", "+497911123456", "+917911123456"},
		},
		{
			name: "invalid_character_ignored",
			raw:  "2025550173x",
			want: []string{"+12025550173", "+442025550173", "+492025550173", "+912025550173"},
		},
		{
			name: "too_long_shortened",
			raw:  "12345678901234567890",
			hint: "US",
			want: []string{"+11234567890"},
		},
		{
			name: "too_short_extended_and_capped",
			raw:  "45342545",
			hint: "FR",
			want: []string{"+33045342545", "+33145342545", "+33245342545", "+33345342545", "+33445342545"},
		},
		{
			name: "nothing",
			raw:  "123",
			want: []string{},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Corrections(nil, tc.raw, tc.hint)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCorrections_UnknownHint(t *testing.T) {
	t.Parallel()

	if _, err := Corrections(nil, "12345", "ZZ"); !errors.Is(err, phonenumber.ErrUnknownCountry) {
		t.Errorf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestIsPotentiallyValid(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"+1 (202) 555-0173":     true,
		"555-0173":              true,
		"555-017":               false,
		"0000000":               false,
		"0000001":               true,
		"123456789012345":       true,
		"1234567890123456":      false,
		"phone: 202 555 0173!!": true,
		"":                      false,
	}

	for raw, want := range cases {
		if got := IsPotentiallyValid(raw); got != want {
			t.Errorf("%q: expected %t, got %t", raw, want, got)
		}
	}
}

func TestGuessCountry(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "1 202 555 0173", want: "US"},
		{raw: "44 20 7946 0958", want: "GB"},
		{raw: "49 30 12345678", want: "DE"},
		{raw: "33 6 45 34 25 45", want: "FR"},
		{raw: "9999999999", want: "US"},
		{raw: "0000000", want: ""},
		{raw: "no digits", want: ""},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			c, ok := GuessCountry(nil, tc.raw)
			if tc.want == "" {
				if ok {
					t.Errorf("expected no guess, got %s", c.Code)
				}
				return
			}
			if !ok {
				t.Fatalf("expected %s, got no guess", tc.want)
			}
			if c.Code != tc.want {
				t.Errorf("expected %s, got %s", tc.want, c.Code)
			}
		})
	}
}
