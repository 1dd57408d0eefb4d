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

	"github.com/google/exposure-notifications-phonenumbers/internal/project"
)

func FuzzNormalize(f *testing.F) {
	for _, s := range []string{
		"+12025550173",
		"+44 (0) 20 7946 0958",
		"0044 20 7946 0958",
		"06 12 34 56 78",
		"+1+2",
		"abc",
		"",
	} {
		f.Add(s, "")
		f.Add(s, "FR")
	}

	f.Fuzz(func(t *testing.T, raw, hint string) {
		n, err := Normalize(raw, hint)
		if err != nil {
			var nerr *Error
			if !errors.As(err, &nerr) && !errors.Is(err, ErrUnknownCountry) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}

		if !project.AllDigits(n.Digits) {
			t.Fatalf("non-digit output %q", n.Digits)
		}
		if len(n.Digits) > MaxDigits {
			t.Fatalf("output too long %q", n.Digits)
		}

		again, err := Normalize(n.String(), hint)
		if err != nil {
			t.Fatalf("second pass of %q failed: %v", n.String(), err)
		}
		if again.Digits != n.Digits {
			t.Fatalf("not idempotent: %q -> %q -> %q", raw, n.Digits, again.Digits)
		}
	})
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"+12025550173",
		"12025550173",
		"+4306935893571",
		"+96109123123",
		"07911123456",
		"+987654321",
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		n, err := Parse(raw, "")
		if err != nil {
			return
		}

		if n.Valid() {
			c := n.Country()
			if c == nil {
				t.Fatalf("%q: valid number without country", raw)
			}
			if !c.ValidLength(len(n.NationalNumber())) {
				t.Fatalf("%q: national number %q has invalid length for %s", raw, n.NationalNumber(), c.Code)
			}

			// The canonical form parses back to the same number.
			again, err := Parse(n.E164(), "")
			if err != nil {
				t.Fatalf("%q: reparse of %q failed: %v", raw, n.E164(), err)
			}
			if !again.Equal(n) {
				t.Fatalf("%q: reparse of %q produced %q", raw, n.E164(), again.Key())
			}
		} else if n.CallingCode() != 0 {
			t.Fatalf("%q: unresolved number with calling code %d", raw, n.CallingCode())
		}
	})
}
