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

// Package suggest offers heuristic fixes for numbers that do not resolve.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// MaxCorrections is the most suggestions Corrections returns.
const MaxCorrections = 5

// commonCountries are tried, in order, when no hint is given.
var commonCountries = []string{"US", "GB", "DE", "FR", "IN", "AU", "CA"}

// Corrections returns up to MaxCorrections E.164 numbers that raw may have
// been intended as, sorted and without duplicates. If raw already resolves,
// its own E.164 form is the only suggestion. If engine is nil,
// phonenumber.Default is used.
//
// Candidates are built by prefixing the hint's calling code (or, without a
// hint, the calling codes of a few common countries) to the digits of raw.
// With a hint, overlong input is shortened from the left and short input is
// extended with one leading digit.
func Corrections(engine *phonenumber.Engine, raw, hint string) ([]string, error) {
	if engine == nil {
		engine = phonenumber.Default()
	}
	table := engine.Table()

	var h *countries.Country
	if hint != "" {
		c, ok := table.Lookup(hint)
		if !ok {
			return nil, fmt.Errorf("%w: %q", phonenumber.ErrUnknownCountry, hint)
		}
		h = c
	}

	if n, err := engine.Parse(raw, hint); err == nil && n.Valid() {
		return []string{n.E164()}, nil
	}

	digits := onlyDigits(raw)
	var out []string

	try := func(s string) bool {
		n, err := engine.Parse(s, "")
		if err != nil || !n.Valid() {
			return false
		}
		out = append(out, n.E164())
		return true
	}

	if h != nil {
		try("+" + h.CallingCodeString() + digits)
	} else {
		for _, code := range commonCountries {
			if c, ok := table.Lookup(code); ok {
				try("+" + c.CallingCodeString() + digits)
			}
		}
	}

	if h != nil && len(digits) > phonenumber.MaxDigits {
		for i := 1; i <= len(digits)-7; i++ {
			if try("+" + h.CallingCodeString() + digits[i:]) {
				break
			}
		}
	}

	if h != nil && len(digits) < 10 {
		for d := '0'; d <= '9'; d++ {
			try("+" + h.CallingCodeString() + string(d) + digits)
		}
	}

	sort.Strings(out)
	out = dedupe(out)
	if len(out) > MaxCorrections {
		out = out[:MaxCorrections]
	}
	return out, nil
}

// IsPotentiallyValid reports whether raw contains a plausible number of digits
// for a phone number, ignoring every other rune. It does not consult the
// country table.
func IsPotentiallyValid(raw string) bool {
	digits := onlyDigits(raw)
	return len(digits) >= 7 && len(digits) <= phonenumber.MaxDigits &&
		strings.Trim(digits, "0") != ""
}

// GuessCountry guesses the country of raw from its digits alone, ignoring every
// other rune. The first country in table order whose calling code prefixes the
// digits with a valid remaining length wins. Otherwise a few common lengths
// are recognized. If engine is nil, phonenumber.Default is used.
func GuessCountry(engine *phonenumber.Engine, raw string) (*countries.Country, bool) {
	if engine == nil {
		engine = phonenumber.Default()
	}
	table := engine.Table()

	digits := onlyDigits(raw)
	if digits == "" {
		return nil, false
	}

	for _, c := range table.All() {
		cc := c.CallingCodeString()
		if strings.HasPrefix(digits, cc) && c.ValidLength(len(digits)-len(cc)) {
			return c, true
		}
	}

	var code string
	switch l := len(digits); {
	case l == 10:
		code = "US"
	case l == 11 && strings.HasPrefix(digits, "1"):
		code = "US"
	case l == 11 && strings.HasPrefix(digits, "44"):
		code = "GB"
	case l == 12 && strings.HasPrefix(digits, "49"):
		code = "DE"
	default:
		return nil, false
	}
	return table.Lookup(code)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if phonenumber.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dedupe removes adjacent duplicates from a sorted slice in place.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := in[:1]
	for _, s := range in[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
