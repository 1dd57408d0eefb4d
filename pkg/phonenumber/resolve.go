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
	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
)

// Status is the outcome of country resolution.
type Status int

const (
	// Unresolved means no calling code and length combination matched. The
	// number carries only its digits.
	Unresolved Status = iota

	// Resolved means exactly one country matched, or the hint selected one of
	// several candidates.
	Resolved

	// Ambiguous means several countries sharing a calling code matched and the
	// calling code's default record was chosen.
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unresolved"
	}
}

// Resolution is the result of matching a digit string against the table.
type Resolution struct {
	Status Status

	// Country is the chosen record. It is nil when Status is Unresolved.
	Country *countries.Country

	// Candidates lists every record that matched when Status is Ambiguous, in
	// table order.
	Candidates []*countries.Country

	// CallingCode is 0 when Status is Unresolved.
	CallingCode uint16

	// NationalNumber is the national significant number, or the input digits
	// when Status is Unresolved.
	NationalNumber string
}

// Err returns ErrUnresolved or ErrAmbiguousCountry for callers that require a
// definite country, and nil otherwise.
func (r *Resolution) Err() error {
	switch r.Status {
	case Unresolved:
		return ErrUnresolved
	case Ambiguous:
		return ErrAmbiguousCountry
	}
	return nil
}

// Resolve matches digits that have no explicit plus against the table. If hint
// names a country and the digits are a valid national number for it, that
// country wins. Otherwise the digits are matched as an international number,
// with hint used only to break ties among countries sharing a calling code.
// Unknown hints are ignored.
func (e *Engine) Resolve(digits, hint string) *Resolution {
	h, _ := e.table.Lookup(hint)
	return e.resolve(digits, false, h)
}

func (e *Engine) resolve(digits string, international bool, hint *countries.Country) *Resolution {
	if !international && hint != nil {
		if nsn, ok := hint.NationalNumber(digits); ok {
			return &Resolution{
				Status:         Resolved,
				Country:        hint,
				CallingCode:    hint.CallingCode,
				NationalNumber: nsn,
			}
		}
	}
	return e.resolveInternational(digits, hint)
}

type match struct {
	country *countries.Country
	nsn     string
}

// resolveInternational tries calling codes longest first. The first prefix
// length with any country accepting the remaining length wins.
func (e *Engine) resolveInternational(digits string, hint *countries.Country) *Resolution {
	unresolved := &Resolution{Status: Unresolved, NationalNumber: digits}

	if digits == "" || digits[0] == '0' {
		return unresolved
	}

	for k := countries.MaxCallingCodeDigits; k >= 1; k-- {
		if len(digits) <= k {
			continue
		}

		cc, rest := digits[:k], digits[k:]
		group := e.table.ByCallingCode(cc)
		if len(group) == 0 {
			continue
		}

		var matches []match
		for _, c := range group {
			if nsn, ok := c.NationalNumber(rest); ok {
				matches = append(matches, match{c, nsn})
			}
		}
		if len(matches) == 0 {
			continue
		}
		return e.choose(cc, matches, hint)
	}

	return unresolved
}

func (e *Engine) choose(cc string, matches []match, hint *countries.Country) *Resolution {
	if len(matches) == 1 {
		m := matches[0]
		return &Resolution{
			Status:         Resolved,
			Country:        m.country,
			CallingCode:    m.country.CallingCode,
			NationalNumber: m.nsn,
		}
	}

	candidates := make([]*countries.Country, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.country)
	}

	if hint != nil {
		for _, m := range matches {
			if m.country == hint {
				return &Resolution{
					Status:         Resolved,
					Country:        m.country,
					CallingCode:    m.country.CallingCode,
					NationalNumber: m.nsn,
				}
			}
		}
	}

	chosen := matches[0]
	if primary, ok := e.table.Primary(cc); ok {
		for _, m := range matches {
			if m.country == primary {
				chosen = m
				break
			}
		}
	}

	return &Resolution{
		Status:         Ambiguous,
		Country:        chosen.country,
		Candidates:     candidates,
		CallingCode:    chosen.country.CallingCode,
		NationalNumber: chosen.nsn,
	}
}
