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
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
)

// CanonicalNumber is the calling code and national significant number of a
// phone number.
type CanonicalNumber struct {
	// CallingCode is 0 when the number is unresolved.
	CallingCode uint16

	// NationalNumber keeps leading zeros. For unresolved numbers it holds all
	// of the digits.
	NationalNumber string

	HadExplicitPlus bool
}

// E164Digits returns the calling code followed by the national number, without
// a leading plus. Unresolved numbers return their bare digits.
func (c CanonicalNumber) E164Digits() string {
	if c.CallingCode == 0 {
		return c.NationalNumber
	}
	return strconv.Itoa(int(c.CallingCode)) + c.NationalNumber
}

// PhoneNumber is a parsed phone number. It is immutable and safe to share.
type PhoneNumber struct {
	canonical  CanonicalNumber
	raw        string
	hint       string
	status     Status
	country    *countries.Country
	candidates []*countries.Country
	typ        countries.SubscriberType
	key        string
}

func newPhoneNumber(raw, hint string, norm *Normalized, res *Resolution) *PhoneNumber {
	n := &PhoneNumber{
		canonical: CanonicalNumber{
			CallingCode:     res.CallingCode,
			NationalNumber:  res.NationalNumber,
			HadExplicitPlus: norm.HadExplicitPlus,
		},
		raw:        raw,
		hint:       hint,
		status:     res.Status,
		country:    res.Country,
		candidates: res.Candidates,
		typ:        Classify(res.Country, res.NationalNumber),
	}
	n.key = n.canonical.E164Digits()
	return n
}

// Canonical returns the canonical form.
func (n *PhoneNumber) Canonical() CanonicalNumber {
	return n.canonical
}

// Raw returns the input the number was parsed from.
func (n *PhoneNumber) Raw() string {
	return n.raw
}

// Hint returns the country hint supplied at parse time, if any.
func (n *PhoneNumber) Hint() string {
	return n.hint
}

// Key returns the equality key: the E.164 digits without a plus. Two numbers
// with the same calling code and national number have the same key regardless
// of formatting or hint.
//
// Unresolved numbers key on their bare digits, so two unresolved numbers are
// equal only if their digits match exactly, and an unresolved number never
// equals a resolved one unless their digit strings happen to coincide.
func (n *PhoneNumber) Key() string {
	return n.key
}

// Equal reports whether n and o have the same Key. Nil numbers are equal only
// to each other.
func (n *PhoneNumber) Equal(o *PhoneNumber) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.key == o.key
}

// Hash returns a 64-bit hash of Key.
func (n *PhoneNumber) Hash() uint64 {
	return xxhash.Sum64String(n.key)
}

// E164 returns the number in E.164 format ("+" followed by digits), or the
// empty string if the number is unresolved.
func (n *PhoneNumber) E164() string {
	if n.status == Unresolved {
		return ""
	}
	return "+" + n.key
}

// NationalNumber returns the national significant number. For unresolved
// numbers it is every digit.
func (n *PhoneNumber) NationalNumber() string {
	return n.canonical.NationalNumber
}

// CallingCode returns the calling code, or 0 if unresolved.
func (n *PhoneNumber) CallingCode() uint16 {
	return n.canonical.CallingCode
}

// Country returns the resolved country, or nil.
func (n *PhoneNumber) Country() *countries.Country {
	return n.country
}

// Status returns the resolution outcome.
func (n *PhoneNumber) Status() Status {
	return n.status
}

// Valid reports whether a country was resolved, possibly ambiguously.
func (n *PhoneNumber) Valid() bool {
	return n.status != Unresolved
}

// Ambiguous reports whether the country was chosen as the default of a shared
// calling code.
func (n *PhoneNumber) Ambiguous() bool {
	return n.status == Ambiguous
}

// Candidates returns the countries that matched an ambiguous number.
func (n *PhoneNumber) Candidates() []*countries.Country {
	return append([]*countries.Country(nil), n.candidates...)
}

// Type returns the subscriber type.
func (n *PhoneNumber) Type() countries.SubscriberType {
	return n.typ
}

// IsMobile reports whether the number is a mobile number.
func (n *PhoneNumber) IsMobile() bool {
	return n.typ == countries.Mobile
}

// IsFixedLine reports whether the number is a fixed line.
func (n *PhoneNumber) IsFixedLine() bool {
	return n.typ == countries.FixedLine
}

// IsTollFree reports whether the number is toll free.
func (n *PhoneNumber) IsTollFree() bool {
	return n.typ == countries.TollFree
}

// IsPremiumRate reports whether the number is premium rate.
func (n *PhoneNumber) IsPremiumRate() bool {
	return n.typ == countries.PremiumRate
}

// String returns the E.164 form, or the bare digits if unresolved.
func (n *PhoneNumber) String() string {
	if e := n.E164(); e != "" {
		return e
	}
	return n.key
}

// GoString implements fmt.GoStringer.
func (n *PhoneNumber) GoString() string {
	code := ""
	if n.country != nil {
		code = n.country.Code
	}
	return fmt.Sprintf("PhoneNumber{key: %q, country: %q, status: %s, type: %s}", n.key, code, n.status, n.typ)
}

// MarshalText implements encoding.TextMarshaler.
func (n *PhoneNumber) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the text with
// the default engine and no hint.
func (n *PhoneNumber) UnmarshalText(b []byte) error {
	v, err := Parse(string(b), "")
	if err != nil {
		return err
	}
	*n = *v
	return nil
}
