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

// Package countries contains the read-only calling code reference data used to
// resolve and classify phone numbers.
//
// The data is compiled into the binary. Callers obtain the shared table with
// Default and pass it by reference; records are never mutated after the table
// is built and are safe for concurrent use.
package countries

import (
	"fmt"
	"strconv"
	"strings"
)

// SubscriberType is the kind of line a national number is assigned to.
type SubscriberType int

const (
	Unknown SubscriberType = iota
	Mobile
	FixedLine
	TollFree
	PremiumRate
	SharedCost
	Voip
	PersonalNumber
	Pager
	Uan
	Emergency
	Voicemail
)

var subscriberTypeNames = map[SubscriberType]string{
	Unknown:        "unknown",
	Mobile:         "mobile",
	FixedLine:      "fixed_line",
	TollFree:       "toll_free",
	PremiumRate:    "premium_rate",
	SharedCost:     "shared_cost",
	Voip:           "voip",
	PersonalNumber: "personal_number",
	Pager:          "pager",
	Uan:            "uan",
	Emergency:      "emergency",
	Voicemail:      "voicemail",
}

// String returns the snake_case name of the type.
func (t SubscriberType) String() string {
	if s, ok := subscriberTypeNames[t]; ok {
		return s
	}
	return "SubscriberType(" + strconv.Itoa(int(t)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (t SubscriberType) MarshalText() ([]byte, error) {
	if _, ok := subscriberTypeNames[t]; !ok {
		return nil, fmt.Errorf("unknown subscriber type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SubscriberType) UnmarshalText(b []byte) error {
	v, err := ParseSubscriberType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseSubscriberType parses the name produced by SubscriberType.String.
func ParseSubscriberType(s string) (SubscriberType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, v := range subscriberTypeNames {
		if v == want {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("unknown subscriber type %q", s)
}

// Pattern assigns a SubscriberType to national numbers beginning with Prefix.
// An empty Prefix matches every number.
type Pattern struct {
	Prefix string
	Type   SubscriberType
}

// Country is a single entry in the calling code table.
type Country struct {
	// Name is the display name.
	Name string

	// Code is the ISO 3166-1 alpha-2 code, optionally with a subdivision suffix
	// (e.g. GB-CYM) for entries that share a parent's calling code.
	Code string

	// CallingCode is the 1-3 digit international dialing prefix.
	CallingCode uint16

	// Lengths is the set of valid national significant number lengths.
	Lengths []int

	// TrunkPrefix is the national dialing prefix that precedes the national
	// significant number in domestic format. It is empty for numbering plans
	// that keep leading zeros in the national number.
	TrunkPrefix string

	// Patterns are evaluated in order against the national significant number.
	// The first matching prefix wins.
	Patterns []Pattern

	// Default marks the primary record of a calling code shared by several
	// countries. It is returned when a number cannot be attributed to a single
	// country.
	Default bool

	callingCode string
}

// CallingCodeString returns the calling code as a digit string.
func (c *Country) CallingCodeString() string {
	if c.callingCode != "" {
		return c.callingCode
	}
	return strconv.Itoa(int(c.CallingCode))
}

// ValidLength reports whether n is a valid national significant number length.
func (c *Country) ValidLength(n int) bool {
	for _, l := range c.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// MinLength returns the shortest valid national significant number length.
func (c *Country) MinLength() int {
	min := 0
	for i, l := range c.Lengths {
		if i == 0 || l < min {
			min = l
		}
	}
	return min
}

// MaxLength returns the longest valid national significant number length.
func (c *Country) MaxLength() int {
	max := 0
	for _, l := range c.Lengths {
		if l > max {
			max = l
		}
	}
	return max
}

// NationalNumber returns the national significant number contained in rest,
// the digits that follow the calling code. Leading trunk prefixes are removed
// for as long as the remainder still has a valid length, so the result is a
// fixed point: NationalNumber(result) returns result. It returns false if no
// form has a valid length.
func (c *Country) NationalNumber(rest string) (string, bool) {
	nsn, ok := "", false
	if c.ValidLength(len(rest)) {
		nsn, ok = rest, true
	}
	if t := c.TrunkPrefix; t != "" {
		for s := rest; strings.HasPrefix(s, t); {
			s = s[len(t):]
			if !c.ValidLength(len(s)) {
				break
			}
			nsn, ok = s, true
		}
	}
	return nsn, ok
}

// String returns "Name (Code, +CallingCode)".
func (c *Country) String() string {
	return fmt.Sprintf("%s (%s, +%s)", c.Name, c.Code, c.CallingCodeString())
}
