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

// Package format renders resolved phone numbers for display.
package format

import (
	"fmt"
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// Style is an output representation.
type Style int

const (
	// E164 is "+" followed by the calling code and national number.
	E164 Style = iota

	// International is the calling code followed by the grouped national number.
	International

	// National is the grouped national number.
	National

	// RFC3966 is a tel URI with the national number in groups of three.
	RFC3966
)

var styleNames = map[Style]string{
	E164:          "e164",
	International: "international",
	National:      "national",
	RFC3966:       "rfc3966",
}

func (s Style) String() string {
	if v, ok := styleNames[s]; ok {
		return v
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses the name produced by Style.String.
func ParseStyle(s string) (Style, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, v := range styleNames {
		if v == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown format style %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if _, ok := styleNames[s]; !ok {
		return nil, fmt.Errorf("unknown format style %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Format renders n in the given style. Numbers that did not resolve to a
// country cannot be formatted and return phonenumber.ErrUnresolved.
func Format(n *phonenumber.PhoneNumber, style Style) (string, error) {
	if n == nil || !n.Valid() {
		return "", fmt.Errorf("failed to format: %w", phonenumber.ErrUnresolved)
	}

	cc := n.Country().CallingCodeString()
	nsn := n.NationalNumber()

	switch style {
	case E164:
		return n.E164(), nil
	case International:
		return "+" + cc + " " + group(n), nil
	case National:
		return group(n), nil
	case RFC3966:
		return "tel:+" + cc + "-" + strings.Join(chunks(nsn, 3), "-"), nil
	default:
		return "", fmt.Errorf("unknown format style %d", int(style))
	}
}

// String parses raw with the default engine and formats the result.
func String(raw, hint string, style Style) (string, error) {
	n, err := phonenumber.Parse(raw, hint)
	if err != nil {
		return "", err
	}
	return Format(n, style)
}

// group splits the national number using the convention of the number's
// calling code.
func group(n *phonenumber.PhoneNumber) string {
	nsn := n.NationalNumber()
	l := len(nsn)

	switch c := n.Country(); {
	case c.CallingCode == 1:
		if l == 10 {
			return "(" + nsn[:3] + ") " + nsn[3:6] + "-" + nsn[6:]
		}
	case c.CallingCode == 44:
		if l >= 10 {
			return nsn[:4] + " " + nsn[4:7] + " " + nsn[7:]
		}
	case c.Code == "DE":
		if l >= 10 {
			return nsn[:3] + " " + nsn[3:]
		}
	default:
		if l >= 7 {
			return nsn[:l/2] + " " + nsn[l/2:]
		}
	}
	return nsn
}

func chunks(s string, size int) []string {
	out := make([]string, 0, (len(s)+size-1)/size)
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
