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
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
)

// Classify returns the subscriber type of a national significant number. The
// country's patterns are evaluated in order and the first prefix match wins.
// It returns countries.Unknown if c is nil or nothing matches.
func Classify(c *countries.Country, nsn string) countries.SubscriberType {
	if c == nil || nsn == "" {
		return countries.Unknown
	}
	for _, p := range c.Patterns {
		if strings.HasPrefix(nsn, p.Prefix) {
			return p.Type
		}
	}
	return countries.Unknown
}

// IsMobile reports whether nsn classifies as a mobile number in c.
func IsMobile(c *countries.Country, nsn string) bool {
	return Classify(c, nsn) == countries.Mobile
}

// IsFixedLine reports whether nsn classifies as a fixed line in c.
func IsFixedLine(c *countries.Country, nsn string) bool {
	return Classify(c, nsn) == countries.FixedLine
}

// IsTollFree reports whether nsn classifies as toll free in c.
func IsTollFree(c *countries.Country, nsn string) bool {
	return Classify(c, nsn) == countries.TollFree
}

// IsPremiumRate reports whether nsn classifies as premium rate in c.
func IsPremiumRate(c *countries.Country, nsn string) bool {
	return Classify(c, nsn) == countries.PremiumRate
}
