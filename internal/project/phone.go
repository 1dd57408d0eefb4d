// Copyright 2021 the Exposure Notifications Verification Server authors
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
package project

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// LibphonenumberE164 returns the E.164 formatted phone number as computed by
// libphonenumber. It is used as a reference when checking the engine.
func LibphonenumberE164(phone string, defaultRegion string) (string, error) {
	pn, err := phonenumbers.Parse(phone, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", fmt.Errorf("phonenumbers.Parse: %w", err)
	}
	return phonenumbers.Format(pn, phonenumbers.E164), nil
}

// LibphonenumberRegion returns the region libphonenumber assigns to the
// number, or the empty string if it cannot be parsed or has no region.
func LibphonenumberRegion(phone string, defaultRegion string) string {
	pn, err := phonenumbers.Parse(phone, strings.ToUpper(defaultRegion))
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(pn)
}

// LibphonenumberValid reports whether libphonenumber considers the number
// valid for its region.
func LibphonenumberValid(phone string, defaultRegion string) bool {
	pn, err := phonenumbers.Parse(phone, strings.ToUpper(defaultRegion))
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(pn)
}
