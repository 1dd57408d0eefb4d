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

// Package generate creates random phone numbers that resolve to a given
// country, for use as test fixtures.
package generate

import (
	"fmt"
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/internal/project"
	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// maxAttempts bounds the retries for a single number.
const maxAttempts = 100

// Number returns a random E.164 number with a valid national length for the
// country identified by code. If engine is nil, phonenumber.Default is used.
//
// The national number never starts with zero or with the country's trunk
// prefix, so the result parses back to itself.
func Number(engine *phonenumber.Engine, code string) (string, error) {
	if engine == nil {
		engine = phonenumber.Default()
	}

	c, ok := engine.Table().Lookup(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", phonenumber.ErrUnknownCountry, code)
	}

	for i := 0; i < maxAttempts; i++ {
		idx, err := project.RandomInt(int64(len(c.Lengths)))
		if err != nil {
			return "", fmt.Errorf("failed to pick length: %w", err)
		}

		nsn, err := project.RandomDigits(c.Lengths[idx], true)
		if err != nil {
			return "", fmt.Errorf("failed to generate digits: %w", err)
		}
		if c.TrunkPrefix != "" && strings.HasPrefix(nsn, c.TrunkPrefix) {
			continue
		}

		e164 := "+" + c.CallingCodeString() + nsn
		n, err := engine.Parse(e164, "")
		if err != nil || n.E164() != e164 || n.CallingCode() != c.CallingCode {
			continue
		}
		return e164, nil
	}
	return "", fmt.Errorf("failed to generate a number for %s after %d attempts", c.Code, maxAttempts)
}

// Numbers returns count distinct random numbers for the country identified by
// code.
func Numbers(engine *phonenumber.Engine, code string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)

	for attempts := 0; len(out) < count; attempts++ {
		if attempts >= count*maxAttempts {
			return nil, fmt.Errorf("failed to generate %d distinct numbers for %s", count, code)
		}

		s, err := Number(engine, code)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
