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
// Package project defines global project helpers.
package project

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomDigits returns a string of n random decimal digits. If nonZeroFirst is
// true, the first digit is never 0.
func RandomDigits(n int, nonZeroFirst bool) (string, error) {
	if n <= 0 {
		return "", nil
	}

	b := make([]byte, n)
	for i := range b {
		lo := int64(0)
		if i == 0 && nonZeroFirst {
			lo = 1
		}
		v, err := RandomInt(10 - lo)
		if err != nil {
			return "", err
		}
		b[i] = byte('0' + lo + v)
	}
	return string(b), nil
}

// RandomInt returns a uniform random value in [0, max).
func RandomInt(max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("max must be positive, got %d", max)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random: %w", err)
	}
	return v.Int64(), nil
}
