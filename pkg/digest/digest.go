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

// Package digest includes common digest helpers
package digest

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// HMAC returns the sha256 HMAC of a given string as a hex-encoded string, and
// any errors that occur while hashing.
func HMAC(in string, key []byte) (string, error) {
	if len(key) == 0 {
		return "", errors.New("hmac key is empty")
	}

	h := hmac.New(sha256.New, key)
	n, err := h.Write([]byte(in))
	if err != nil {
		return "", err
	}
	if got, want := n, len(in); got < want {
		return "", fmt.Errorf("only hashed %d of %d bytes", got, want)
	}
	dig := h.Sum(nil)
	return fmt.Sprintf("%x", dig), nil
}

// PhoneNumber returns the HMAC of the number's canonical key. Numbers that are
// Equal produce the same digest, so digests can be stored and compared in place
// of the numbers themselves.
func PhoneNumber(n *phonenumber.PhoneNumber, key []byte) (string, error) {
	if n == nil {
		return "", errors.New("phone number is nil")
	}
	return HMAC(n.Key(), key)
}
