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

// Package cache stores analysis results so repeated inputs skip the engine.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/exposure-notifications-phonenumbers/pkg/digest"
)

var (
	ErrMissingFetchFunc = errors.New("missing fetch function")
	ErrNotFound         = errors.New("key not found")
	ErrStopped          = errors.New("cacher is stopped")
)

// FetchFunc produces a value on a cache miss.
type FetchFunc func() (interface{}, error)

// Key is a cache key. KeyFuncs apply to Key but not to Namespace.
type Key struct {
	Namespace string
	Key       string
}

// Compute builds the stored form of the key. If f is not nil, it is applied to
// Key. A non-empty Namespace is prefixed with a colon.
func (k *Key) Compute(f KeyFunc) (string, error) {
	key := k.Key

	if f != nil {
		var err error
		key, err = f(key)
		if err != nil {
			return "", err
		}
	}

	if k.Namespace != "" {
		return k.Namespace + ":" + key, nil
	}
	return key, nil
}

// KeyFunc transforms a key before it reaches the backing store.
type KeyFunc func(string) (string, error)

// HMACKeyFunc returns a KeyFunc that replaces the key with its HMAC, so raw
// phone numbers never appear in the store.
func HMACKeyFunc(secret []byte) KeyFunc {
	return func(in string) (string, error) {
		return digest.HMAC(in, secret)
	}
}

// Cacher stores JSON-encodable values with a TTL.
type Cacher interface {
	// Close releases the cacher. A closed cacher returns ErrStopped.
	io.Closer

	// Fetch reads the key into out. On a miss it calls f, stores the result for
	// ttl and reads that into out. Errors from f are returned and nothing is
	// stored.
	Fetch(ctx context.Context, k *Key, out interface{}, ttl time.Duration, f FetchFunc) error

	// Read reads the key into out, or returns ErrNotFound.
	Read(ctx context.Context, k *Key, out interface{}) error

	// Write stores val for ttl, overwriting any existing value.
	Write(ctx context.Context, k *Key, val interface{}, ttl time.Duration) error

	// Delete removes the key if present.
	Delete(ctx context.Context, k *Key) error
}

// readInto copies val into out through its JSON encoding, matching what a
// later cache hit would produce.
func readInto(val, out interface{}) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}
	return nil
}
