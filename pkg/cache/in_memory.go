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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

var _ Cacher = (*inMemory)(nil)

// inMemory is a process-local cacher. Entries are not shared between
// processes.
type inMemory struct {
	mu      sync.RWMutex
	data    map[string]*item
	keyFunc KeyFunc
	stopCh  chan struct{}
}

type item struct {
	value   []byte
	expires int64
}

// InMemoryConfig configures NewInMemory.
type InMemoryConfig struct {
	KeyFunc KeyFunc

	// GCInterval is how often expired entries are purged. Defaults to 10
	// minutes.
	GCInterval time.Duration
}

// NewInMemory creates a process-local cacher.
func NewInMemory(cfg *InMemoryConfig) (Cacher, error) {
	if cfg == nil {
		cfg = new(InMemoryConfig)
	}

	interval := 10 * time.Minute
	if cfg.GCInterval > 0 {
		interval = cfg.GCInterval
	}

	c := &inMemory{
		data:    make(map[string]*item),
		keyFunc: cfg.KeyFunc,
		stopCh:  make(chan struct{}),
	}
	go c.gc(interval)

	return c, nil
}

func (c *inMemory) Fetch(_ context.Context, k *Key, out interface{}, ttl time.Duration, f FetchFunc) error {
	key, err := k.Compute(c.keyFunc)
	if err != nil {
		return fmt.Errorf("failed to compute key: %w", err)
	}

	if b, ok, err := c.lookup(key); err != nil {
		return err
	} else if ok {
		return json.Unmarshal(b, out)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		return ErrStopped
	}

	// Another caller may have filled the key between the two locks.
	if i, ok := c.data[key]; ok && time.Now().UnixNano() < i.expires {
		return json.Unmarshal(i.value, out)
	}

	if f == nil {
		return ErrMissingFetchFunc
	}
	val, err := f()
	if err != nil {
		return err
	}

	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	c.data[key] = &item{
		value:   b,
		expires: time.Now().UnixNano() + int64(ttl),
	}
	return json.Unmarshal(b, out)
}

func (c *inMemory) Read(_ context.Context, k *Key, out interface{}) error {
	key, err := k.Compute(c.keyFunc)
	if err != nil {
		return fmt.Errorf("failed to compute key: %w", err)
	}

	b, ok, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, out)
}

func (c *inMemory) Write(_ context.Context, k *Key, val interface{}, ttl time.Duration) error {
	key, err := k.Compute(c.keyFunc)
	if err != nil {
		return fmt.Errorf("failed to compute key: %w", err)
	}

	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		return ErrStopped
	}
	c.data[key] = &item{
		value:   b,
		expires: time.Now().UnixNano() + int64(ttl),
	}
	return nil
}

func (c *inMemory) Delete(_ context.Context, k *Key) error {
	key, err := k.Compute(c.keyFunc)
	if err != nil {
		return fmt.Errorf("failed to compute key: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		return ErrStopped
	}
	delete(c.data, key)
	return nil
}

func (c *inMemory) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil {
		close(c.stopCh)
	}
	c.data = nil
	return nil
}

// lookup returns the unexpired value stored at key.
func (c *inMemory) lookup(key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil {
		return nil, false, ErrStopped
	}

	i, ok := c.data[key]
	if !ok || time.Now().UnixNano() >= i.expires {
		return nil, false, nil
	}
	return i.value, true, nil
}

// gc deletes expired entries every interval until the cacher is closed.
func (c *inMemory) gc(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
		}

		now := time.Now().UnixNano()

		c.mu.Lock()
		for k, i := range c.data {
			if i.expires <= now {
				delete(c.data, k)
			}
		}
		c.mu.Unlock()
	}
}
