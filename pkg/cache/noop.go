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
	"sync/atomic"
	"time"
)

var _ Cacher = (*noop)(nil)

// noop passes every Fetch through to its FetchFunc.
type noop struct {
	stopped uint32
}

// NewNoop creates a cacher that stores nothing.
func NewNoop() (Cacher, error) {
	return &noop{}, nil
}

func (c *noop) Fetch(_ context.Context, _ *Key, out interface{}, _ time.Duration, f FetchFunc) error {
	if atomic.LoadUint32(&c.stopped) == 1 {
		return ErrStopped
	}
	if f == nil {
		return ErrMissingFetchFunc
	}

	val, err := f()
	if err != nil {
		return err
	}
	return readInto(val, out)
}

func (c *noop) Read(_ context.Context, _ *Key, _ interface{}) error {
	if atomic.LoadUint32(&c.stopped) == 1 {
		return ErrStopped
	}
	return ErrNotFound
}

func (c *noop) Write(_ context.Context, _ *Key, _ interface{}, _ time.Duration) error {
	if atomic.LoadUint32(&c.stopped) == 1 {
		return ErrStopped
	}
	return nil
}

func (c *noop) Delete(_ context.Context, _ *Key) error {
	if atomic.LoadUint32(&c.stopped) == 1 {
		return ErrStopped
	}
	return nil
}

func (c *noop) Close() error {
	atomic.StoreUint32(&c.stopped, 1)
	return nil
}
