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
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/exposure-notifications-phonenumbers/pkg/observability"

	"github.com/opencensus-integrations/redigo/redis"
)

func init() {
	observability.CollectViews(redis.ObservabilityMetricViews...)
}

var _ Cacher = (*redisCacher)(nil)

// redisCacher is a cacher shared by every process pointed at the same Redis.
type redisCacher struct {
	pool    *redis.Pool
	keyFunc KeyFunc
	stopped uint32
}

// RedisConfig configures NewRedis.
type RedisConfig struct {
	KeyFunc KeyFunc

	// Address defaults to 127.0.0.1:6379.
	Address  string
	Password string
}

// NewRedis creates a Redis-backed cacher. Connections are made lazily.
func NewRedis(cfg *RedisConfig) (Cacher, error) {
	if cfg == nil {
		cfg = new(RedisConfig)
	}

	addr := "127.0.0.1:6379"
	if cfg.Address != "" {
		addr = cfg.Address
	}

	var opts []redis.DialOption
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}

	return &redisCacher{
		pool: &redis.Pool{
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", addr, opts...)
			},
			TestOnBorrow: func(conn redis.Conn, _ time.Time) error {
				_, err := conn.Do("PING")
				return err
			},
			MaxIdle:     8,
			IdleTimeout: 5 * time.Minute,
		},
		keyFunc: cfg.KeyFunc,
	}, nil
}

func (c *redisCacher) Fetch(ctx context.Context, k *Key, out interface{}, ttl time.Duration, f FetchFunc) error {
	err := c.Read(ctx, k, out)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return err
	}

	if f == nil {
		return ErrMissingFetchFunc
	}
	val, err := f()
	if err != nil {
		return err
	}

	if err := c.Write(ctx, k, val, ttl); err != nil {
		return err
	}
	return readInto(val, out)
}

func (c *redisCacher) Read(_ context.Context, k *Key, out interface{}) error {
	key, err := c.key(k)
	if err != nil {
		return err
	}

	return c.withConn(func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("GET", key))
		if errors.Is(err, redis.ErrNil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to GET key: %w", err)
		}

		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("failed to decode cached value: %w", err)
		}
		return nil
	})
}

func (c *redisCacher) Write(_ context.Context, k *Key, val interface{}, ttl time.Duration) error {
	key, err := c.key(k)
	if err != nil {
		return err
	}

	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	return c.withConn(func(conn redis.Conn) error {
		if _, err := conn.Do("PSETEX", key, ttl.Milliseconds(), b); err != nil {
			return fmt.Errorf("failed to PSETEX key: %w", err)
		}
		return nil
	})
}

func (c *redisCacher) Delete(_ context.Context, k *Key) error {
	key, err := c.key(k)
	if err != nil {
		return err
	}

	return c.withConn(func(conn redis.Conn) error {
		if _, err := conn.Do("DEL", key); err != nil {
			return fmt.Errorf("failed to DEL key: %w", err)
		}
		return nil
	})
}

func (c *redisCacher) Close() error {
	if !atomic.CompareAndSwapUint32(&c.stopped, 0, 1) {
		return nil
	}
	if err := c.pool.Close(); err != nil {
		return fmt.Errorf("failed to close pool: %w", err)
	}
	return nil
}

func (c *redisCacher) key(k *Key) (string, error) {
	if atomic.LoadUint32(&c.stopped) == 1 {
		return "", ErrStopped
	}

	key, err := k.Compute(c.keyFunc)
	if err != nil {
		return "", fmt.Errorf("failed to compute key: %w", err)
	}
	return key, nil
}

// withConn runs f with a pooled connection and returns it to the pool.
func (c *redisCacher) withConn(f func(conn redis.Conn) error) error {
	conn := c.pool.Get()
	if err := conn.Err(); err != nil {
		conn.Close()
		return fmt.Errorf("connection is not usable: %w", err)
	}

	if err := f(conn); err != nil {
		if cerr := conn.Close(); cerr != nil {
			return fmt.Errorf("failed to close connection: %v, original error: %w", cerr, err)
		}
		return err
	}

	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
