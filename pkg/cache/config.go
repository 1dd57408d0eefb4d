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
	"fmt"
	"time"

	"github.com/google/exposure-notifications-server/pkg/logging"
	"github.com/sethvargo/go-envconfig"
)

// Type selects a cacher implementation.
type Type string

const (
	TypeNoop     Type = "NOOP"
	TypeInMemory Type = "IN_MEMORY"
	TypeRedis    Type = "REDIS"
)

// Config represents configuration for a cacher.
type Config struct {
	Type Type          `env:"TYPE, default=NOOP"`
	TTL  time.Duration `env:"TTL, default=1h"`

	// HMACKey, when set, replaces every key with its HMAC before storage. It is
	// required for Redis.
	HMACKey envconfig.Base64Bytes `env:"HMAC_KEY" json:"-"`

	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD" json:"-"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Type {
	case TypeNoop, TypeInMemory:
	case TypeRedis:
		if len(c.HMACKey) == 0 {
			return fmt.Errorf("cache HMAC_KEY is required for %s", c.Type)
		}
	default:
		return fmt.Errorf("unknown cacher type: %v", c.Type)
	}

	if c.TTL < 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", c.TTL)
	}
	return nil
}

// CacherFor returns the cacher described by c.
func CacherFor(ctx context.Context, c *Config) (Cacher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var keyFunc KeyFunc
	if len(c.HMACKey) > 0 {
		keyFunc = HMACKeyFunc(c.HMACKey)
	}

	logging.FromContext(ctx).Named("cache").Debugw("creating cacher", "type", c.Type)

	switch c.Type {
	case TypeInMemory:
		return NewInMemory(&InMemoryConfig{KeyFunc: keyFunc})
	case TypeRedis:
		return NewRedis(&RedisConfig{
			KeyFunc:  keyFunc,
			Address:  c.RedisAddress,
			Password: c.RedisPassword,
		})
	default:
		return NewNoop()
	}
}
