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

// Package config defines the environment based configuration for this project.
// Each binary has a unique config type.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Validatable indicates that a type can be validated.
type Validatable interface {
	Validate() error
}

// ProcessWith populates spec with the given lookuper and validates it if it
// implements Validatable.
func ProcessWith(ctx context.Context, spec interface{}, l envconfig.Lookuper) error {
	if err := envconfig.ProcessWith(ctx, spec, l); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	if typ, ok := spec.(Validatable); ok {
		if err := typ.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	return nil
}

func checkPositive(n int, name string) error {
	if n < 0 {
		return fmt.Errorf("%v must be positive, got: %v", name, n)
	}
	return nil
}
