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

package config

import (
	"context"
	"fmt"

	"github.com/google/exposure-notifications-phonenumbers/pkg/cache"
	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
	"github.com/google/exposure-notifications-phonenumbers/pkg/format"

	"github.com/hashicorp/go-multierror"
	"github.com/sethvargo/go-envconfig"
)

// ScanEnvPrefix is prepended to every ScanConfig environment variable.
const ScanEnvPrefix = "PHONESCAN_"

// OutputFormat is how the scanner CLI writes results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ScanConfig represents the environment based config for the phonescan CLI.
type ScanConfig struct {
	// Region is the country assumed for numbers written without an
	// international prefix.
	Region string `env:"REGION"`

	// MinDigits overrides the fewest digits a reported candidate contains.
	MinDigits int `env:"MIN_DIGITS, default=0"`

	// Workers is the concurrency used for per-line analysis. Zero means
	// GOMAXPROCS.
	Workers int `env:"WORKERS, default=0"`

	Output OutputFormat `env:"OUTPUT, default=text"`
	Style  format.Style `env:"FORMAT, default=e164"`

	// ValidOnly drops candidates that do not resolve to a country.
	ValidOnly bool `env:"VALID_ONLY, default=false"`

	// Dedupe reports each resolved number once per run.
	Dedupe bool `env:"DEDUPE, default=false"`

	// Analyze treats every input line as a single number instead of free text.
	Analyze bool `env:"ANALYZE, default=false"`

	// FoldWidth converts fullwidth digits and punctuation to ASCII before
	// scanning.
	FoldWidth bool `env:"FOLD_WIDTH, default=true"`

	// RedactVisible, when not negative, switches the CLI to writing its input
	// with every number masked down to this many trailing digits.
	RedactVisible int `env:"REDACT_VISIBLE, default=-1"`

	// HMACKey, when set, adds a keyed digest of each number to the output.
	HMACKey envconfig.Base64Bytes `env:"HMAC_KEY" json:"-"`

	// Cache stores analyze mode results between runs.
	Cache cache.Config `env:", prefix=CACHE_"`
}

// NewScanConfig initializes and validates a ScanConfig from the environment.
func NewScanConfig(ctx context.Context) (*ScanConfig, error) {
	return NewScanConfigWith(ctx, envconfig.OsLookuper())
}

// NewScanConfigWith initializes and validates a ScanConfig using l. Keys are
// looked up with ScanEnvPrefix.
func NewScanConfigWith(ctx context.Context, l envconfig.Lookuper) (*ScanConfig, error) {
	var cfg ScanConfig
	if err := ProcessWith(ctx, &cfg, envconfig.PrefixLookuper(ScanEnvPrefix, l)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *ScanConfig) Validate() error {
	var merr *multierror.Error

	if c.Region != "" {
		if _, ok := countries.Default().Lookup(c.Region); !ok {
			merr = multierror.Append(merr, fmt.Errorf("unknown region %q", c.Region))
		}
	}
	if err := checkPositive(c.MinDigits, "MIN_DIGITS"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := checkPositive(c.Workers, "WORKERS"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if c.RedactVisible < -1 {
		merr = multierror.Append(merr, fmt.Errorf("REDACT_VISIBLE must be -1 or more, got: %v", c.RedactVisible))
	}

	if c.Analyze && c.Redact() {
		merr = multierror.Append(merr, fmt.Errorf("ANALYZE and REDACT_VISIBLE cannot be combined"))
	}

	if err := c.Cache.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		merr = multierror.Append(merr, fmt.Errorf("OUTPUT must be %q or %q, got: %q", OutputText, OutputJSON, c.Output))
	}

	return merr.ErrorOrNil()
}

// Redact reports whether the CLI should redact its input.
func (c *ScanConfig) Redact() bool {
	return c.RedactVisible >= 0
}
