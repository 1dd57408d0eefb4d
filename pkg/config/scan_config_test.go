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
	"strings"
	"testing"
	"time"

	"github.com/google/exposure-notifications-phonenumbers/pkg/cache"
	"github.com/google/exposure-notifications-phonenumbers/pkg/format"
	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"
)

func TestNewScanConfigWith(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		env  map[string]string
		want *ScanConfig
		err  string
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: &ScanConfig{
				Output:        OutputText,
				Style:         format.E164,
				FoldWidth:     true,
				RedactVisible: -1,
				Cache:         cache.Config{Type: cache.TypeNoop, TTL: time.Hour},
			},
		},
		{
			name: "everything",
			env: map[string]string{
				"PHONESCAN_REGION":         "gb",
				"PHONESCAN_MIN_DIGITS":     "9",
				"PHONESCAN_WORKERS":        "4",
				"PHONESCAN_OUTPUT":         "json",
				"PHONESCAN_FORMAT":         "international",
				"PHONESCAN_VALID_ONLY":     "true",
				"PHONESCAN_DEDUPE":         "true",
				"PHONESCAN_FOLD_WIDTH":     "false",
				"PHONESCAN_REDACT_VISIBLE": "4",
				"PHONESCAN_HMAC_KEY":       "c2VjcmV0",
				"PHONESCAN_CACHE_TYPE":     "REDIS",
				"PHONESCAN_CACHE_TTL":      "5m",
				"PHONESCAN_CACHE_HMAC_KEY": "a2V5",
			},
			want: &ScanConfig{
				Region:        "gb",
				MinDigits:     9,
				Workers:       4,
				Output:        OutputJSON,
				Style:         format.International,
				ValidOnly:     true,
				Dedupe:        true,
				FoldWidth:     false,
				RedactVisible: 4,
				HMACKey:       envconfig.Base64Bytes("secret"),
				Cache: cache.Config{
					Type:    cache.TypeRedis,
					TTL:     5 * time.Minute,
					HMACKey: envconfig.Base64Bytes("key"),
				},
			},
		},
		{
			name: "unprefixed_ignored",
			env: map[string]string{
				"REGION": "ZZ",
				"OUTPUT": "xml",
			},
			want: &ScanConfig{
				Output:        OutputText,
				Style:         format.E164,
				FoldWidth:     true,
				RedactVisible: -1,
				Cache:         cache.Config{Type: cache.TypeNoop, TTL: time.Hour},
			},
		},
		{
			name: "unknown_region",
			env:  map[string]string{"PHONESCAN_REGION": "ZZ"},
			err:  `unknown region "ZZ"`,
		},
		{
			name: "bad_output",
			env:  map[string]string{"PHONESCAN_OUTPUT": "xml"},
			err:  "OUTPUT must be",
		},
		{
			name: "negative_workers",
			env:  map[string]string{"PHONESCAN_WORKERS": "-2"},
			err:  "WORKERS must be positive",
		},
		{
			name: "bad_redact",
			env:  map[string]string{"PHONESCAN_REDACT_VISIBLE": "-5"},
			err:  "REDACT_VISIBLE",
		},
		{
			name: "analyze_and_redact",
			env: map[string]string{
				"PHONESCAN_ANALYZE":        "true",
				"PHONESCAN_REDACT_VISIBLE": "2",
			},
			err: "cannot be combined",
		},
		{
			name: "redis_without_key",
			env:  map[string]string{"PHONESCAN_CACHE_TYPE": "REDIS"},
			err:  "HMAC_KEY is required",
		},
		{
			name: "bad_format",
			env:  map[string]string{"PHONESCAN_FORMAT": "pretty"},
			err:  "pretty",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			got, err := NewScanConfigWith(ctx, envconfig.MapLookuper(tc.env))
			if tc.err != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tc.err)
				}
				if !strings.Contains(err.Error(), tc.err) {
					t.Fatalf("expected error containing %q, got %q", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanConfig_Redact(t *testing.T) {
	t.Parallel()

	if (&ScanConfig{RedactVisible: -1}).Redact() {
		t.Errorf("expected redaction to be disabled")
	}
	if !(&ScanConfig{RedactVisible: 0}).Redact() {
		t.Errorf("expected redaction to be enabled")
	}
}
