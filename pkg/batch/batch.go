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

// Package batch parses many phone numbers at once. Results are always returned
// in input order, regardless of how many workers are used.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/exposure-notifications-phonenumbers/pkg/cache"
	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"

	"github.com/google/exposure-notifications-server/pkg/logging"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Config configures a Processor.
type Config struct {
	// Hint is the country assumed for numbers without an international prefix.
	Hint string

	// Workers is the maximum number of numbers parsed concurrently. If zero, it
	// defaults to GOMAXPROCS.
	Workers int

	// Source is recorded on metrics to identify the caller.
	Source string

	// Cache, if set, stores Analyze results so repeated inputs skip the
	// engine. Entries live for CacheTTL, or an hour if that is zero.
	Cache    cache.Cacher
	CacheTTL time.Duration
}

// Processor parses batches of numbers. It is safe for concurrent use.
type Processor struct {
	engine  *phonenumber.Engine
	hint    string
	workers int
	source  string

	cache    cache.Cacher
	cacheTTL time.Duration
}

// New creates a processor. If engine is nil, phonenumber.Default is used. If
// cfg is nil, the zero Config is used.
func New(engine *phonenumber.Engine, cfg *Config) (*Processor, error) {
	if engine == nil {
		engine = phonenumber.Default()
	}
	if cfg == nil {
		cfg = new(Config)
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	hint := ""
	if cfg.Hint != "" {
		c, ok := engine.Table().Lookup(cfg.Hint)
		if !ok {
			return nil, fmt.Errorf("%w: %q", phonenumber.ErrUnknownCountry, cfg.Hint)
		}
		hint = c.Code
	}

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &Processor{
		engine:   engine,
		hint:     hint,
		workers:  workers,
		source:   cfg.Source,
		cache:    cfg.Cache,
		cacheTTL: ttl,
	}, nil
}

// Workers returns the concurrency limit.
func (p *Processor) Workers() int {
	return p.workers
}

type result struct {
	number *phonenumber.PhoneNumber
	err    error
}

// parse parses every input, using at most p.workers goroutines. The only
// error returned is the context's.
func (p *Processor) parse(ctx context.Context, raws []string) ([]result, error) {
	logger := logging.FromContext(ctx).Named("batch.parse")

	results := make([]result, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range raws {
		i := i

		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			n, err := p.engine.Parse(raws[i], p.hint)
			results[i] = result{number: n, err: err}
			p.record(gctx, n, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	logger.Debugw("parsed batch",
		"count", len(raws),
		"failed", failed,
		"workers", p.workers)

	return results, nil
}

// ParseAll parses every input. The returned slice is aligned with raws; entries
// that failed to parse are nil and their errors are collected, in input order,
// into the returned multierror. A non-nil error does not mean every entry
// failed.
func (p *Processor) ParseAll(ctx context.Context, raws []string) ([]*phonenumber.PhoneNumber, error) {
	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	out := make([]*phonenumber.PhoneNumber, len(results))
	for i, r := range results {
		if r.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%d: %w", i, r.err))
			continue
		}
		out[i] = r.number
	}
	return out, merr.ErrorOrNil()
}

// Validate reports whether each input resolves to a country.
func (p *Processor) Validate(ctx context.Context, raws []string) ([]bool, error) {
	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(results))
	for i, r := range results {
		out[i] = r.err == nil && r.number.Valid()
	}
	return out, nil
}

// Normalize returns the canonical form of each input: E.164 for resolved
// numbers and bare digits for unresolved ones. Entries that fail to parse are
// empty.
func (p *Processor) Normalize(ctx context.Context, raws []string) ([]string, error) {
	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(results))
	for i, r := range results {
		if r.err == nil {
			out[i] = r.number.String()
		}
	}
	return out, nil
}

// Countries returns the country each input resolved to, or nil.
func (p *Processor) Countries(ctx context.Context, raws []string) ([]*countries.Country, error) {
	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	out := make([]*countries.Country, len(results))
	for i, r := range results {
		if r.err == nil {
			out[i] = r.number.Country()
		}
	}
	return out, nil
}

// Types returns the subscriber type of each input. Entries that fail to parse
// or resolve are Unknown.
func (p *Processor) Types(ctx context.Context, raws []string) ([]countries.SubscriberType, error) {
	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	out := make([]countries.SubscriberType, len(results))
	for i, r := range results {
		if r.err == nil {
			out[i] = r.number.Type()
		}
	}
	return out, nil
}

// Analysis is the full result for a single input.
type Analysis struct {
	Original   string                   `json:"original"`
	Valid      bool                     `json:"valid"`
	Normalized string                   `json:"normalized,omitempty"`
	Country    string                   `json:"country,omitempty"`
	Status     string                   `json:"status"`
	Type       countries.SubscriberType `json:"type"`
	Error      string                   `json:"error,omitempty"`
}

// Analyze returns an Analysis for each input. With a cache configured, inputs
// already analyzed under the same hint are served from it.
func (p *Processor) Analyze(ctx context.Context, raws []string) ([]*Analysis, error) {
	if p.cache != nil {
		return p.analyzeCached(ctx, raws)
	}

	results, err := p.parse(ctx, raws)
	if err != nil {
		return nil, err
	}

	out := make([]*Analysis, len(results))
	for i, r := range results {
		out[i] = analysis(raws[i], r.number, r.err)
	}
	return out, nil
}

func (p *Processor) analyzeCached(ctx context.Context, raws []string) ([]*Analysis, error) {
	out := make([]*Analysis, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range raws {
		i := i

		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			key := &cache.Key{
				Namespace: "analysis:" + p.hint,
				Key:       raws[i],
			}

			var a Analysis
			if err := p.cache.Fetch(gctx, key, &a, p.cacheTTL, func() (interface{}, error) {
				n, err := p.engine.Parse(raws[i], p.hint)
				p.record(gctx, n, err)
				return analysis(raws[i], n, err), nil
			}); err != nil {
				return fmt.Errorf("failed to fetch analysis %d: %w", i, err)
			}
			out[i] = &a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to analyze batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to analyze batch: %w", err)
	}
	return out, nil
}

func analysis(raw string, n *phonenumber.PhoneNumber, err error) *Analysis {
	a := &Analysis{
		Original: raw,
		Status:   phonenumber.Unresolved.String(),
	}
	if err != nil {
		a.Error = err.Error()
		return a
	}

	a.Valid = n.Valid()
	a.Normalized = n.String()
	a.Status = n.Status().String()
	a.Type = n.Type()
	if c := n.Country(); c != nil {
		a.Country = c.Code
	}
	return a
}
