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

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/exposure-notifications-phonenumbers/internal/textutil"
	"github.com/google/exposure-notifications-phonenumbers/pkg/batch"
	"github.com/google/exposure-notifications-phonenumbers/pkg/cache"
	"github.com/google/exposure-notifications-phonenumbers/pkg/config"
	"github.com/google/exposure-notifications-phonenumbers/pkg/digest"
	"github.com/google/exposure-notifications-phonenumbers/pkg/format"
	"github.com/google/exposure-notifications-phonenumbers/pkg/numberset"
	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
	"github.com/google/exposure-notifications-phonenumbers/pkg/redact"
	"github.com/google/exposure-notifications-phonenumbers/pkg/scanner"

	"github.com/dustin/go-humanize"
	"github.com/google/exposure-notifications-server/pkg/logging"
)

// maxLineSize is the longest input line accepted.
const maxLineSize = 1 << 20

type stats struct {
	lines      int64
	bytes      int64
	candidates int64
	reported   int64
}

func (s *stats) fields() []interface{} {
	return []interface{}{
		"lines", humanize.Comma(s.lines),
		"bytes", humanize.Bytes(uint64(s.bytes)),
		"candidates", humanize.Comma(s.candidates),
		"reported", humanize.Comma(s.reported),
	}
}

// record is a single reported candidate.
type record struct {
	Source     string `json:"source"`
	Line       int    `json:"line"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Raw        string `json:"raw"`
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
	Country    string `json:"country,omitempty"`
	Type       string `json:"type,omitempty"`
	Digest     string `json:"digest,omitempty"`
	Error      string `json:"error,omitempty"`
}

type runner struct {
	cfg       *config.ScanConfig
	scanner   *scanner.Scanner
	processor *batch.Processor
	cacher    cache.Cacher
	seen      *numberset.Set
	stats     stats
}

func newRunner(ctx context.Context, cfg *config.ScanConfig) (*runner, error) {
	engine := phonenumber.Default()

	// Only analyze mode reads from the cache.
	var cacher cache.Cacher
	if cfg.Analyze {
		var err error
		cacher, err = cache.CacherFor(ctx, &cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create cacher: %w", err)
		}
	}

	s, err := scanner.New(engine, &scanner.Config{
		Hint:      cfg.Region,
		MinDigits: cfg.MinDigits,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	p, err := batch.New(engine, &batch.Config{
		Hint:    cfg.Region,
		Workers: cfg.Workers,
		Source:   "phonescan",
		Cache:    cacher,
		CacheTTL: cfg.Cache.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create processor: %w", err)
	}

	r := &runner{
		cfg:       cfg,
		scanner:   s,
		processor: p,
		cacher:    cacher,
	}
	if cfg.Dedupe {
		r.seen = numberset.New(engine, cfg.Region)
	}
	return r, nil
}

// Close releases the runner's cache.
func (r *runner) Close() error {
	if r.cacher == nil {
		return nil
	}
	return r.cacher.Close()
}

// run reads lines from in and writes results for them to w. Offsets in the
// output refer to the line after width folding.
func (r *runner) run(ctx context.Context, name string, in io.Reader, w io.Writer) error {
	logger := logging.FromContext(ctx).Named("run")
	logger.Debugw("scanning", "source", name)

	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var pending []string
	enc := json.NewEncoder(w)

	for line := 1; lines.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		text := lines.Text()
		r.stats.lines++
		r.stats.bytes += int64(len(text)) + 1

		if r.cfg.FoldWidth {
			text = textutil.FoldWidth(text)
		}

		switch {
		case r.cfg.Analyze:
			if t := strings.TrimSpace(text); t != "" {
				pending = append(pending, t)
			}
		case r.cfg.Redact():
			if _, err := fmt.Fprintln(w, redact.Redact(r.scanner, text, r.cfg.RedactVisible)); err != nil {
				return err
			}
		default:
			if err := r.scanLine(ctx, enc, w, name, line, text); err != nil {
				return err
			}
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if len(pending) > 0 {
		return r.analyze(ctx, enc, w, pending)
	}
	return nil
}

func (r *runner) scanLine(ctx context.Context, enc *json.Encoder, w io.Writer, name string, line int, text string) error {
	cur := r.scanner.Cursor(text)
	for m, ok := cur.Next(); ok; m, ok = cur.Next() {
		r.stats.candidates++
		recordCandidate(ctx, m)

		if r.cfg.ValidOnly && !m.Valid {
			continue
		}
		if r.seen != nil && m.Valid && !r.seen.AddNumber(m.Number) {
			continue
		}

		rec, err := r.record(name, line, m)
		if err != nil {
			return err
		}
		r.stats.reported++

		if r.cfg.Output == config.OutputJSON {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			continue
		}

		shown := rec.Formatted
		if shown == "" {
			shown = rec.Normalized
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d-%d\t%s\t%s\t%s\t%s\n",
			rec.Source, rec.Line, rec.Start, rec.End, rec.Raw, orDash(shown), orDash(rec.Country), orDash(rec.Type)); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) record(name string, line int, m *scanner.Match) (*record, error) {
	rec := &record{
		Source:     name,
		Line:       line,
		Start:      m.Start,
		End:        m.End,
		Raw:        m.Raw,
		Valid:      m.Valid,
		Normalized: m.Normalized,
	}
	if m.Err != nil {
		rec.Error = m.Err.Error()
	}

	n := m.Number
	if n == nil {
		return rec, nil
	}

	if n.Valid() {
		s, err := format.Format(n, r.cfg.Style)
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %w", n, err)
		}
		rec.Formatted = s
		rec.Type = n.Type().String()
		if c := n.Country(); c != nil {
			rec.Country = c.Code
		}
	}

	if len(r.cfg.HMACKey) > 0 {
		d, err := digest.PhoneNumber(n, r.cfg.HMACKey)
		if err != nil {
			return nil, fmt.Errorf("failed to digest number: %w", err)
		}
		rec.Digest = d
	}
	return rec, nil
}

func (r *runner) analyze(ctx context.Context, enc *json.Encoder, w io.Writer, raws []string) error {
	results, err := r.processor.Analyze(ctx, raws)
	if err != nil {
		return fmt.Errorf("failed to analyze: %w", err)
	}

	for _, a := range results {
		r.stats.candidates++
		if r.cfg.ValidOnly && !a.Valid {
			continue
		}
		r.stats.reported++

		if r.cfg.Output == config.OutputJSON {
			if err := enc.Encode(a); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Original, orDash(a.Normalized), orDash(a.Country), a.Status, a.Type, orDash(a.Error)); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
