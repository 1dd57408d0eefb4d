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

// Compares the engine's results against libphonenumber for numbers read from
// stdin, one per line, and reports where they disagree.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/exposure-notifications-phonenumbers/internal/project"
	"github.com/google/exposure-notifications-phonenumbers/pkg/batch"

	"github.com/dustin/go-humanize"
	"github.com/google/exposure-notifications-server/pkg/logging"
)

var (
	flagRegion  = flag.String("region", "", "default region for numbers without an international prefix")
	flagWorkers = flag.Int("workers", 0, "concurrent parses")
)

func main() {
	flag.Parse()

	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	logger := logging.NewLoggerFromEnv().Named("compare-libphonenumber")
	ctx = logging.WithLogger(ctx, logger)

	err := realMain(ctx)
	done()

	if err != nil {
		logger.Fatal(err)
	}
}

func realMain(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	raws, err := readLines(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	p, err := batch.New(nil, &batch.Config{
		Hint:    *flagRegion,
		Workers: *flagWorkers,
		Source:  "compare-libphonenumber",
	})
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	diffs, err := compare(ctx, p, *flagRegion, raws)
	if err != nil {
		return err
	}

	for _, d := range diffs {
		logger.Warnw("disagreement",
			"input", d.Input,
			"ours", d.Ours,
			"ours_region", d.OursRegion,
			"libphonenumber", d.Theirs,
			"libphonenumber_region", d.TheirsRegion)
	}

	logger.Infow("comparison complete",
		"numbers", humanize.Comma(int64(len(raws))),
		"disagreements", humanize.Comma(int64(len(diffs))))
	return nil
}

// difference is an input the two implementations handle differently.
type difference struct {
	Input        string
	Ours         string
	OursRegion   string
	Theirs       string
	TheirsRegion string
}

// compare parses every input with both implementations. Inputs only one side
// accepts, or that normalize to different E.164 values, are returned.
// Region disagreements on numbers with a shared calling code are expected and
// ignored when the engine marked the result ambiguous.
func compare(ctx context.Context, p *batch.Processor, region string, raws []string) ([]*difference, error) {
	results, err := p.Analyze(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze: %w", err)
	}

	var diffs []*difference
	for i, a := range results {
		raw := raws[i]

		theirs, err := project.LibphonenumberE164(raw, region)
		if err != nil || !project.LibphonenumberValid(raw, region) {
			theirs = ""
		}
		theirsRegion := project.LibphonenumberRegion(raw, region)

		ours := ""
		if a.Valid {
			ours = a.Normalized
		}

		switch {
		case ours != theirs:
		case ours != "" && a.Status != "ambiguous" && a.Country != theirsRegion:
		default:
			continue
		}

		diffs = append(diffs, &difference{
			Input:        raw,
			Ours:         ours,
			OursRegion:   a.Country,
			Theirs:       theirs,
			TheirsRegion: theirsRegion,
		})
	}
	return diffs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	}
	return out, s.Err()
}
