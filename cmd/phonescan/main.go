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

// Finds, normalizes and classifies phone numbers in text files or stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/exposure-notifications-phonenumbers/pkg/config"
	"github.com/google/exposure-notifications-phonenumbers/pkg/observability"

	"github.com/google/exposure-notifications-server/pkg/logging"
	"github.com/google/uuid"
)

var (
	flagRegion    = flag.String("region", "", "default region for numbers without an international prefix")
	flagOutput    = flag.String("output", "", "output format, text or json")
	flagFormat    = flag.String("format", "", "number style: e164, international, national or rfc3966")
	flagMinDigits = flag.Int("min-digits", 0, "fewest digits a reported candidate contains")
	flagWorkers   = flag.Int("workers", 0, "concurrent parses in analyze mode")
	flagValidOnly = flag.Bool("valid-only", false, "only report numbers that resolve to a country")
	flagDedupe    = flag.Bool("dedupe", false, "report each resolved number once")
	flagAnalyze   = flag.Bool("analyze", false, "treat each input line as a single number")
	flagRedact    = flag.Int("redact", -1, "write the input with numbers masked down to this many digits")
	flagFold      = flag.Bool("fold-width", true, "convert fullwidth characters before scanning")
)

func main() {
	flag.Parse()

	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	logger := logging.NewLoggerFromEnv().Named("phonescan")
	ctx = logging.WithLogger(ctx, logger)

	defer func() {
		done()
		if r := recover(); r != nil {
			logger.Fatalw("application panic", "panic", r)
		}
	}()

	err := realMain(ctx)
	done()

	if err != nil {
		logger.Fatal(err)
	}
}

func realMain(ctx context.Context) error {
	cfg, err := config.NewScanConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := applyFlags(cfg, flag.CommandLine); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := observability.RegisterViews(); err != nil {
		return fmt.Errorf("failed to register views: %w", err)
	}

	logger := logging.FromContext(ctx).With("run_id", uuid.New().String())
	ctx = logging.WithLogger(ctx, logger)

	r, err := newRunner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}
	defer r.Close()

	out := bufio.NewWriter(os.Stdout)

	files := flag.Args()
	if len(files) == 0 {
		if err := r.run(ctx, "stdin", os.Stdin, out); err != nil {
			return fmt.Errorf("failed to scan stdin: %w", err)
		}
	}
	for _, name := range files {
		if err := runFile(ctx, r, name, out); err != nil {
			return err
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Infow("scan complete", r.stats.fields()...)
	return nil
}

func runFile(ctx context.Context, r *runner, name string, out *bufio.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if err := r.run(ctx, name, f, out); err != nil {
		return fmt.Errorf("failed to scan %s: %w", name, err)
	}
	return nil
}
