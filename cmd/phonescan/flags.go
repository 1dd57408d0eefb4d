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
	"flag"
	"fmt"
	"strconv"

	"github.com/google/exposure-notifications-phonenumbers/pkg/config"
)

// applyFlags overrides cfg with every flag explicitly set on fs, then
// revalidates it.
func applyFlags(cfg *config.ScanConfig, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}

		v := f.Value.String()
		switch f.Name {
		case "region":
			cfg.Region = v
		case "output":
			cfg.Output = config.OutputFormat(v)
		case "format":
			err = cfg.Style.UnmarshalText([]byte(v))
		case "min-digits":
			cfg.MinDigits, err = strconv.Atoi(v)
		case "workers":
			cfg.Workers, err = strconv.Atoi(v)
		case "valid-only":
			cfg.ValidOnly, err = strconv.ParseBool(v)
		case "dedupe":
			cfg.Dedupe, err = strconv.ParseBool(v)
		case "analyze":
			cfg.Analyze, err = strconv.ParseBool(v)
		case "redact":
			cfg.RedactVisible, err = strconv.Atoi(v)
		case "fold-width":
			cfg.FoldWidth, err = strconv.ParseBool(v)
		}

		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}
