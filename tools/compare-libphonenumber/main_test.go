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
	"context"
	"strings"
	"testing"

	"github.com/google/exposure-notifications-phonenumbers/pkg/batch"
	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	p, err := batch.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	raws := []string{"+33645342545", "abc", "+12025550173", "+10000000000"}
	diffs, err := compare(context.Background(), p, "", raws)
	if err != nil {
		t.Fatal(err)
	}

	if len(diffs) != 1 {
		t.Fatalf("expected 1 difference, got %d: %#v", len(diffs), diffs)
	}
	d := diffs[0]
	if got, want := d.Input, "+10000000000"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := d.Ours, "+10000000000"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := d.Theirs; got != "" {
		t.Errorf("expected libphonenumber to reject the number, got %q", got)
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	got, err := readLines(strings.NewReader("  +12025550173 \n\n\t\nabc\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"+12025550173", "abc"}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
