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

// Package observability provides tools for working with open census.
package observability

import (
	"strings"
	"sync"

	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

const (
	MetricRoot = "phonenumbers"
)

var (
	// ResultTagKey is the outcome of an operation: OK, or an upper-case reason.
	ResultTagKey = tag.MustNewKey("result")

	// RegionTagKey is the country code a number resolved to.
	RegionTagKey = tag.MustNewKey("region")

	// SourceTagKey names the caller that recorded the measurement, such as
	// "phonescan".
	SourceTagKey = tag.MustNewKey("source")
)

var (
	viewsLock sync.Mutex
	views     []*view.View
)

// CommonTagKeys returns the tag keys added to every view.
func CommonTagKeys() []tag.Key {
	return []tag.Key{SourceTagKey}
}

// ResultOK tags a successful operation.
func ResultOK() tag.Mutator {
	return tag.Upsert(ResultTagKey, "OK")
}

// ResultError tags a failed operation with the given reason. The reason is
// upper-cased with spaces replaced by underscores.
func ResultError(reason string) tag.Mutator {
	reason = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(reason), " ", "_"))
	return tag.Upsert(ResultTagKey, reason)
}

// CollectViews adds views to the set returned by AllViews. Packages call it
// from init.
func CollectViews(v ...*view.View) {
	viewsLock.Lock()
	defer viewsLock.Unlock()
	views = append(views, v...)
}

// AllViews returns every collected view.
func AllViews() []*view.View {
	viewsLock.Lock()
	defer viewsLock.Unlock()

	out := make([]*view.View, len(views))
	copy(out, views)
	return out
}

// RegisterViews registers every collected view with the default exporter
// pipeline.
func RegisterViews() error {
	return view.Register(AllViews()...)
}
