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

	"github.com/google/exposure-notifications-phonenumbers/pkg/observability"
	"github.com/google/exposure-notifications-phonenumbers/pkg/scanner"

	ocstats "go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

const metricPrefix = observability.MetricRoot + "/scan"

var mCandidates = ocstats.Int64(metricPrefix+"/candidates", "The number of candidates found in text.", ocstats.UnitDimensionless)

func init() {
	observability.CollectViews(&view.View{
		Name:        metricPrefix + "/candidates_count",
		Measure:     mCandidates,
		Description: "The count of scanned candidates by result",
		TagKeys:     append(observability.CommonTagKeys(), observability.ResultTagKey),
		Aggregation: view.Count(),
	})
}

func recordCandidate(ctx context.Context, m *scanner.Match) {
	result := observability.ResultOK()
	switch {
	case m.Err != nil:
		result = observability.ResultError("FAILED")
	case !m.Valid:
		result = observability.ResultError("UNRESOLVED")
	}

	_ = ocstats.RecordWithTags(ctx, []tag.Mutator{
		tag.Upsert(observability.SourceTagKey, "phonescan"),
		result,
	}, mCandidates.M(1))
}
