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

package batch

import (
	"context"
	"errors"

	"github.com/google/exposure-notifications-phonenumbers/pkg/observability"
	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

const metricPrefix = observability.MetricRoot + "/batch"

var mParsed = stats.Int64(metricPrefix+"/parsed", "The number of inputs parsed.", stats.UnitDimensionless)

var parsedView = &view.View{
	Name:        metricPrefix + "/parsed_count",
	Measure:     mParsed,
	Description: "The count of parsed inputs by result and region",
	TagKeys:     append(observability.CommonTagKeys(), observability.ResultTagKey, observability.RegionTagKey),
	Aggregation: view.Count(),
}

func init() {
	observability.CollectViews(parsedView)
}

func (p *Processor) record(ctx context.Context, n *phonenumber.PhoneNumber, err error) {
	mutators := []tag.Mutator{
		tag.Upsert(observability.SourceTagKey, p.source),
		resultTag(n, err),
	}
	if err == nil {
		if c := n.Country(); c != nil {
			mutators = append(mutators, tag.Upsert(observability.RegionTagKey, c.Code))
		}
	}

	// Metrics are best effort.
	_ = stats.RecordWithTags(ctx, mutators, mParsed.M(1))
}

func resultTag(n *phonenumber.PhoneNumber, err error) tag.Mutator {
	switch {
	case errors.Is(err, phonenumber.ErrInvalidCharacter):
		return observability.ResultError("INVALID_CHARACTER")
	case errors.Is(err, phonenumber.ErrMultiplePlusSigns):
		return observability.ResultError("MULTIPLE_PLUS_SIGNS")
	case errors.Is(err, phonenumber.ErrTooShort):
		return observability.ResultError("TOO_SHORT")
	case errors.Is(err, phonenumber.ErrTooLong):
		return observability.ResultError("TOO_LONG")
	case err != nil:
		return observability.ResultError("FAILED")
	case n.Ambiguous():
		return observability.ResultError("AMBIGUOUS")
	case !n.Valid():
		return observability.ResultError("UNRESOLVED")
	default:
		return observability.ResultOK()
	}
}
