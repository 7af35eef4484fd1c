/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cache

import (
	"context"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "dirpx.dev/enumx/cache"

// telemetry holds the store's metric instruments.
type telemetry struct {
	// builds counts completed cache constructions, including discarded
	// duplicates.
	builds metric.Int64Counter
	// memoEntries counts read literals added to memos.
	memoEntries metric.Int64Counter
}

func newTelemetry(mp metric.MeterProvider) (*telemetry, error) {
	meter := mp.Meter(meterName)

	var (
		tm  telemetry
		err error
	)
	tm.builds, err = meter.Int64Counter(
		"enumx.cache.builds",
		metric.WithDescription("Number of enum type caches built"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create builds counter: %w", err)
	}
	tm.memoEntries, err = meter.Int64Counter(
		"enumx.cache.memo.entries",
		metric.WithDescription("Number of read literals memoized"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create memo counter: %w", err)
	}
	return &tm, nil
}

func (tm *telemetry) built(opts metric.AddOption) {
	tm.builds.Add(context.Background(), 1, opts)
}

func (tm *telemetry) memoAdded(opts metric.AddOption) {
	tm.memoEntries.Add(context.Background(), 1, opts)
}

func typeAttr(t reflect.Type) attribute.KeyValue {
	return attribute.String("enum.type", t.String())
}
