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
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

// key identifies one Cache. Policies are required to be comparable by
// config.Validate, so the key is always hashable.
type key struct {
	reg    apis.Registry
	t      reflect.Type
	kind   apis.Kind
	source apis.NameSource
	policy apis.NamingPolicy
}

// Store owns the caches of every enumeration type seen by the process or by
// one converter family. The zero value is not usable; see NewStore.
type Store struct {
	caches sync.Map // key -> *Cache

	bld       apis.Builder
	logger    *slog.Logger
	memoLimit int
	metrics   *telemetry
}

// Option configures a Store.
type Option func(*options)

type options struct {
	bld       apis.Builder
	logger    *slog.Logger
	meter     metric.MeterProvider
	memoLimit int
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeterProvider sets the provider of the store's counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meter = mp
		}
	}
}

// WithBuilder replaces the builder of the naming chain.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithMemoLimit sets the per-cache bound shared by the read memo and the
// written flag combinations. Values below zero are treated as zero, which
// disables memoization.
func WithMemoLimit(n int) Option {
	return func(o *options) {
		o.memoLimit = max(n, 0)
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) (*Store, error) {
	o := options{
		bld:       builder.New(),
		logger:    slog.Default(),
		meter:     otel.GetMeterProvider(),
		memoLimit: DefaultMemoLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	tm, err := newTelemetry(o.meter)
	if err != nil {
		return nil, err
	}
	return &Store{
		bld:       o.bld,
		logger:    o.logger,
		memoLimit: o.memoLimit,
		metrics:   tm,
	}, nil
}

// GetOrBuild returns the cache of t under cfg's naming profile, building it
// from reg on first use.
//
// Concurrent first calls may each build a cache; exactly one is kept and
// every caller receives that one. A returned cache is always complete.
func (s *Store) GetOrBuild(reg apis.Registry, t reflect.Type, kind apis.Kind, cfg apis.Config) (*Cache, error) {
	if reg == nil || t == nil {
		return nil, fmt.Errorf("%w: %v", apis.ErrNotRegistered, t)
	}
	if !reflect.TypeOf(reg).Comparable() {
		return nil, fmt.Errorf("%w: registry %T is not comparable", apis.ErrInvalidConfiguration, reg)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	k := key{reg: reg, t: t, kind: kind, source: cfg.Source, policy: cfg.Policy}
	if c, ok := s.caches.Load(k); ok {
		return c.(*Cache), nil
	}

	tbl, err := registry.Extract(reg, t, kind)
	if err != nil {
		return nil, err
	}
	res, err := s.bld.BuildResolver(cfg)
	if err != nil {
		return nil, err
	}

	attrs := metric.WithAttributes(typeAttr(tbl.Type))
	c := build(tbl, res, s.memoLimit, func() { s.metrics.memoAdded(attrs) })
	s.metrics.built(attrs)

	actual, loaded := s.caches.LoadOrStore(k, c)
	if loaded {
		s.logger.Debug("enumx: discarded duplicate cache build",
			"type", tbl.Type.String(), "kind", kind.String())
	} else {
		s.logger.Debug("enumx: built cache",
			"type", tbl.Type.String(), "kind", kind.String(),
			"source", cfg.Source.String(), "members", len(tbl.Members))
	}
	return actual.(*Cache), nil
}

// Len returns the number of caches held.
func (s *Store) Len() int {
	n := 0
	s.caches.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
