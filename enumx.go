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

package enumx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/registry"
)

// init initializes the process defaults.
func init() {
	st.Store(defaultState())
}

var (
	// ErrNilRegistry is returned when a nil registry is installed.
	ErrNilRegistry = errors.New("enumx: nil registry")
	// ErrNilStore is returned when a nil cache store is installed.
	ErrNilStore = errors.New("enumx: nil cache store")
)

// state is an immutable snapshot of the process defaults.
type state struct {
	cfg   apis.Config
	reg   apis.Registry
	store *cache.Store
	bld   apis.Builder
	// pstore reports whether store was installed explicitly; pinned stores
	// survive SetBuilder.
	pstore bool
}

var (
	// st holds the current snapshot; readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

func defaultState() *state {
	b := builder.New()
	s, err := cache.NewStore(cache.WithBuilder(b))
	if err != nil {
		panic(fmt.Errorf("enumx: default cache store: %w", err))
	}
	return &state{
		cfg:   config.DefaultConfig(),
		reg:   registry.New(),
		store: s,
		bld:   b,
	}
}

// Config returns the default configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the default configuration. Converters created before
// the call keep the configuration they were created with.
func SetConfig(cfg apis.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.cfg = cfg
	st.Store(&next)
	return nil
}

// Registry returns the default registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the default registry.
func SetRegistry(reg apis.Registry) error {
	if reg == nil {
		return ErrNilRegistry
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.reg = reg
	st.Store(&next)
	return nil
}

// Store returns the default cache store.
func Store() *cache.Store {
	return st.Load().store
}

// SetStore installs s as the default cache store and pins it.
func SetStore(s *cache.Store) error {
	if s == nil {
		return ErrNilStore
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.store = s
	next.pstore = true
	st.Store(&next)
	return nil
}

// Builder returns the default naming chain builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the naming chain builder. Unless the store is pinned,
// a fresh store using b replaces it, since caches built by the previous
// builder would name members differently.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return fmt.Errorf("%w: nil builder", apis.ErrInvalidConfiguration)
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.bld = b
	if !next.pstore {
		s, err := cache.NewStore(cache.WithBuilder(b))
		if err != nil {
			return err
		}
		next.store = s
	}
	st.Store(&next)
	return nil
}

// IsStorePinned reports whether the default store was installed explicitly.
func IsStorePinned() bool {
	return st.Load().pstore
}

// UnpinStore lets the next SetBuilder replace the default store again.
func UnpinStore() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.pstore = false
	st.Store(&next)
}

// Reset restores the defaults: an empty registry, a fresh store and
// config.DefaultConfig.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(defaultState())
}

// RegisterEnum registers T as a plain enumeration in the default registry.
func RegisterEnum[T apis.Integer](members ...apis.Member) error {
	return registry.RegisterEnum[T](Registry(), members...)
}

// RegisterFlags registers T as a flag enumeration in the default registry.
func RegisterFlags[T apis.Integer](members ...apis.Member) error {
	return registry.RegisterFlags[T](Registry(), members...)
}

// NewConverter returns a converter for the plain enumeration T using the
// current process defaults. See converter.New for explicit wiring.
func NewConverter[T apis.Integer]() (*converter.Converter[T], error) {
	s := st.Load()
	return converter.New[T](s.store, s.reg, s.cfg)
}

// NewFlagsConverter returns a converter for the flag enumeration T using the
// current process defaults. See converter.NewFlags for explicit wiring.
func NewFlagsConverter[T apis.Integer]() (*converter.Converter[T], error) {
	s := st.Load()
	return converter.NewFlags[T](s.store, s.reg, s.cfg)
}
