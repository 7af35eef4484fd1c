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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(registry): nil reflect.Type provided")
	// ErrNoMembers is returned when a table without members is registered.
	ErrNoMembers = errors.New("enumx(registry): no members provided")
	// ErrEmptyName is returned when a member has an empty declared name.
	ErrEmptyName = errors.New("enumx(registry): empty member name provided")
	// ErrDuplicateName is returned when two members share a declared name.
	ErrDuplicateName = errors.New("enumx(registry): duplicate member name")
	// ErrValueOverflow is returned when a member value does not fit the
	// underlying integer of the type.
	ErrValueOverflow = errors.New("enumx(registry): member value overflows underlying type")
	// ErrUnknownKind is returned for a Kind outside the defined set.
	ErrUnknownKind = errors.New("enumx(registry): unknown enum kind")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different table.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting type registration")
)

// New constructs an empty append-only Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is the default Registry implementation backed by sync.Map.
// Lookups are lock-free; writers take mu so count stays consistent.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to apis.Table.
	m sync.Map // map[reflect.Type]apis.Table
	// count tracks the number of registered entries.
	count int
}

// Register validates and stores the descriptor table of t.
// It is idempotent for an identical (type, kind, members) triple.
func (r *registry) Register(t reflect.Type, kind apis.Kind, members []apis.Member) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	nt, err := uref.Normalize(t)
	if err != nil {
		return fmt.Errorf("enumx(registry): %v: %w", t, err)
	}
	layout, err := uref.LayoutOf(nt)
	if err != nil {
		return fmt.Errorf("enumx(registry): %v: %w", t, err)
	}
	if kind != apis.KindEnum && kind != apis.KindFlags {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err := validate(nt, layout, members); err != nil {
		return err
	}

	tbl := apis.Table{
		Type:    nt,
		Kind:    kind,
		Layout:  layout,
		Members: append([]apis.Member(nil), members...),
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(nt); ok {
		return sameTable(old.(apis.Table), tbl)
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(nt); ok {
		return sameTable(old.(apis.Table), tbl)
	}

	r.m.Store(nt, tbl)
	r.count++
	return nil
}

// Lookup returns the table registered for t (pointers are unwrapped).
// The returned Members slice is shared and must not be modified.
func (r *registry) Lookup(t reflect.Type) (apis.Table, bool) {
	if t == nil {
		return apis.Table{}, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Table), true
	}
	nt, err := uref.Normalize(t)
	if err != nil || nt == t {
		return apis.Table{}, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Table), true
	}
	return apis.Table{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Table {
	entries := make([]apis.Table, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Table))
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// validate checks member names and values against the layout.
func validate(t reflect.Type, layout apis.Layout, members []apis.Member) error {
	if len(members) == 0 {
		return fmt.Errorf("%w: %v", ErrNoMembers, t)
	}
	seen := make(map[string]struct{}, len(members))
	for i, m := range members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: %v member #%d", ErrEmptyName, t, i)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %v.%s", ErrDuplicateName, t, m.Name)
		}
		seen[m.Name] = struct{}{}
		if !layout.Fits(m.Value) {
			return fmt.Errorf("%w: %v.%s = %#x", ErrValueOverflow, t, m.Name, m.Value)
		}
	}
	return nil
}

func sameTable(old, tbl apis.Table) error {
	if old.Equal(tbl) {
		return nil // idempotent re-registration
	}
	return fmt.Errorf("%w: %v", ErrConflictingRegistration, tbl.Type)
}
