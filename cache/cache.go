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

// Package cache holds the per-type dictionaries that convert enumeration
// values to names and back.
//
// A Cache is built once per (type, kind, naming profile) and never
// invalidated. All of its maps are either immutable after construction or
// insert-only, so readers never take a lock.
package cache

import (
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/cases"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/composite"
)

// DefaultMemoLimit bounds the number of memoized read literals per Cache.
const DefaultMemoLimit = 1024

// Cache is the built dictionary of one enumeration type.
type Cache struct {
	typ    reflect.Type
	kind   apis.Kind
	layout apis.Layout

	// write maps a member value to its canonical name, first alias wins.
	write map[uint64]string
	// exact and folded index every candidate name of every member.
	exact  map[string]uint64
	folded map[string]uint64

	// set decomposes flag values; nil for plain enumerations.
	set *composite.Set
	// composed memoizes written flag combinations: uint64 -> string.
	// It shares memoLimit with the read memo.
	composed     sync.Map
	composedSize atomic.Int64

	// memo maps read literals to values: string -> uint64.
	memo      sync.Map
	memoSize  atomic.Int64
	memoLimit int64
	onMemo    func()
}

// build creates the dictionary of tbl, naming members with res.
func build(tbl apis.Table, res apis.Resolver, memoLimit int, onMemo func()) *Cache {
	c := &Cache{
		typ:       tbl.Type,
		kind:      tbl.Kind,
		layout:    tbl.Layout,
		write:     make(map[uint64]string, len(tbl.Members)),
		exact:     make(map[string]uint64, len(tbl.Members)*2),
		folded:    make(map[string]uint64, len(tbl.Members)*2),
		memoLimit: int64(memoLimit),
		onMemo:    onMemo,
	}

	for _, m := range tbl.Members {
		if _, ok := c.write[m.Value]; !ok {
			c.write[m.Value] = res.Resolve(m)
		}
		for _, name := range res.Candidates(m) {
			if _, ok := c.exact[name]; !ok {
				c.exact[name] = m.Value
			}
			key := fold(name)
			if _, ok := c.folded[key]; !ok {
				c.folded[key] = m.Value
			}
		}
	}

	if tbl.Kind == apis.KindFlags {
		values := make([]uint64, len(tbl.Members))
		for i, m := range tbl.Members {
			values[i] = m.Value
		}
		c.set = composite.NewSet(values, tbl.Layout.Mask())
	}
	return c
}

// Type returns the enumeration type the cache was built for.
func (c *Cache) Type() reflect.Type { return c.typ }

// Kind reports whether the cache composes flag values.
func (c *Cache) Kind() apis.Kind { return c.kind }

// Layout returns the underlying integer layout of the type.
func (c *Cache) Layout() apis.Layout { return c.layout }

// LookupWrite returns the canonical text of v.
//
// Plain enumerations only know their members. Flag values are decomposed
// into members and joined; values with bits no member covers miss.
func (c *Cache) LookupWrite(v uint64) (string, bool) {
	if s, ok := c.write[v]; ok {
		return s, true
	}
	if c.set == nil {
		return "", false
	}
	if s, ok := c.composed.Load(v); ok {
		return s.(string), true
	}

	parts, rest := c.set.Decompose(v)
	if rest != 0 || len(parts) == 0 {
		return "", false
	}
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = c.write[p]
	}
	text := composite.Join(names)
	if c.composedSize.Load() >= c.memoLimit {
		return text, true
	}
	if s, loaded := c.composed.LoadOrStore(v, text); loaded {
		return s.(string), true
	}
	c.composedSize.Add(1)
	return text, true
}

// LookupRead returns the value named by text.
//
// Matching is a union over every naming source of every member and is case
// insensitive. An exact spelling beats a case-folded one. Flag caches accept
// comma separated lists, OR the elements they know and skip the rest; they
// miss only when no element matches.
func (c *Cache) LookupRead(text string) (uint64, bool) {
	if v, ok := c.memo.Load(text); ok {
		return v.(uint64), true
	}

	var (
		v  uint64
		ok bool
	)
	if c.set == nil {
		v, ok = c.lookupName(text)
	} else {
		v, ok = c.lookupComposite(text)
	}
	if ok {
		c.remember(text, v)
	}
	return v, ok
}

func (c *Cache) lookupName(text string) (uint64, bool) {
	if v, ok := c.exact[text]; ok {
		return v, true
	}
	v, ok := c.folded[fold(text)]
	return v, ok
}

func (c *Cache) lookupComposite(text string) (uint64, bool) {
	if v, ok := c.lookupName(strings.TrimSpace(text)); ok {
		return v, true
	}
	v, matched, _ := composite.Parse(text, c.lookupName)
	return v, matched > 0
}

// remember memoizes a successful read unless the memo is full.
func (c *Cache) remember(text string, v uint64) {
	if c.memoSize.Load() >= c.memoLimit {
		return
	}
	if _, loaded := c.memo.LoadOrStore(text, v); loaded {
		return
	}
	c.memoSize.Add(1)
	if c.onMemo != nil {
		c.onMemo()
	}
}

// MemoLen returns the number of memoized read literals.
func (c *Cache) MemoLen() int {
	return int(c.memoSize.Load())
}

// ComposedLen returns the number of memoized written flag combinations.
func (c *Cache) ComposedLen() int {
	return int(c.composedSize.Load())
}

// fold returns the case-folded form of s. Casers keep state, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
