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

// Package composite implements the bit algebra of flag enumerations:
// decomposing a value into defined members and recomposing parsed names.
//
// # Decomposition rule
//
// Overlapping members (e.g. All = Read|Write|Exec next to the individual
// bits) make decomposition ambiguous, so one fixed rule is applied:
//
//  1. Candidates are the distinct nonzero member values, first declaration
//     wins for aliases.
//  2. Candidates are visited widest first: by number of set bits within the
//     layout mask descending, then by value descending.
//  3. A candidate is selected when it is a subset of the value and covers at
//     least one bit no earlier selection covers.
//  4. Selected components are reported in ascending numeric order.
//
// This prefers the fewest, largest components: with All defined, the value
// 7 decomposes to [All] rather than [Read, Write, Exec].
package composite

import (
	"math/bits"
	"slices"
	"strings"
)

// Separator joins component names on write.
const Separator = ", "

// Set is the immutable candidate list of one flag enumeration.
type Set struct {
	mask  uint64
	parts []uint64 // widest first
}

// NewSet builds a Set from member values in declaration order. mask limits
// bit counting to the underlying integer width so sign-extended values are
// not treated as wider than they are.
func NewSet(values []uint64, mask uint64) *Set {
	s := &Set{mask: mask}
	seen := make(map[uint64]struct{}, len(values))
	for _, v := range values {
		if v == 0 {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		s.parts = append(s.parts, v)
	}
	slices.SortStableFunc(s.parts, func(a, b uint64) int {
		ca, cb := bits.OnesCount64(a&mask), bits.OnesCount64(b&mask)
		if ca != cb {
			return cb - ca
		}
		switch {
		case a&mask > b&mask:
			return -1
		case a&mask < b&mask:
			return 1
		default:
			return 0
		}
	})
	return s
}

// Decompose splits v into defined member values. rest holds the bits of v
// (within the mask) that no member covers; zero means v is fully expressible.
// Decompose(0) returns no components and rest 0.
func (s *Set) Decompose(v uint64) (components []uint64, rest uint64) {
	var covered uint64
	for _, p := range s.parts {
		if p&v != p {
			continue
		}
		if p&^covered&s.mask == 0 {
			continue
		}
		components = append(components, p)
		covered |= p
	}
	slices.SortFunc(components, func(a, b uint64) int {
		switch {
		case a&s.mask < b&s.mask:
			return -1
		case a&s.mask > b&s.mask:
			return 1
		default:
			return 0
		}
	})
	return components, v &^ covered & s.mask
}

// Len returns the number of distinct nonzero members.
func (s *Set) Len() int {
	return len(s.parts)
}

// Join concatenates component names with Separator.
func Join(names []string) string {
	return strings.Join(names, Separator)
}

// Split cuts a composite string on ',' and trims whitespace around every
// token. Empty tokens are kept so callers can reject them.
func Split(text string) []string {
	tokens := strings.Split(text, ",")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}
	return tokens
}

// Parse resolves every token of text with lookup and ORs the matches.
// Tokens lookup does not recognize are returned in unmatched, in input
// order; they contribute nothing to value.
func Parse(text string, lookup func(string) (uint64, bool)) (value uint64, matched int, unmatched []string) {
	for _, tok := range Split(text) {
		v, ok := lookup(tok)
		if !ok {
			unmatched = append(unmatched, tok)
			continue
		}
		value |= v
		matched++
	}
	return value, matched, unmatched
}
