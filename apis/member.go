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

package apis

import (
	"reflect"
	"slices"
)

// Integer is the set of underlying types an enumeration may have.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Member describes one declared enumeration member.
// Members are immutable once registered.
type Member struct {
	// Value is the member value widened to 64 bits. Signed values are
	// sign-extended and then reinterpreted as unsigned.
	Value uint64
	// Name is the declared identifier, e.g. "Friday".
	Name string
	// Override is the explicit serialization name, "" when absent.
	Override string
	// ShortName is an optional short display name.
	ShortName string
	// LongName is an optional long display name.
	LongName string
	// Description is an optional human-readable description.
	Description string
}

// NameFor returns the override candidate selected by src, "" when absent.
func (m Member) NameFor(src NameSource) string {
	switch src {
	case SourceOverride:
		return m.Override
	case SourceShortName:
		return m.ShortName
	case SourceLongName:
		return m.LongName
	case SourceDescription:
		return m.Description
	default:
		return ""
	}
}

// Layout is the width and signedness of an enumeration's underlying integer.
type Layout struct {
	// Bits is 8, 16, 32 or 64.
	Bits int
	// Signed reports whether the underlying integer is signed.
	Signed bool
}

// Mask returns a mask covering the layout's bits.
func (l Layout) Mask() uint64 {
	if l.Bits >= 64 || l.Bits <= 0 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(l.Bits) - 1
}

// Fits reports whether the widened value v is representable in the layout.
func (l Layout) Fits(v uint64) bool {
	if l.Bits >= 64 {
		return true
	}
	if !l.Signed {
		return v&^l.Mask() == 0
	}
	// Sign-extended: the bits above the layout must replicate its top bit.
	shift := uint(64 - l.Bits)
	return uint64(int64(v<<shift)>>shift) == v
}

// Table is the descriptor table of one enumeration type.
type Table struct {
	// Type is the enumeration type.
	Type reflect.Type
	// Kind tells plain enumerations from flag enumerations.
	Kind Kind
	// Layout is the underlying integer layout of Type.
	Layout Layout
	// Members lists every declared member in declaration order.
	Members []Member
}

// Equal reports whether two tables describe the same enumeration.
func (t Table) Equal(o Table) bool {
	return t.Type == o.Type &&
		t.Kind == o.Kind &&
		t.Layout == o.Layout &&
		slices.Equal(t.Members, o.Members)
}
