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
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
)

// MemberOption sets optional descriptor fields.
type MemberOption func(*apis.Member)

// WithOverride sets the explicit serialization name.
func WithOverride(name string) MemberOption {
	return func(m *apis.Member) { m.Override = name }
}

// WithShortName sets the short display name.
func WithShortName(name string) MemberOption {
	return func(m *apis.Member) { m.ShortName = name }
}

// WithLongName sets the long display name.
func WithLongName(name string) MemberOption {
	return func(m *apis.Member) { m.LongName = name }
}

// WithDescription sets the description.
func WithDescription(desc string) MemberOption {
	return func(m *apis.Member) { m.Description = desc }
}

// Member builds the descriptor of one declared member of T.
//
// The value is widened with a Go integer conversion, which sign-extends
// signed types: Member(int8(-1), ...) has Value 0xffffffffffffffff.
func Member[T apis.Integer](v T, name string, opts ...MemberOption) apis.Member {
	m := apis.Member{Value: uint64(v), Name: name}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// RegisterEnum registers T as a plain enumeration in reg.
func RegisterEnum[T apis.Integer](reg apis.Registry, members ...apis.Member) error {
	return reg.Register(reflect.TypeFor[T](), apis.KindEnum, members)
}

// RegisterFlags registers T as a bit flag enumeration in reg.
func RegisterFlags[T apis.Integer](reg apis.Registry, members ...apis.Member) error {
	return reg.Register(reflect.TypeFor[T](), apis.KindFlags, members)
}

// Extract returns the descriptor table of t, requiring it to be of kind.
//
// It fails with apis.ErrNotRegistered when reg has no table for t and with
// apis.ErrUnsupportedEnumKind when t was registered with the other kind.
func Extract(reg apis.Registry, t reflect.Type, kind apis.Kind) (apis.Table, error) {
	if reg == nil || t == nil {
		return apis.Table{}, fmt.Errorf("%w: %v", apis.ErrNotRegistered, t)
	}
	tbl, ok := reg.Lookup(t)
	if !ok {
		return apis.Table{}, fmt.Errorf("%w: %v", apis.ErrNotRegistered, t)
	}
	if tbl.Kind != kind {
		return apis.Table{}, fmt.Errorf("%w: %v is registered as %v, requested %v",
			apis.ErrUnsupportedEnumKind, t, tbl.Kind, kind)
	}
	return tbl, nil
}
