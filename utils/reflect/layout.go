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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/enumx/apis"
)

// maxUnwrap limits pointer unwrapping in Normalize.
const maxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type.
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
	// ErrReflectTypeNotInteger indicates that the underlying kind of the type
	// is not an integer kind.
	ErrReflectTypeNotInteger = errors.New("reflect: underlying type is not an integer")
)

// Normalize unwraps pointers and returns the named integer type an
// enumeration is declared as.
//
// Unwrapping policy:
//   - ptr -> Elem(), at most 8 levels;
//   - the result must be named; predeclared types such as int8 count as
//     named, unnamed composite types are rejected;
//   - the result's kind must be one of the integer kinds.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	if _, ok := kindBits(t); !ok {
		return nil, ErrReflectTypeNotInteger
	}
	return t, nil
}

// LayoutOf returns the width and signedness of t's underlying integer.
// Platform dependent kinds (int, uint, uintptr) report their actual size.
func LayoutOf(t reflect.Type) (apis.Layout, error) {
	nt, err := Normalize(t)
	if err != nil {
		return apis.Layout{}, err
	}
	bits, _ := kindBits(nt)
	return apis.Layout{Bits: bits, Signed: isSigned(nt.Kind())}, nil
}

// kindBits returns the bit size of an integer type.
func kindBits(t reflect.Type) (int, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return t.Bits(), true
	default:
		return 0, false
	}
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
