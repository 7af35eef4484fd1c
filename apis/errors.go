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
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidToken is returned when an input token's kind, shape or width
	// is unacceptable under the current configuration.
	ErrInvalidToken = errors.New("enumx: invalid token")
	// ErrInvalidEnumValue is returned when a value cannot be written under
	// the current configuration.
	ErrInvalidEnumValue = errors.New("enumx: invalid enum value")
	// ErrUnsupportedEnumKind is returned when a flags type is routed through
	// the plain path or vice versa.
	ErrUnsupportedEnumKind = errors.New("enumx: unsupported enum kind")
	// ErrInvalidConfiguration is returned for unrecognized configuration values.
	ErrInvalidConfiguration = errors.New("enumx: invalid configuration")
	// ErrNotRegistered is returned when no descriptor table exists for a type.
	ErrNotRegistered = errors.New("enumx: enum type not registered")
)

// Op names the conversion operation that failed.
type Op string

const (
	// OpRead is the token -> value direction.
	OpRead Op = "read"
	// OpWrite is the value -> token direction.
	OpWrite Op = "write"
	// OpBuild is converter and cache construction.
	OpBuild Op = "build"
)

// ConversionError describes a failed conversion. It unwraps to one of the
// sentinel errors above, so callers test it with errors.Is.
type ConversionError struct {
	Op    Op
	Type  reflect.Type
	Input string
	Err   error
}

// Error implements error.
func (e *ConversionError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s %v: %v", e.Op, e.Type, e.Err)
	}
	return fmt.Sprintf("%s %v %q: %v", e.Op, e.Type, e.Input, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
