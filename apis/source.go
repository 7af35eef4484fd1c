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
	"fmt"
	"strings"
)

// NameSource selects which per-member override family is consulted first
// when a member's serialized name is resolved.
//
// # Overview
//
// A member descriptor carries several optional human-authored strings: an
// explicit override name and a few display candidates. Exactly one of them
// is active as the priority-1 naming source at a time; the others are
// ignored by both the write and the read side.
//
// # Values
//
//   - SourceOverride    selects the explicit serialization name (default).
//   - SourceShortName   selects the short display name.
//   - SourceLongName    selects the long display name.
//   - SourceDescription selects the description text.
//
// # Contract
//
//   - NameSource is a stable, public API; adding values is allowed,
//     existing values MUST NOT change meaning.
//   - Values outside the defined set are rejected by configuration
//     validation with ErrInvalidConfiguration.
type NameSource uint8

const (
	// SourceOverride selects Member.Override.
	SourceOverride NameSource = iota
	// SourceShortName selects Member.ShortName.
	SourceShortName
	// SourceLongName selects Member.LongName.
	SourceLongName
	// SourceDescription selects Member.Description.
	SourceDescription
)

// Valid reports whether s is one of the defined sources.
func (s NameSource) Valid() bool {
	return s <= SourceDescription
}

// String returns a short, stable token for s.
//
// For the defined values the tokens are "override", "short", "long" and
// "description". Unknown values render as "Unknown(<n>)" so corrupted
// configuration can still be surfaced in logs; String never panics.
func (s NameSource) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceShortName:
		return "short"
	case SourceLongName:
		return "long"
	case SourceDescription:
		return "description"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// ParseNameSource parses the textual form of a NameSource.
//
// Matching is case-insensitive and surrounding whitespace is ignored. The
// tokens accepted are the ones produced by String. On failure the returned
// error wraps ErrInvalidConfiguration and the returned value MUST NOT be
// relied upon.
func ParseNameSource(s string) (NameSource, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return SourceOverride, fmt.Errorf("%w: empty name source", ErrInvalidConfiguration)
	}

	switch strings.ToLower(trimmed) {
	case "override":
		return SourceOverride, nil
	case "short":
		return SourceShortName, nil
	case "long":
		return SourceLongName, nil
	case "description":
		return SourceDescription, nil
	default:
		return SourceOverride, fmt.Errorf("%w: unknown name source %q", ErrInvalidConfiguration, s)
	}
}

// MustParseNameSource is like ParseNameSource but panics on invalid input.
// It is meant for hard-coded values in initialization code and tests.
func MustParseNameSource(s string) NameSource {
	src, err := ParseNameSource(s)
	if err != nil {
		panic(err)
	}
	return src
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown values are refused rather than serialized as "Unknown(...)",
// so an invalid state is never persisted.
func (s NameSource) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal name source %d", ErrInvalidConfiguration, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the same tokens as ParseNameSource. On failure *s is left
// unchanged.
func (s *NameSource) UnmarshalText(text []byte) error {
	src, err := ParseNameSource(string(text))
	if err != nil {
		return err
	}
	*s = src
	return nil
}
