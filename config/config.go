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

package config

import (
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
)

const (
	// DefaultSource represents the default for Source.
	// The explicit override name is the priority-1 naming source.
	DefaultSource = apis.SourceOverride
	// DefaultAllowStrings represents the default for AllowStrings.
	DefaultAllowStrings = true
	// DefaultAllowNumbers represents the default for AllowNumbers.
	DefaultAllowNumbers = true
)

// NewConfig constructs an apis.Config from the given options.
// The result is not validated; see Validate.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// No naming policy is set, so declared names are used unmodified.
func DefaultConfig() apis.Config {
	return apis.Config{
		Source:       DefaultSource,
		AllowStrings: DefaultAllowStrings,
		AllowNumbers: DefaultAllowNumbers,
	}
}

// Validate reports whether cfg can be used to build a converter.
// Errors wrap apis.ErrInvalidConfiguration.
func Validate(cfg apis.Config) error {
	if !cfg.Source.Valid() {
		return fmt.Errorf("%w: unknown name source %d", apis.ErrInvalidConfiguration, uint8(cfg.Source))
	}
	if cfg.Policy != nil && !reflect.TypeOf(cfg.Policy).Comparable() {
		return fmt.Errorf("%w: naming policy %T is not comparable", apis.ErrInvalidConfiguration, cfg.Policy)
	}
	return nil
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithPolicy sets the naming policy. A nil policy disables priority level 2.
func WithPolicy(p apis.NamingPolicy) Option {
	return func(c *apis.Config) {
		c.Policy = p
	}
}

// WithSource sets the priority-1 naming source.
func WithSource(src apis.NameSource) Option {
	return func(c *apis.Config) {
		c.Source = src
	}
}

// WithAllowStrings sets the AllowStrings option.
func WithAllowStrings(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowStrings = allow
	}
}

// WithAllowNumbers sets the AllowNumbers option.
func WithAllowNumbers(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowNumbers = allow
	}
}

// StringsOnly is shorthand for allowing strings and rejecting numbers.
func StringsOnly() Option {
	return func(c *apis.Config) {
		c.AllowStrings = true
		c.AllowNumbers = false
	}
}

// NumbersOnly is shorthand for allowing numbers and rejecting strings.
func NumbersOnly() Option {
	return func(c *apis.Config) {
		c.AllowStrings = false
		c.AllowNumbers = true
	}
}
