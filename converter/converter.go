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

// Package converter converts typed enumeration values to tokens and back.
package converter

import (
	"fmt"
	"reflect"
	"strconv"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/token"
)

// Converter is the token boundary of one enumeration type. It is stateless
// across calls and safe for concurrent use; all shared state lives in the
// type's cache.
type Converter[T apis.Integer] struct {
	typ   reflect.Type
	cfg   apis.Config
	cache *cache.Cache
}

// New returns a converter for the plain enumeration T.
// T must be registered in reg as apis.KindEnum.
func New[T apis.Integer](store *cache.Store, reg apis.Registry, cfg apis.Config) (*Converter[T], error) {
	return newConverter[T](store, reg, apis.KindEnum, cfg)
}

// NewFlags returns a converter for the flag enumeration T.
// T must be registered in reg as apis.KindFlags.
func NewFlags[T apis.Integer](store *cache.Store, reg apis.Registry, cfg apis.Config) (*Converter[T], error) {
	return newConverter[T](store, reg, apis.KindFlags, cfg)
}

func newConverter[T apis.Integer](store *cache.Store, reg apis.Registry, kind apis.Kind, cfg apis.Config) (*Converter[T], error) {
	typ := reflect.TypeFor[T]()
	if store == nil {
		return nil, &apis.ConversionError{Op: apis.OpBuild, Type: typ,
			Err: fmt.Errorf("%w: nil cache store", apis.ErrInvalidConfiguration)}
	}
	c, err := store.GetOrBuild(reg, typ, kind, cfg)
	if err != nil {
		return nil, &apis.ConversionError{Op: apis.OpBuild, Type: typ, Err: err}
	}
	return &Converter[T]{typ: typ, cfg: cfg, cache: c}, nil
}

// Type returns T as a reflect.Type.
func (c *Converter[T]) Type() reflect.Type { return c.typ }

// Config returns the configuration captured at construction.
func (c *Converter[T]) Config() apis.Config { return c.cfg }

// Layout returns the underlying integer layout of T.
func (c *Converter[T]) Layout() apis.Layout { return c.cache.Layout() }

// Write returns the token for v.
//
// The canonical name is preferred when strings are allowed. Otherwise, or
// when v has no name, a number token of T's exact width is returned if
// numbers are allowed. A value that can be written neither way fails with
// apis.ErrInvalidEnumValue.
func (c *Converter[T]) Write(v T) (token.Token, error) {
	bits := uint64(v)
	if c.cfg.AllowStrings {
		if s, ok := c.cache.LookupWrite(bits); ok {
			return token.String(s), nil
		}
	}
	if c.cfg.AllowNumbers {
		return c.number(bits), nil
	}
	return token.Token{}, &apis.ConversionError{
		Op:    apis.OpWrite,
		Type:  c.typ,
		Input: c.number(bits).Text,
		Err:   apis.ErrInvalidEnumValue,
	}
}

// Read returns the value denoted by tok.
//
// String tokens must name a member (or, for flags, a comma separated list
// of members), ignoring case. Number tokens must fit T's width exactly but
// need not name a member. Every other token is rejected. All failures wrap
// apis.ErrInvalidToken.
func (c *Converter[T]) Read(tok token.Token) (T, error) {
	switch tok.Kind {
	case token.KindString:
		if !c.cfg.AllowStrings {
			return 0, c.invalid(tok, "string tokens are disabled")
		}
		v, ok := c.cache.LookupRead(tok.Text)
		if !ok {
			return 0, c.invalid(tok, "no matching member")
		}
		return T(v), nil

	case token.KindNumber:
		if !c.cfg.AllowNumbers {
			return 0, c.invalid(tok, "number tokens are disabled")
		}
		return c.parseNumber(tok)

	default:
		return 0, c.invalid(tok, "unsupported token kind "+tok.Kind.String())
	}
}

// parseNumber parses tok with T's exact width; out of range input fails.
func (c *Converter[T]) parseNumber(tok token.Token) (T, error) {
	l := c.cache.Layout()
	if l.Signed {
		n, err := strconv.ParseInt(tok.Text, 10, l.Bits)
		if err != nil {
			return 0, c.invalid(tok, err.Error())
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(tok.Text, 10, l.Bits)
	if err != nil {
		return 0, c.invalid(tok, err.Error())
	}
	return T(n), nil
}

func (c *Converter[T]) number(bits uint64) token.Token {
	l := c.cache.Layout()
	if l.Signed {
		return token.Int(int64(bits), l.Bits)
	}
	return token.Uint(bits&l.Mask(), l.Bits)
}

func (c *Converter[T]) invalid(tok token.Token, reason string) error {
	return &apis.ConversionError{
		Op:    apis.OpRead,
		Type:  c.typ,
		Input: tok.Text,
		Err:   fmt.Errorf("%w: %s", apis.ErrInvalidToken, reason),
	}
}
