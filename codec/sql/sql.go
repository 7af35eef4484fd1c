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

// Package sql adapts enumeration converters to database/sql.
//
// Names are stored as TEXT and numbers as INTEGER. database/sql has no
// unsigned 64-bit value, so unsigned 64-bit enums store their bit pattern
// in an int64 and read it back the same way.
package sql

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/token"
)

// Codec converts values of T to driver values and back.
type Codec[T apis.Integer] struct {
	conv *converter.Converter[T]
}

// New returns a Codec backed by conv.
func New[T apis.Integer](conv *converter.Converter[T]) *Codec[T] {
	return &Codec[T]{conv: conv}
}

// Value returns the driver value of v: a string or an int64.
func (c *Codec[T]) Value(v T) (driver.Value, error) {
	tok, err := c.conv.Write(v)
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.KindString {
		return tok.Text, nil
	}
	if tok.Signed {
		return tok.Int64()
	}
	n, err := tok.Uint64()
	if err != nil {
		return nil, err
	}
	return int64(n), nil
}

// Scan converts a value produced by a driver into T. NULL is rejected.
func (c *Codec[T]) Scan(src any) (T, error) {
	return c.conv.Read(c.token(src))
}

func (c *Codec[T]) token(src any) token.Token {
	switch x := src.(type) {
	case string:
		return token.String(x)
	case []byte:
		return token.String(string(x))
	case int64:
		if l := c.conv.Layout(); !l.Signed && l.Bits == 64 {
			return token.Number(strconv.FormatUint(uint64(x), 10))
		}
		return token.Number(strconv.FormatInt(x, 10))
	case nil:
		return token.Other("NULL")
	default:
		return token.Other(fmt.Sprintf("%T", src))
	}
}
