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

// Package graphql adapts enumeration converters to gqlgen scalars and enums.
//
// GraphQL enum values are names, so strings are the normal representation.
// Integer input is accepted only when the converter allows numbers.
package graphql

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/token"
)

// Codec marshals values of T for gqlgen resolvers.
type Codec[T apis.Integer] struct {
	conv *converter.Converter[T]
}

// New returns a Codec backed by conv.
func New[T apis.Integer](conv *converter.Converter[T]) *Codec[T] {
	return &Codec[T]{conv: conv}
}

// Marshal returns a graphql.Marshaler writing v as a quoted name or an
// integer literal.
func (c *Codec[T]) Marshal(v T) (graphql.Marshaler, error) {
	tok, err := c.conv.Write(v)
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.KindString {
		return graphql.MarshalString(tok.Text), nil
	}
	if tok.Signed {
		n, err := tok.Int64()
		if err != nil {
			return nil, err
		}
		return graphql.MarshalInt64(n), nil
	}
	n, err := tok.Uint64()
	if err != nil {
		return nil, err
	}
	return graphql.MarshalUint64(n), nil
}

// Unmarshal converts a gqlgen input value into T.
func (c *Codec[T]) Unmarshal(v any) (T, error) {
	return c.conv.Read(c.token(v))
}

func (c *Codec[T]) token(v any) token.Token {
	switch x := v.(type) {
	case string:
		return token.String(x)
	case nil:
		return token.Other("null")
	case bool:
		return token.Other(fmt.Sprint(x))
	}

	l := c.conv.Layout()
	if l.Signed {
		n, err := graphql.UnmarshalInt64(v)
		if err != nil {
			return token.Other(fmt.Sprintf("%T", v))
		}
		return token.Int(n, 64)
	}
	n, err := graphql.UnmarshalUint64(v)
	if err != nil {
		return token.Other(fmt.Sprintf("%T", v))
	}
	return token.Uint(n, 64)
}
