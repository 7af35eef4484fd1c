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

// Package json adapts enumeration converters to encoding/json.
package json

import (
	"bytes"
	"encoding/json"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/token"
)

// Codec encodes values of T as JSON strings or numbers.
type Codec[T apis.Integer] struct {
	conv *converter.Converter[T]
}

// New returns a Codec backed by conv.
func New[T apis.Integer](conv *converter.Converter[T]) *Codec[T] {
	return &Codec[T]{conv: conv}
}

// Marshal returns the JSON encoding of v.
func (c *Codec[T]) Marshal(v T) ([]byte, error) {
	tok, err := c.conv.Write(v)
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.KindString {
		return json.Marshal(tok.Text)
	}
	return []byte(tok.Text), nil
}

// Unmarshal decodes one JSON value into T. Strings and integers are
// accepted; null, booleans, objects and arrays are not.
func (c *Codec[T]) Unmarshal(data []byte) (T, error) {
	tok, err := Token(data)
	if err != nil {
		return 0, err
	}
	return c.conv.Read(tok)
}

// Token classifies raw JSON as a token.
func Token(data []byte) (token.Token, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return token.Other(""), nil
	}
	switch b := data[0]; {
	case b == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return token.Token{}, err
		}
		return token.String(s), nil
	case b == '-' || (b >= '0' && b <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return token.Token{}, err
		}
		return token.Number(n.String()), nil
	default:
		return token.Other(string(data)), nil
	}
}
