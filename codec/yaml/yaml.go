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

// Package yaml adapts enumeration converters to gopkg.in/yaml.v3 nodes.
package yaml

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/token"
)

const (
	strTag = "!!str"
	intTag = "!!int"
)

// Codec encodes values of T as YAML scalars.
type Codec[T apis.Integer] struct {
	conv *converter.Converter[T]
}

// New returns a Codec backed by conv.
func New[T apis.Integer](conv *converter.Converter[T]) *Codec[T] {
	return &Codec[T]{conv: conv}
}

// Encode returns v as a scalar node tagged !!str or !!int.
func (c *Codec[T]) Encode(v T) (*yaml.Node, error) {
	tok, err := c.conv.Write(v)
	if err != nil {
		return nil, err
	}
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: tok.Text}
	if tok.Kind == token.KindString {
		n.Tag = strTag
	} else {
		n.Tag = intTag
	}
	return n, nil
}

// Decode reads T from a scalar node. Aliases are followed. Integers in any
// YAML notation (0x1f, 0o17, 1_000) are accepted.
func (c *Codec[T]) Decode(n *yaml.Node) (T, error) {
	return c.conv.Read(c.token(n))
}

// Marshal returns the YAML document of v.
func (c *Codec[T]) Marshal(v T) ([]byte, error) {
	n, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// Unmarshal decodes a YAML document holding a single scalar.
func (c *Codec[T]) Unmarshal(data []byte) (T, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, err
	}
	n := &doc
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	return c.Decode(n)
}

func (c *Codec[T]) token(n *yaml.Node) token.Token {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil || n.Kind != yaml.ScalarNode {
		return token.Other("non-scalar node")
	}

	switch n.ShortTag() {
	case strTag:
		return token.String(n.Value)
	case intTag:
		// Normalize the literal to decimal; the converter checks the width.
		if c.conv.Layout().Signed {
			var i int64
			if err := n.Decode(&i); err == nil {
				return token.Number(strconv.FormatInt(i, 10))
			}
		} else {
			var u uint64
			if err := n.Decode(&u); err == nil {
				return token.Number(strconv.FormatUint(u, 10))
			}
		}
		return token.Number(n.Value)
	default:
		return token.Other(n.ShortTag())
	}
}
