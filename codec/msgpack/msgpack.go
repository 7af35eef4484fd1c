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

// Package msgpack adapts enumeration converters to
// github.com/vmihailenco/msgpack/v5.
//
// Numbers are written with the fixed-width MessagePack code matching the
// enumeration's underlying integer, so an int8 enum is always an int8 on
// the wire.
package msgpack

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/token"
)

// Codec encodes values of T as MessagePack strings or integers.
type Codec[T apis.Integer] struct {
	conv *converter.Converter[T]
}

// New returns a Codec backed by conv.
func New[T apis.Integer](conv *converter.Converter[T]) *Codec[T] {
	return &Codec[T]{conv: conv}
}

// Encode writes v to enc.
func (c *Codec[T]) Encode(enc *msgpack.Encoder, v T) error {
	tok, err := c.conv.Write(v)
	if err != nil {
		return err
	}
	if tok.Kind == token.KindString {
		return enc.EncodeString(tok.Text)
	}
	if tok.Signed {
		n, err := tok.Int64()
		if err != nil {
			return err
		}
		return encodeInt(enc, n, tok.Bits)
	}
	n, err := tok.Uint64()
	if err != nil {
		return err
	}
	return encodeUint(enc, n, tok.Bits)
}

// Decode reads one value of T from dec.
func (c *Codec[T]) Decode(dec *msgpack.Decoder) (T, error) {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return 0, err
	}
	return c.conv.Read(tokenOf(v))
}

// Marshal returns the MessagePack encoding of v.
func (c *Codec[T]) Marshal(v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(msgpack.NewEncoder(&buf), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the first value in data.
func (c *Codec[T]) Unmarshal(data []byte) (T, error) {
	return c.Decode(msgpack.NewDecoder(bytes.NewReader(data)))
}

func tokenOf(v any) token.Token {
	switch x := v.(type) {
	case string:
		return token.String(x)
	case int64:
		return token.Number(strconv.FormatInt(x, 10))
	case uint64:
		return token.Number(strconv.FormatUint(x, 10))
	case nil:
		return token.Other("nil")
	default:
		return token.Other(fmt.Sprintf("%T", v))
	}
}

func encodeInt(enc *msgpack.Encoder, n int64, bits int) error {
	switch bits {
	case 8:
		return enc.EncodeInt8(int8(n))
	case 16:
		return enc.EncodeInt16(int16(n))
	case 32:
		return enc.EncodeInt32(int32(n))
	default:
		return enc.EncodeInt64(n)
	}
}

func encodeUint(enc *msgpack.Encoder, n uint64, bits int) error {
	switch bits {
	case 8:
		return enc.EncodeUint8(uint8(n))
	case 16:
		return enc.EncodeUint16(uint16(n))
	case 32:
		return enc.EncodeUint32(uint32(n))
	default:
		return enc.EncodeUint64(n)
	}
}
