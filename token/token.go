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

// Package token defines the values exchanged between host adapters and the
// converter.
package token

import (
	"fmt"
	"strconv"
)

// Kind tags a Token.
type Kind uint8

const (
	// KindOther is any host token that is neither a string nor a number
	// (null, bool, array, ...). Converters reject it.
	KindOther Kind = iota
	// KindString carries enumeration member names.
	KindString
	// KindNumber carries a decimal integer literal.
	KindNumber
)

// String returns a human readable name of k.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Token is one scalar of the host format.
//
// For KindNumber, Text holds the decimal literal. Tokens produced by a
// converter also carry the integer width and signedness of the enumeration
// type so hosts with fixed-width encodings can emit the exact type.
type Token struct {
	Kind   Kind
	Text   string
	Bits   int
	Signed bool
}

// String returns a string token.
func String(s string) Token {
	return Token{Kind: KindString, Text: s}
}

// Number returns a number token from a decimal literal as read by a host.
func Number(literal string) Token {
	return Token{Kind: KindNumber, Text: literal}
}

// Int returns a signed number token of the given width.
func Int(v int64, bits int) Token {
	return Token{Kind: KindNumber, Text: strconv.FormatInt(v, 10), Bits: bits, Signed: true}
}

// Uint returns an unsigned number token of the given width.
func Uint(v uint64, bits int) Token {
	return Token{Kind: KindNumber, Text: strconv.FormatUint(v, 10), Bits: bits}
}

// Other returns a token the converter will refuse. desc is kept for error
// messages only.
func Other(desc string) Token {
	return Token{Kind: KindOther, Text: desc}
}

// Int64 parses a number token as a signed integer.
func (t Token) Int64() (int64, error) {
	return strconv.ParseInt(t.Text, 10, 64)
}

// Uint64 parses a number token as an unsigned integer.
func (t Token) Uint64() (uint64, error) {
	return strconv.ParseUint(t.Text, 10, 64)
}
