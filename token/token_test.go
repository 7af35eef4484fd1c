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

package token_test

import (
	"testing"

	"dirpx.dev/enumx/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k    token.Kind
		want string
	}{
		{token.KindOther, "other"},
		{token.KindString, "string"},
		{token.KindNumber, "number"},
		{token.Kind(7), "Unknown(7)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.k), got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	if got := token.Int(-3, 8); got != (token.Token{Kind: token.KindNumber, Text: "-3", Bits: 8, Signed: true}) {
		t.Fatalf("Int(-3, 8) = %+v", got)
	}
	if got := token.Uint(200, 8); got != (token.Token{Kind: token.KindNumber, Text: "200", Bits: 8}) {
		t.Fatalf("Uint(200, 8) = %+v", got)
	}
	if got := token.String("Monday"); got.Kind != token.KindString || got.Text != "Monday" {
		t.Fatalf("String() = %+v", got)
	}
	if got := token.Other("null"); got.Kind != token.KindOther {
		t.Fatalf("Other() = %+v", got)
	}

	n, err := token.Number("42").Int64()
	if err != nil || n != 42 {
		t.Fatalf("Number(42).Int64() = %d, %v", n, err)
	}
	if _, err := token.Number("-1").Uint64(); err == nil {
		t.Fatalf("Number(-1).Uint64() error = nil, want non-nil")
	}
}
