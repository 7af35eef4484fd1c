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

package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/policy"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Friday", "friday"},
		{"FridayNight", "fridayNight"},
		{"HTTPStatus", "httpStatus"},
		{"ID", "id"},
		{"friday", "friday"},
		{"A", "a"},
		{"", ""},
		{"  ", "  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.CamelCase.ConvertName(tt.in), "CamelCase(%q)", tt.in)
	}
}

func TestCasePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy apis.NamingPolicy
		in     string
		want   string
	}{
		{"lower", policy.LowerCase, "FridayNight", "fridaynight"},
		{"upper", policy.UpperCase, "FridayNight", "FRIDAYNIGHT"},
		{"lower unicode", policy.LowerCase, "ÉTÉ", "été"},
		{"snake", policy.SnakeCase, "FridayNight", "friday_night"},
		{"kebab", policy.KebabCase, "FridayNight", "friday-night"},
		{"pascal", policy.PascalCase, "friday_night", "FridayNight"},
		{"blank stays blank", policy.SnakeCase, " ", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.ConvertName(tt.in))
		})
	}
}

func TestParseAndName(t *testing.T) {
	for _, tok := range []string{"camel", "pascal", "snake", "kebab", "lower", "upper"} {
		p, err := policy.Parse(tok)
		require.NoError(t, err, tok)
		require.NotNil(t, p, tok)
		assert.Equal(t, tok, policy.Name(p))
	}

	p, err := policy.Parse("  CAMEL ")
	require.NoError(t, err)
	assert.Equal(t, policy.CamelCase, p)

	for _, tok := range []string{"", "none", "None"} {
		p, err := policy.Parse(tok)
		require.NoError(t, err)
		assert.Nil(t, p)
	}
	assert.Equal(t, "none", policy.Name(nil))

	_, err = policy.Parse("title")
	require.ErrorIs(t, err, apis.ErrInvalidConfiguration)
}

func TestPoliciesAreComparable(t *testing.T) {
	// Policies key the type cache, so equal policies must compare equal.
	assert.True(t, policy.CamelCase == policy.CamelCase)
	assert.False(t, policy.CamelCase == policy.LowerCase)
}
