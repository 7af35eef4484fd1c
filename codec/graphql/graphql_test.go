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

package graphql_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/cache"
	gqlcodec "dirpx.dev/enumx/codec/graphql"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/policy"
	"dirpx.dev/enumx/registry"
)

type Role int

const (
	Admin Role = iota
	Editor
	Viewer
)

func roles(t *testing.T, opts ...config.Option) *gqlcodec.Codec[Role] {
	t.Helper()
	reg := registry.New()
	require.NoError(t, registry.RegisterEnum[Role](reg,
		registry.Member(Admin, "Admin"),
		registry.Member(Editor, "Editor"),
		registry.Member(Viewer, "Viewer", registry.WithOverride("READ_ONLY")),
	))
	store, err := cache.NewStore(cache.WithMeterProvider(noop.NewMeterProvider()))
	require.NoError(t, err)
	conv, err := converter.New[Role](store, reg, config.NewConfig(opts...))
	require.NoError(t, err)
	return gqlcodec.New(conv)
}

func marshal(t *testing.T, c *gqlcodec.Codec[Role], r Role) string {
	t.Helper()
	m, err := c.Marshal(r)
	require.NoError(t, err)
	var buf bytes.Buffer
	m.MarshalGQL(&buf)
	return buf.String()
}

func TestMarshal(t *testing.T) {
	c := roles(t, config.WithPolicy(policy.UpperCase))
	assert.Equal(t, `"ADMIN"`, marshal(t, c, Admin))
	assert.Equal(t, `"READ_ONLY"`, marshal(t, c, Viewer))
	assert.Equal(t, `12`, marshal(t, c, Role(12)))
}

func TestUnmarshal(t *testing.T) {
	c := roles(t, config.WithPolicy(policy.UpperCase))

	tests := []struct {
		name string
		in   any
		want Role
	}{
		{"enum", "EDITOR", Editor},
		{"declared", "Editor", Editor},
		{"override", "read_only", Viewer},
		{"int", 2, Viewer},
		{"int64", int64(0), Admin},
		{"json number", json.Number("1"), Editor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Unmarshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []any{nil, true, "OWNER", []any{"ADMIN"}} {
		_, err := c.Unmarshal(in)
		assert.True(t, errors.Is(err, apis.ErrInvalidToken), "%v: err = %v", in, err)
	}
}

func TestStringsOnly(t *testing.T) {
	c := roles(t, config.StringsOnly())

	_, err := c.Unmarshal(1)
	assert.True(t, errors.Is(err, apis.ErrInvalidToken))

	_, err = c.Marshal(Role(12))
	assert.True(t, errors.Is(err, apis.ErrInvalidEnumValue))
}
