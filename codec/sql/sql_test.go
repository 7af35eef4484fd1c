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

package sql_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	_ "modernc.org/sqlite"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/cache"
	sqlcodec "dirpx.dev/enumx/codec/sql"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/converter"
	"dirpx.dev/enumx/policy"
	"dirpx.dev/enumx/registry"
)

type Status int32

const (
	Active Status = iota + 1
	Suspended
	Deleted
)

type Mask uint64

const (
	Low  Mask = 1
	High Mask = 1 << 63
)

type fixture struct {
	reg   apis.Registry
	store *cache.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	reg := registry.New()
	require.NoError(t, registry.RegisterEnum[Status](reg,
		registry.Member(Active, "Active"),
		registry.Member(Suspended, "Suspended"),
		registry.Member(Deleted, "Deleted"),
	))
	require.NoError(t, registry.RegisterFlags[Mask](reg,
		registry.Member(Low, "Low"),
		registry.Member(High, "High"),
	))
	store, err := cache.NewStore(cache.WithMeterProvider(noop.NewMeterProvider()))
	require.NoError(t, err)
	return fixture{reg: reg, store: store}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE accounts (id INTEGER PRIMARY KEY, status)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRoundTrip(t *testing.T) {
	f := newFixture(t)
	for name, opts := range map[string][]config.Option{
		"names":   {config.WithPolicy(policy.SnakeCase)},
		"numbers": {config.NumbersOnly()},
	} {
		t.Run(name, func(t *testing.T) {
			conv, err := converter.New[Status](f.store, f.reg, config.NewConfig(opts...))
			require.NoError(t, err)
			c := sqlcodec.New(conv)
			db := openDB(t)

			for i, s := range []Status{Active, Suspended, Deleted, Status(99)} {
				v, err := c.Value(s)
				require.NoError(t, err)
				_, err = db.Exec(`INSERT INTO accounts (id, status) VALUES (?, ?)`, i, v)
				require.NoError(t, err)

				var raw any
				require.NoError(t, db.QueryRow(`SELECT status FROM accounts WHERE id = ?`, i).Scan(&raw))
				got, err := c.Scan(raw)
				require.NoError(t, err)
				assert.Equal(t, s, got)
			}
		})
	}
}

func TestValue(t *testing.T) {
	f := newFixture(t)
	conv, err := converter.New[Status](f.store, f.reg, config.NewConfig(config.WithPolicy(policy.UpperCase)))
	require.NoError(t, err)
	c := sqlcodec.New(conv)

	v, err := c.Value(Suspended)
	require.NoError(t, err)
	assert.Equal(t, "SUSPENDED", v)

	v, err = c.Value(Status(-4))
	require.NoError(t, err)
	assert.Equal(t, int64(-4), v)
}

func TestScan(t *testing.T) {
	f := newFixture(t)
	conv, err := converter.New[Status](f.store, f.reg, config.DefaultConfig())
	require.NoError(t, err)
	c := sqlcodec.New(conv)

	got, err := c.Scan([]byte("deleted"))
	require.NoError(t, err)
	assert.Equal(t, Deleted, got)

	got, err = c.Scan(int64(2))
	require.NoError(t, err)
	assert.Equal(t, Suspended, got)

	for _, src := range []any{nil, 1.5, true, int64(1) << 40, "Archived"} {
		_, err := c.Scan(src)
		assert.True(t, errors.Is(err, apis.ErrInvalidToken), "%v: err = %v", src, err)
	}
}

func TestUnsigned64BitPattern(t *testing.T) {
	f := newFixture(t)
	conv, err := converter.NewFlags[Mask](f.store, f.reg, config.NewConfig(config.NumbersOnly()))
	require.NoError(t, err)
	c := sqlcodec.New(conv)

	v, err := c.Value(High | Low)
	require.NoError(t, err)
	assert.Equal(t, int64(-1<<63|1), v)

	got, err := c.Scan(v)
	require.NoError(t, err)
	assert.Equal(t, High|Low, got)
}
