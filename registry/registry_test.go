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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/registry"
)

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
)

type Perm uint8

const (
	Read  Perm = 1
	Write Perm = 2
)

type Temp int8

type Label string

func weekdays() []apis.Member {
	return []apis.Member{
		registry.Member(Sunday, "Sunday"),
		registry.Member(Monday, "Monday", registry.WithOverride("mon")),
		registry.Member(Tuesday, "Tuesday", registry.WithShortName("Tu"), registry.WithDescription("second")),
	}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	if err := registry.RegisterEnum[Weekday](reg, weekdays()...); err != nil {
		t.Fatalf("RegisterEnum: unexpected error: %v", err)
	}
	// idempotent re-register with an identical table
	if err := registry.RegisterEnum[Weekday](reg, weekdays()...); err != nil {
		t.Fatalf("RegisterEnum idempotent: unexpected error: %v", err)
	}

	tbl, ok := reg.Lookup(reflect.TypeFor[Weekday]())
	if !ok {
		t.Fatalf("Lookup(Weekday): not found")
	}
	if tbl.Kind != apis.KindEnum || len(tbl.Members) != 3 {
		t.Fatalf("Lookup(Weekday) = %+v", tbl)
	}
	if tbl.Members[1].Override != "mon" || tbl.Members[2].ShortName != "Tu" {
		t.Fatalf("member options not applied: %+v", tbl.Members)
	}
	if want := (apis.Layout{Bits: reflect.TypeFor[int]().Bits(), Signed: true}); tbl.Layout != want {
		t.Fatalf("Layout = %+v, want %+v", tbl.Layout, want)
	}

	// lookup through a pointer hits the same table
	if _, ok := reg.Lookup(reflect.TypeFor[*Weekday]()); !ok {
		t.Fatalf("Lookup(*Weekday): not found")
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := registry.RegisterEnum[Weekday](reg, weekdays()...); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// same type, different members -> conflict
	err := registry.RegisterEnum[Weekday](reg, registry.Member(Sunday, "Sun"))
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
	// same members, different kind -> conflict
	err = registry.RegisterFlags[Weekday](reg, weekdays()...)
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration for kind change, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	cases := []struct {
		name    string
		typ     reflect.Type
		kind    apis.Kind
		members []apis.Member
		want    error
	}{
		{"nil type", nil, apis.KindEnum, weekdays(), registry.ErrNilType},
		{"no members", reflect.TypeFor[Weekday](), apis.KindEnum, nil, registry.ErrNoMembers},
		{"empty name", reflect.TypeFor[Weekday](), apis.KindEnum, []apis.Member{{Value: 1}}, registry.ErrEmptyName},
		{"duplicate name", reflect.TypeFor[Weekday](), apis.KindEnum, []apis.Member{{Value: 1, Name: "A"}, {Value: 2, Name: "A"}}, registry.ErrDuplicateName},
		{"overflow", reflect.TypeFor[Perm](), apis.KindFlags, []apis.Member{{Value: 256, Name: "Big"}}, registry.ErrValueOverflow},
		{"unknown kind", reflect.TypeFor[Perm](), apis.Kind(7), []apis.Member{{Value: 1, Name: "A"}}, registry.ErrUnknownKind},
		{"not integer", reflect.TypeFor[Label](), apis.KindEnum, []apis.Member{{Value: 1, Name: "A"}}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Register(tc.typ, tc.kind, tc.members)
			if err == nil {
				t.Fatalf("Register: want error, got nil")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("Register: want %v, got %v", tc.want, err)
			}
		})
	}
	if reg.Count() != 0 {
		t.Fatalf("failed registrations must not be stored, Count() = %d", reg.Count())
	}
}

func TestRegister_AliasesAllowed(t *testing.T) {
	reg := registry.New()
	err := registry.RegisterFlags[Perm](reg,
		registry.Member(Read, "Read"),
		registry.Member(Write, "Write"),
		registry.Member(Read|Write, "ReadWrite"),
		registry.Member(Read|Write, "All"),
	)
	if err != nil {
		t.Fatalf("RegisterFlags with aliases: unexpected error: %v", err)
	}
}

func TestMember_SignExtends(t *testing.T) {
	m := registry.Member(Temp(-1), "Minus")
	if m.Value != ^uint64(0) {
		t.Fatalf("Member(-1).Value = %#x, want %#x", m.Value, ^uint64(0))
	}

	reg := registry.New()
	if err := registry.RegisterEnum[Temp](reg, m, registry.Member(Temp(-128), "Min")); err != nil {
		t.Fatalf("RegisterEnum(Temp): unexpected error: %v", err)
	}
}

func TestExtract(t *testing.T) {
	reg := registry.New()
	if err := registry.RegisterEnum[Weekday](reg, weekdays()...); err != nil {
		t.Fatal(err)
	}
	if err := registry.RegisterFlags[Perm](reg, registry.Member(Read, "Read"), registry.Member(Write, "Write")); err != nil {
		t.Fatal(err)
	}

	tbl, err := registry.Extract(reg, reflect.TypeFor[Weekday](), apis.KindEnum)
	if err != nil {
		t.Fatalf("Extract(Weekday): %v", err)
	}
	for i, m := range tbl.Members {
		if m.Name != weekdays()[i].Name {
			t.Fatalf("Extract order: got %q at %d", m.Name, i)
		}
	}

	if _, err := registry.Extract(reg, reflect.TypeFor[Weekday](), apis.KindFlags); !errors.Is(err, apis.ErrUnsupportedEnumKind) {
		t.Fatalf("Extract(Weekday, flags): want ErrUnsupportedEnumKind, got %v", err)
	}
	if _, err := registry.Extract(reg, reflect.TypeFor[Perm](), apis.KindEnum); !errors.Is(err, apis.ErrUnsupportedEnumKind) {
		t.Fatalf("Extract(Perm, enum): want ErrUnsupportedEnumKind, got %v", err)
	}
	if _, err := registry.Extract(reg, reflect.TypeFor[Temp](), apis.KindEnum); !errors.Is(err, apis.ErrNotRegistered) {
		t.Fatalf("Extract(Temp): want ErrNotRegistered, got %v", err)
	}
}

func TestEntriesSnapshot(t *testing.T) {
	reg := registry.New()
	_ = registry.RegisterEnum[Weekday](reg, weekdays()...)
	_ = registry.RegisterFlags[Perm](reg, registry.Member(Read, "Read"))

	snap := reg.Entries()
	if len(snap) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(snap))
	}
	got := map[reflect.Type]apis.Kind{}
	for _, e := range snap {
		got[e.Type] = e.Kind
	}
	if got[reflect.TypeFor[Weekday]()] != apis.KindEnum || got[reflect.TypeFor[Perm]()] != apis.KindFlags {
		t.Fatalf("Entries() = %+v", got)
	}
}
