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

package strategy_test

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/strategy"
)

type lower struct{}

func (lower) ConvertName(s string) string { return strings.ToLower(s) }

type blank struct{}

func (blank) ConvertName(string) string { return "  " }

func TestOverrideStrategy_TryName(t *testing.T) {
	m := apis.Member{Name: "Friday", Override: "F", ShortName: "Fr", Description: "   "}

	cases := []struct {
		name    string
		src     apis.NameSource
		want    string
		handled bool
	}{
		{"override", apis.SourceOverride, "F", true},
		{"short", apis.SourceShortName, "Fr", true},
		{"long absent", apis.SourceLongName, "", false},
		{"blank description", apis.SourceDescription, "", false},
		{"unknown source", apis.NameSource(50), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := strategy.NewOverrideStrategy(tc.src).TryName(m)
			if got != tc.want || ok != tc.handled {
				t.Fatalf("TryName: got (%q,%v), want (%q,%v)", got, ok, tc.want, tc.handled)
			}
		})
	}
}

func TestPolicyStrategy_TryName(t *testing.T) {
	got, ok := strategy.NewPolicyStrategy(lower{}).TryName(apis.Member{Name: "Friday"})
	if !ok || got != "friday" {
		t.Fatalf("TryName: got (%q,%v), want (friday,true)", got, ok)
	}

	// A policy producing a blank name falls through.
	got, ok = strategy.NewPolicyStrategy(blank{}).TryName(apis.Member{Name: "Friday"})
	if ok || got != "" {
		t.Fatalf("TryName(blank): got (%q,%v), want ('',false)", got, ok)
	}
}

func TestPolicyStrategy_NilPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, strategy.ErrNilPolicy) {
			t.Fatalf("recover() = %v, want ErrNilPolicy", r)
		}
	}()
	_ = strategy.NewPolicyStrategy(nil)
}

func TestDeclaredStrategy_TryName(t *testing.T) {
	s := strategy.NewDeclaredStrategy()
	if got, ok := s.TryName(apis.Member{Name: "Friday"}); !ok || got != "Friday" {
		t.Fatalf("TryName: got (%q,%v), want (Friday,true)", got, ok)
	}
	if got, ok := s.TryName(apis.Member{}); ok || got != "" {
		t.Fatalf("TryName(empty): got (%q,%v), want ('',false)", got, ok)
	}
}

// TestStrategies_ConcurrentTryName_NoRace verifies strategies are stateless
// and return stable names under concurrency.
func TestStrategies_ConcurrentTryName_NoRace(t *testing.T) {
	strats := []apis.Strategy{
		strategy.NewOverrideStrategy(apis.SourceOverride),
		strategy.NewPolicyStrategy(lower{}),
		strategy.NewDeclaredStrategy(),
	}
	m := apis.Member{Name: "Friday", Override: "F"}
	want := []string{"F", "friday", "Friday"}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := i % len(strats)
				if got, _ := strats[j].TryName(m); got != want[j] {
					t.Errorf("strategy %d: got %q, want %q", j, got, want[j])
					return
				}
			}
		}()
	}
	wg.Wait()
}
