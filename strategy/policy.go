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

package strategy

import (
	"errors"
	"strings"

	"dirpx.dev/enumx/apis"
)

// ErrNilPolicy is the panic value of NewPolicyStrategy(nil).
var ErrNilPolicy = errors.New("enumx(strategy): nil naming policy")

// NewPolicyStrategy creates an apis.Strategy that transforms the declared
// member name with p. It panics with ErrNilPolicy if p is nil; callers that
// treat the policy as optional should omit the strategy instead.
func NewPolicyStrategy(p apis.NamingPolicy) apis.Strategy {
	if p == nil {
		panic(ErrNilPolicy)
	}
	return policyStrategy{p: p}
}

// policyStrategy is the priority-2 step.
type policyStrategy struct {
	p apis.NamingPolicy
}

// Ensure policyStrategy implements apis.Strategy.
var _ apis.Strategy = policyStrategy{}

// TryName returns p(m.Name); a blank result falls through.
func (s policyStrategy) TryName(m apis.Member) (string, bool) {
	name := s.p.ConvertName(m.Name)
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}
