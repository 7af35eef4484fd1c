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
	"strings"

	"dirpx.dev/enumx/apis"
)

// NewOverrideStrategy creates an apis.Strategy that returns the member's
// override candidate selected by src.
func NewOverrideStrategy(src apis.NameSource) apis.Strategy {
	return overrideStrategy{src: src}
}

// overrideStrategy is the priority-1 step: an explicit, human-authored name
// wins over anything derived from the declared identifier.
type overrideStrategy struct {
	src apis.NameSource
}

// Ensure overrideStrategy implements apis.Strategy.
var _ apis.Strategy = overrideStrategy{}

// TryName returns the selected override; blank values fall through.
func (s overrideStrategy) TryName(m apis.Member) (string, bool) {
	name := m.NameFor(s.src)
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}
