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
	"dirpx.dev/enumx/apis"
)

// NewDeclaredStrategy creates an apis.Strategy that returns the declared
// member name unmodified.
func NewDeclaredStrategy() apis.Strategy {
	return declaredStrategy{}
}

// declaredStrategy is the universal fallback at priority 3.
type declaredStrategy struct{}

// Ensure declaredStrategy implements apis.Strategy.
var _ apis.Strategy = declaredStrategy{}

// TryName returns m.Name; only an empty declared name falls through.
func (declaredStrategy) TryName(m apis.Member) (string, bool) {
	if m.Name == "" {
		return "", false
	}
	return m.Name, true
}
