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

package apis

import "fmt"

// Kind distinguishes plain enumerations from bit flag enumerations.
// The two kinds use different cache shapes and must not be mixed.
type Kind uint8

const (
	// KindEnum is a plain enumeration: every value maps to at most one member.
	KindEnum Kind = iota
	// KindFlags is a bit flag enumeration: values are bitwise unions of members.
	KindFlags
)

// String returns "enum", "flags" or "Unknown(<n>)".
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}
