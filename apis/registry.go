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

import "reflect"

// Registry is the process-wide descriptor table: a mapping from enumeration
// types to their statically known members. It is append-only; entries are
// never updated or removed once visible.
type Registry interface {
	// Register associates t with its kind and members.
	// Implementations must be idempotent for identical tables and reject
	// conflicting re-registrations.
	Register(t reflect.Type, kind Kind, members []Member) error
	// Lookup returns the table for t if present.
	Lookup(t reflect.Type) (Table, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Table
	// Count returns the number of registered types.
	Count() int
}
