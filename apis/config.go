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

// Config carries read-only conversion knobs consumed when a converter (and
// the type cache behind it) is constructed.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Policy transforms declared member names at priority level 2.
	// A nil Policy means the declared name is used unmodified.
	// Implementations must have a comparable dynamic type because the
	// policy participates in the type cache key.
	Policy NamingPolicy

	// Source selects which per-member override family is consulted at
	// priority level 1.
	Source NameSource

	// AllowStrings permits the string representation on read and write.
	AllowStrings bool

	// AllowNumbers permits the numeric representation on read and write.
	AllowNumbers bool
}
