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

// Package protoenum registers protobuf enums as enumerations.
//
// Value names become declared names and full names become long names.
// Aliased values (allow_alias) are kept; the first declared name is the
// canonical one.
package protoenum

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/registry"
)

// Enum is a generated protobuf enum type.
type Enum interface {
	~int32
	protoreflect.Enum
}

// Members returns the descriptors of ed's values in declaration order.
func Members(ed protoreflect.EnumDescriptor) []apis.Member {
	values := ed.Values()
	out := make([]apis.Member, values.Len())
	for i := range values.Len() {
		v := values.Get(i)
		out[i] = registry.Member(int32(v.Number()), string(v.Name()),
			registry.WithLongName(string(v.FullName())))
	}
	return out
}

// Register registers T with the values of ed.
func Register[T ~int32](reg apis.Registry, ed protoreflect.EnumDescriptor) error {
	if ed == nil {
		return fmt.Errorf("%w: nil enum descriptor", apis.ErrNotRegistered)
	}
	return registry.RegisterEnum[T](reg, Members(ed)...)
}

// RegisterType registers the generated enum T using its own descriptor.
func RegisterType[T Enum](reg apis.Registry) error {
	var zero T
	return Register[T](reg, zero.Descriptor())
}
