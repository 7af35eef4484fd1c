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

// Package enumx converts enumeration values to and from text.
//
// In Go an enumeration is a named integer type plus its declared constants.
// enumx keeps a descriptor table per type (see package registry), derives
// one canonical name per member and builds a per-type dictionary that
// writes names exactly and reads them back ignoring case. Numbers are a
// fallback representation; flag enumerations are written as ", " separated
// member lists.
//
// # Naming
//
// The written name of a member is, by priority:
//
//  1. its override from the configured name source (apis.NameSource),
//  2. the configured naming policy applied to the declared name,
//  3. the declared name.
//
// Reading accepts every one of those names in any case.
//
// # Defaults
//
// This package holds an immutable snapshot of process defaults: a
// configuration, a registry, a cache store and a naming chain builder.
// Readers load the snapshot without locking; setters build a new snapshot
// and swap it in atomically. Converters capture the snapshot's
// configuration when they are created:
//
//	_ = enumx.RegisterEnum[Weekday](
//		registry.Member(Monday, "Monday"),
//		registry.Member(Tuesday, "Tuesday", registry.WithOverride("tue")),
//	)
//	conv, err := enumx.NewConverter[Weekday]()
//	tok, err := conv.Write(Tuesday) // token.String("tue")
//
// NewConverter and NewFlagsConverter read these process-wide, mutable
// defaults, so their result depends on every earlier SetConfig, SetRegistry,
// SetStore and SetBuilder call in the process. Code that wants its
// configuration threaded through construction should wire the pieces
// itself with cache.NewStore, registry.New and converter.New; tests and
// libraries should prefer that.
//
// # Hosts
//
// Converters exchange tokens (package token). The codec/* packages bind
// them to encoding/json, YAML nodes, MessagePack, database/sql and gqlgen.
// Descriptor tables can be written by hand, generated from source (package
// gen) or derived from protobuf enums (package protoenum).
package enumx
