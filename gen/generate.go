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

package gen

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"dirpx.dev/enumx/apis"
)

const (
	rootPkg     = "dirpx.dev/enumx"
	registryPkg = "dirpx.dev/enumx/registry"
)

// File returns the registration code of enums as a jennifer file of
// package pkg. For every enumeration it emits an init function registering
// the descriptor table with the process defaults and a <Type>Values
// function listing the declared constants.
func File(pkg string, enums ...Enum) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by enumx. DO NOT EDIT.")
	f.ImportName(rootPkg, "enumx")
	f.ImportName(registryPkg, "registry")

	for _, e := range enums {
		genRegister(f, e)
		genValues(f, e)
	}
	return f
}

// Generate renders File(pkg, enums...) as formatted Go source.
func Generate(pkg string, enums ...Enum) ([]byte, error) {
	var buf bytes.Buffer
	if err := File(pkg, enums...).Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func genRegister(f *jen.File, e Enum) {
	fn := "RegisterEnum"
	if e.Kind == apis.KindFlags {
		fn = "RegisterFlags"
	}

	members := make([]jen.Code, len(e.Members))
	for i, m := range e.Members {
		members[i] = memberCall(m)
	}

	f.Func().Id("init").Params().Block(
		jen.If(
			jen.Err().Op(":=").Qual(rootPkg, fn).Types(jen.Id(e.Type)).Custom(jen.Options{
				Open:      "(",
				Close:     ")",
				Separator: ",",
				Multi:     true,
			}, members...),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Panic(jen.Err()),
		),
	)
}

func memberCall(m Member) jen.Code {
	args := []jen.Code{jen.Id(m.Ident), jen.Lit(m.Ident)}
	opts := []struct {
		fn, v string
	}{
		{"WithOverride", m.Override},
		{"WithShortName", m.ShortName},
		{"WithLongName", m.LongName},
		{"WithDescription", m.Description},
	}
	for _, o := range opts {
		if o.v != "" {
			args = append(args, jen.Qual(registryPkg, o.fn).Call(jen.Lit(o.v)))
		}
	}
	return jen.Qual(registryPkg, "Member").Call(args...)
}

func genValues(f *jen.File, e Enum) {
	name := e.Type + "Values"
	f.Commentf("%s returns the declared constants of %s.", name, e.Type)
	f.Func().Id(name).Params().Index().Id(e.Type).BlockFunc(func(body *jen.Group) {
		body.Return(jen.Index().Id(e.Type).ValuesFunc(func(vals *jen.Group) {
			for _, m := range e.Members {
				vals.Id(m.Ident)
			}
		}))
	})
}
