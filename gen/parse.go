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

// Package gen builds descriptor tables from Go source and emits the code
// that registers them.
//
// Members are the constants declared with the enumeration type. Optional
// metadata is read from struct-tag style annotations in a constant's doc or
// line comment:
//
//	const (
//		Monday Weekday = iota // enumx:"mon" short:"Mo" long:"Monday" desc:"first working day"
//	)
//
// A type whose doc comment carries the directive //enumx:flags is a flag
// enumeration.
package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrTypeNotFound is returned when the file does not declare the type.
	ErrTypeNotFound = errors.New("enumx(gen): type not found")
	// ErrNotInteger is returned when the type is not defined over a
	// predeclared integer type.
	ErrNotInteger = errors.New("enumx(gen): type is not an integer")
	// ErrNoConstants is returned when no constant of the type is declared.
	ErrNoConstants = errors.New("enumx(gen): no constants declared")
)

const flagsDirective = "enumx:flags"

// tagKeys are the annotation keys, in Member field order.
var tagKeys = [...]string{"enumx", "short", "long", "desc"}

var integers = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
}

// Enum is one enumeration found in source.
type Enum struct {
	Package string
	Type    string
	Kind    apis.Kind
	Members []Member
}

// Member is one declared constant with its annotations.
type Member struct {
	Ident       string
	Override    string
	ShortName   string
	LongName    string
	Description string
}

// Parse parses a Go source file and extracts the enumeration typeName.
// src follows go/parser.ParseFile: nil reads filename.
func Parse(filename string, src any, typeName string) (Enum, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return Enum{}, fmt.Errorf("enumx(gen): %w", err)
	}
	return FromFile(f, typeName)
}

// FromFile extracts the enumeration typeName from a parsed file.
func FromFile(f *ast.File, typeName string) (Enum, error) {
	e := Enum{Package: f.Name.Name, Type: typeName}

	kind, err := findType(f, typeName)
	if err != nil {
		return Enum{}, err
	}
	e.Kind = kind

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}
		e.Members = append(e.Members, constants(gd, typeName, e.Members)...)
	}
	if len(e.Members) == 0 {
		return Enum{}, fmt.Errorf("%w: %s", ErrNoConstants, typeName)
	}
	return e, nil
}

func findType(f *ast.File, typeName string) (apis.Kind, error) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Name.Name != typeName {
				continue
			}
			id, ok := ts.Type.(*ast.Ident)
			if !ok || !integers[id.Name] || ts.Assign.IsValid() {
				return 0, fmt.Errorf("%w: %s", ErrNotInteger, typeName)
			}
			if hasDirective(gd.Doc) || hasDirective(ts.Doc) {
				return apis.KindFlags, nil
			}
			return apis.KindEnum, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
}

// constants returns the constants of typeName declared in gd. A spec belongs
// to the type when it names the type, repeats a spec that did (iota
// continuation), or is computed from known members or a conversion.
func constants(gd *ast.GenDecl, typeName string, known []Member) []Member {
	idents := make(map[string]bool, len(known))
	for _, m := range known {
		idents[m.Ident] = true
	}

	var (
		out []Member
		cur bool
	)
	for _, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)
		switch {
		case vs.Type != nil:
			id, ok := vs.Type.(*ast.Ident)
			cur = ok && id.Name == typeName
		case len(vs.Values) > 0:
			cur = refers(vs.Values, typeName, idents)
		}
		if !cur {
			continue
		}
		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}
			m := Member{Ident: name.Name}
			annotate(&m, vs.Doc, vs.Comment)
			out = append(out, m)
			idents[name.Name] = true
		}
	}
	return out
}

func refers(exprs []ast.Expr, typeName string, idents map[string]bool) bool {
	found := false
	for _, x := range exprs {
		ast.Inspect(x, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok && (id.Name == typeName || idents[id.Name]) {
				found = true
			}
			return !found
		})
	}
	return found
}

func annotate(m *Member, groups ...*ast.CommentGroup) {
	fields := [...]*string{&m.Override, &m.ShortName, &m.LongName, &m.Description}
	for _, cg := range groups {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			line := commentText(c.Text)
			i := tagStart(line)
			if i < 0 {
				continue
			}
			tag := reflect.StructTag(line[i:])
			for k, key := range tagKeys {
				if v, ok := tag.Lookup(key); ok {
					*fields[k] = v
				}
			}
		}
	}
}

func tagStart(line string) int {
	start := -1
	for _, key := range tagKeys {
		i := strings.Index(line, key+`:"`)
		if i >= 0 && (start < 0 || i < start) {
			start = i
		}
	}
	return start
}

func hasDirective(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if commentText(c.Text) == flagsDirective {
			return true
		}
	}
	return false
}

func commentText(s string) string {
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	return strings.TrimSpace(s)
}
