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

// Package policy provides the naming policies commonly applied to enum
// member names before serialization.
//
// Every policy is a comparable, stateless value, so it can be used as part
// of a type cache key and shared between goroutines. Policies return blank
// input unchanged.
package policy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/enumx/apis"
)

var (
	// CamelCase lowers the leading upper-case run: "Friday" -> "friday",
	// "HTTPStatus" -> "httpStatus".
	CamelCase apis.NamingPolicy = camelCase{}
	// PascalCase capitalizes every word: "friday_night" -> "FridayNight".
	PascalCase apis.NamingPolicy = pascalCase{}
	// SnakeCase separates words with '_': "FridayNight" -> "friday_night".
	SnakeCase apis.NamingPolicy = snakeCase{}
	// KebabCase separates words with '-': "FridayNight" -> "friday-night".
	KebabCase apis.NamingPolicy = kebabCase{}
	// LowerCase lowers every letter.
	LowerCase apis.NamingPolicy = lowerCase{}
	// UpperCase uppers every letter.
	UpperCase apis.NamingPolicy = upperCase{}
)

// names maps policy tokens to policies. "none" maps to nil.
var names = map[string]apis.NamingPolicy{
	"none":   nil,
	"camel":  CamelCase,
	"pascal": PascalCase,
	"snake":  SnakeCase,
	"kebab":  KebabCase,
	"lower":  LowerCase,
	"upper":  UpperCase,
}

// Parse returns the policy named by s (case-insensitive, trimmed).
// "none" and "" return a nil policy. Unknown names wrap
// apis.ErrInvalidConfiguration.
func Parse(s string) (apis.NamingPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return nil, nil
	}
	p, ok := names[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown naming policy %q", apis.ErrInvalidConfiguration, s)
	}
	return p, nil
}

// Name returns the token Parse accepts for p, "none" for nil and "" for
// policies not defined in this package.
func Name(p apis.NamingPolicy) string {
	for k, v := range names {
		if v == p {
			return k
		}
	}
	return ""
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type camelCase struct{}

func (camelCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	rs := []rune(s)
	if !unicode.IsUpper(rs[0]) {
		return s
	}
	for i := range rs {
		if i == 1 && !unicode.IsUpper(rs[i]) {
			break
		}
		// Keep the last upper-case letter of a run when it starts a new word.
		if i > 0 && i+1 < len(rs) && !unicode.IsUpper(rs[i+1]) {
			if unicode.IsSpace(rs[i+1]) {
				rs[i] = unicode.ToLower(rs[i])
			}
			break
		}
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}

type pascalCase struct{}

func (pascalCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	return inflect.Camelize(s)
}

type snakeCase struct{}

func (snakeCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	return inflect.Underscore(s)
}

type kebabCase struct{}

func (kebabCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	return inflect.Dasherize(s)
}

type lowerCase struct{}

// Casers are stateful, so one is created per call.
func (lowerCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

type upperCase struct{}

func (upperCase) ConvertName(s string) string {
	if blank(s) {
		return s
	}
	return cases.Upper(language.Und).String(s)
}
