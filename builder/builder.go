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

package builder

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/resolver"
	"dirpx.dev/enumx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildResolver validates cfg and returns the naming chain
// Override(cfg.Source) -> Policy(cfg.Policy) -> Declared.
// The policy step is omitted when cfg.Policy is nil.
func (b *builder) BuildResolver(cfg apis.Config) (apis.Resolver, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	strats := []apis.Strategy{strategy.NewOverrideStrategy(cfg.Source)}
	if cfg.Policy != nil {
		strats = append(strats, strategy.NewPolicyStrategy(cfg.Policy))
	}
	strats = append(strats, strategy.NewDeclaredStrategy())
	return resolver.New(strats...), nil
}
