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
	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/query"
	"dirpx.dev/mqx/registry"
	"dirpx.dev/mqx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			if e.Iface != nil {
				_ = nreg.RegisterInterface(e.Iface)
				continue
			}
			if e.Carrier != nil {
				_ = nreg.Annotate(e.Carrier, e.Member, e.Annotation)
			}
		}
	}
	return nreg
}

// BuildQuerier builds and returns a new apis.Querier based on the provided configuration,
// registry, and pre-existing querier. If a pre-existing querier is provided, its state
// may be reused in the new querier.
func (b *builder) BuildQuerier(cfg apis.Config, reg apis.Registry, _ apis.Querier, _ any) apis.Querier {
	return query.New(
		reg,
		strategy.NewAnnotatedStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewTagStrategy(),
	)
}
