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

package strategy

import (
	"reflect"

	"dirpx.dev/mqx/apis"
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults explicit (carrier, member) annotation bindings.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryAnnotations looks the member up in the registry. The registry reports
// knowledge only when at least one binding of the marker kind exists, so a
// member bound with other annotation kinds still falls through to tags.
func (s *registryStrategy) TryAnnotations(t reflect.Type, m apis.Member, marker reflect.Type, _ apis.Config) ([]any, bool) {
	if t == nil || s.reg == nil {
		return nil, false
	}
	anns := s.reg.Bindings(t, m.Name, marker)
	if len(anns) == 0 {
		return nil, false
	}
	return anns, true
}
