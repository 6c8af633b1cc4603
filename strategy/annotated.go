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
	uref "dirpx.dev/mqx/utils/reflect"
)

// NewAnnotatedStrategy creates an apis.Strategy that uses apis.Annotated.
func NewAnnotatedStrategy() apis.Strategy {
	return &annotatedStrategy{}
}

// annotatedStrategy is a zero-cost fast path: if the queried type implements
// apis.Annotated, ask it directly and stop the chain.
type annotatedStrategy struct{}

// Ensure annotatedStrategy implements apis.Strategy.
var _ apis.Strategy = (*annotatedStrategy)(nil)

// TryAnnotations asks a zero value of t for its member annotations.
// Interface types have no zero value to ask and always fall through.
func (*annotatedStrategy) TryAnnotations(t reflect.Type, m apis.Member, marker reflect.Type, _ apis.Config) ([]any, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return nil, false
	}
	// *T carries T's method set too, so one probe covers both receivers.
	a, ok := reflect.New(t).Interface().(apis.Annotated)
	if !ok {
		return nil, false
	}
	anns, ok := a.MemberAnnotations(m.Name, marker)
	if !ok {
		return nil, false
	}
	// Enforce the contract: only instances of the marker kind pass through.
	out := anns[:0:0]
	for _, ann := range anns {
		if uref.Matches(ann, marker) {
			out = append(out, ann)
		}
	}
	return out, true
}
