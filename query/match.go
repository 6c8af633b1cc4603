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

package query

import (
	"fmt"
	"reflect"

	"dirpx.dev/mqx/apis"
	uref "dirpx.dev/mqx/utils/reflect"
)

// Implementation determines which closed instantiation of g's generic
// interface template t implements. g is any closed instantiation of the
// open interface (Comparable[string] stands for the open Comparable[T]);
// candidates are the registry's recorded instantiations of that template.
//
// Zero matches report absence without an error. Exactly one match returns
// that closed interface type. More than one structurally distinct match
// fails with apis.ErrAmbiguousMatch: silently picking one would hide a real
// modeling conflict in the queried type.
func (q querier) Implementation(t, g reflect.Type, cfg apis.Config) (reflect.Type, bool, error) {
	if t == nil {
		return nil, false, fmt.Errorf("query: %w: nil type", apis.ErrInvalidArgument)
	}
	tmpl, err := uref.TemplateOf(g)
	if err != nil {
		return nil, false, fmt.Errorf("query: %w", err)
	}

	if q.reg == nil {
		// No registry means an empty candidate set, not a failure.
		return nil, false, nil
	}

	var matches []reflect.Type
	for _, c := range q.reg.Instantiations(tmpl) {
		if implements(t, c) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return matches[0], true, nil
	}
	return nil, false, fmt.Errorf("query: %w: %s implements %d instantiations of %s",
		apis.ErrAmbiguousMatch, t, len(matches), tmpl)
}

// implements reports whether t satisfies the closed interface c, counting
// pointer receiver method sets for concrete non-pointer types.
func implements(t, c reflect.Type) bool {
	if t == c || t.Implements(c) {
		return true
	}
	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		return reflect.PointerTo(t).Implements(c)
	}
	return false
}
