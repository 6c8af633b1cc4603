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

package reflect

import (
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/mqx/apis"
)

// TemplateOf extracts the generic template identity of a closed generic
// interface instantiation: Comparable[string] -> {pkg, "Comparable"}.
//
// g must be an interface kind AND a generic instantiation (its type name
// carries a "[...]" parameter list). Anything else is a caller error and
// fails with apis.ErrInvalidArgument; this is a precondition check, not a
// lookup failure.
func TemplateOf(g reflect.Type) (apis.Template, error) {
	if g == nil {
		return apis.Template{}, fmt.Errorf("reflect: %w: nil descriptor", apis.ErrInvalidArgument)
	}
	if g.Kind() != reflect.Interface {
		return apis.Template{}, fmt.Errorf("reflect: %w: %s is not an interface", apis.ErrInvalidArgument, g)
	}
	name := g.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return apis.Template{}, fmt.Errorf("reflect: %w: %s is not a generic instantiation", apis.ErrInvalidArgument, g)
	}
	return apis.Template{PkgPath: g.PkgPath(), Name: name[:i]}, nil
}

// StripTypeParams removes a generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// IsAbstract reports whether t is an abstract type, i.e. one that cannot be
// instantiated directly. In Go that is exactly the interface kind.
func IsAbstract(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface
}

// MarkerOf returns the annotation kind of an instance: its dynamic type
// with one level of pointer indirection removed. Nil instances have no kind.
func MarkerOf(ann any) reflect.Type {
	if ann == nil {
		return nil
	}
	t := reflect.TypeOf(ann)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Matches reports whether annotation instance ann is of the marker kind.
// A nil marker matches every instance.
func Matches(ann any, marker reflect.Type) bool {
	if marker == nil {
		return ann != nil
	}
	if marker.Kind() == reflect.Ptr {
		marker = marker.Elem()
	}
	return MarkerOf(ann) == marker
}
