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
	"errors"
	"reflect"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the carrier (after unwrapping
	// containers) holds no named type that could carry annotations
	// (e.g., anonymous struct, func, bare interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: carrier has no named type")
)

// Normalize resolves an annotation carrier to its nearest named type, so
// *T, []T, [2]T, chan T and map values of T all address the same bindings
// as T itself.
//
// Containers unwrap per cfg (MaxUnwrap bounds the depth, MapPreferElem
// picks the map side):
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: the preferred side wins if named (V when MapPreferElem,
//     K otherwise); then the other side; if neither is named, unwrapping
//     continues through Elem().
//   - anything else: the type itself if named, else ErrReflectTypeNotNamed.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			first, second := t.Elem(), t.Key()
			if !cfg.MapPreferElem {
				first, second = second, first
			}
			if named(first) {
				return first, nil
			}
			if named(second) {
				return second, nil
			}
			// Neither side is named: keep unwrapping the value side.
			t = t.Elem()

		default:
			if named(t) {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// Depth exhausted; only a named type is an acceptable resting point.
	if named(t) {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// named reports whether t is a named (defined) type, builtins included.
func named(t reflect.Type) bool {
	return t != nil && t.Name() != ""
}
