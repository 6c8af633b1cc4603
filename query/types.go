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

// TypesWith returns the types declared by src carrying at least one
// annotation of the marker kind. Abstract (interface) types are excluded
// unless includeAbstract or cfg.IncludeAbstract widens the selection.
// A src enumeration failure is returned verbatim, never wrapped or
// swallowed.
func (q querier) TypesWith(src apis.TypeSource, marker reflect.Type, includeAbstract bool, cfg apis.Config) ([]reflect.Type, error) {
	if src == nil {
		return nil, fmt.Errorf("query: %w: nil type source", apis.ErrInvalidArgument)
	}
	types, err := src.Types()
	if err != nil {
		return nil, err
	}
	includeAbstract = includeAbstract || cfg.IncludeAbstract

	var out []reflect.Type
	for _, t := range types {
		if t == nil {
			continue
		}
		if !includeAbstract && uref.IsAbstract(t) {
			continue
		}
		// Zero Member addresses type-level annotations.
		if len(q.Annotations(t, apis.Member{}, marker, cfg)) > 0 {
			out = append(out, t)
		}
	}
	return out, nil
}

// DerivedTypes returns the types declared by src assignable to base
// (subtype-or-equal), with the same abstract-inclusion flag and failure
// propagation as TypesWith.
func (q querier) DerivedTypes(src apis.TypeSource, base reflect.Type, includeAbstract bool, cfg apis.Config) ([]reflect.Type, error) {
	if src == nil {
		return nil, fmt.Errorf("query: %w: nil type source", apis.ErrInvalidArgument)
	}
	if base == nil {
		return nil, fmt.Errorf("query: %w: nil base type", apis.ErrInvalidArgument)
	}
	types, err := src.Types()
	if err != nil {
		return nil, err
	}
	includeAbstract = includeAbstract || cfg.IncludeAbstract

	var out []reflect.Type
	for _, t := range types {
		if t == nil {
			continue
		}
		if !includeAbstract && uref.IsAbstract(t) {
			continue
		}
		if derives(t, base) {
			out = append(out, t)
		}
	}
	return out, nil
}

// derives reports subtype-or-equal: identity, plain assignability, or
// interface satisfaction through the pointer method set.
func derives(t, base reflect.Type) bool {
	if t == base || t.AssignableTo(base) {
		return true
	}
	if base.Kind() == reflect.Interface && t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		return reflect.PointerTo(t).Implements(base)
	}
	return false
}
