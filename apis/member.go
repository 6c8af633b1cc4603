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

package apis

import "reflect"

// MemberKind identifies the category of a Member.
type MemberKind uint8

const (
	// KindAny matches every member category in queries.
	KindAny MemberKind = iota
	// KindField is a declared struct field.
	KindField
	// KindProperty is an accessor pair: a getter ("X" or "GetX", no
	// arguments, one result) and/or a setter ("SetX", one argument, no
	// results). Either half may be absent.
	KindProperty
	// KindMethod is a declared method.
	KindMethod
)

// String returns the lowercase category name.
func (k MemberKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	default:
		return "any"
	}
}

// Member is a borrowed handle for one declared member of a type.
// The zero Member (Kind KindAny, empty Name) denotes the type itself and is
// used for type-level annotation lookups.
type Member struct {
	// Kind is the member category.
	Kind MemberKind
	// Name is the member name; for properties it is the accessor stem
	// ("User" for GetUser/SetUser).
	Name string

	// Field is set when Kind is KindField.
	Field reflect.StructField

	// Method is set when Kind is KindMethod.
	Method reflect.Method

	// Getter/Setter are set for KindProperty when the respective accessor
	// exists; HasGetter/HasSetter report presence.
	Getter    reflect.Method
	HasGetter bool
	Setter    reflect.Method
	HasSetter bool
}

// AnnotatedMember pairs a matched member with the annotation instances of
// the requested kind found on it. Annotations is never empty in query
// results: members without a match are excluded entirely.
type AnnotatedMember struct {
	Member      Member
	Annotations []any
}
