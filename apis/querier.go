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

// Querier answers reflective metadata queries. Implementations hold no
// mutable state and never cache results: every call re-derives its answer
// from the supplied handles, so results are consistent only within one
// call. Typical annotation chain: Annotated -> Registry -> Tag.
type Querier interface {
	// Implementation determines which closed instantiation of g's generic
	// interface template t implements. Zero matches yield (nil, false, nil);
	// exactly one yields it; more than one structurally distinct match
	// fails with ErrAmbiguousMatch. A g that is not a closed generic
	// interface fails with ErrInvalidArgument.
	Implementation(t, g reflect.Type, cfg Config) (reflect.Type, bool, error)

	// Annotations returns the annotation instances of the marker kind found
	// on member m of t (zero Member: the type itself), or nil when none.
	Annotations(t reflect.Type, m Member, marker reflect.Type, cfg Config) []any

	// Members returns, in implementation-defined declaration order, the
	// members of the requested kind on t that carry at least one annotation
	// of the marker kind. A zero Binding means cfg's default.
	Members(t, marker reflect.Type, kind MemberKind, b Binding, cfg Config) []Member

	// MembersAnnotated is Members paired with the matched annotations.
	// Members with an empty annotation set are excluded entirely.
	MembersAnnotated(t, marker reflect.Type, kind MemberKind, b Binding, cfg Config) []AnnotatedMember

	// TypesWith returns the types declared by src that carry at least one
	// annotation of the marker kind. Abstract (interface) types are
	// excluded unless includeAbstract. A src enumeration failure is
	// propagated verbatim.
	TypesWith(src TypeSource, marker reflect.Type, includeAbstract bool, cfg Config) ([]reflect.Type, error)

	// DerivedTypes returns the types declared by src that are assignable to
	// base (subtype-or-equal), with the same abstract-inclusion flag and
	// failure propagation as TypesWith.
	DerivedTypes(src TypeSource, base reflect.Type, includeAbstract bool, cfg Config) ([]reflect.Type, error)
}

// TypeSource is an opaque bundle of declared types supplied by the caller,
// the unit of type-level queries. This layer never loads or resolves
// anything itself; how the types were gathered is an external concern.
type TypeSource interface {
	// Types enumerates the declared types. An enumeration failure must be
	// returned as-is; the query layer will not catch or mask it.
	Types() ([]reflect.Type, error)
}
