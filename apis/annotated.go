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

// Annotated is the duck-typed fast path for annotation lookups: a type that
// implements it answers annotation queries about its own members directly,
// short-circuiting the registry and tag strategies.
//
// Implementations must be safe for concurrent calls, must not block, and
// should treat an empty member name as the type itself. The returned
// instances must already be filtered to the marker kind; ok=false defers to
// the remaining strategies.
type Annotated interface {
	MemberAnnotations(member string, marker reflect.Type) (anns []any, ok bool)
}

// Namer lets an annotation marker type choose its struct tag key.
// Without it, the lowercased type name is used ("Required" -> "required").
type Namer interface {
	// AnnotationName returns the tag key for this annotation kind.
	AnnotationName() string
}

// TagParser lets an annotation marker type construct instances from a tag
// argument: `mqx:"max=10"` calls ParseTag("10") on the zero marker value.
// Markers without it are instantiated as zero values and may only appear in
// tags as bare keys.
type TagParser interface {
	ParseTag(arg string) (any, error)
}
