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

// Registry is the process-wide metadata store the query layer reads from.
// It records two things:
//
//   - Closed instantiations of generic interfaces, grouped by Template.
//     Go reflection cannot enumerate the interfaces a type implements, so
//     template matching works against this explicit candidate set.
//
//   - Explicit (carrier type, member name) -> annotation bindings, for
//     annotations that cannot be expressed as struct tags (methods,
//     properties, whole types).
//
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// RegisterInterface records a closed instantiation of a generic
	// interface (e.g. Comparable[string]) as a matching candidate.
	// Re-registering the same type is idempotent. A descriptor that is not
	// a generic interface fails with ErrInvalidArgument.
	RegisterInterface(iface reflect.Type) error

	// Instantiations returns the recorded closed instantiations of the
	// given template (order is unspecified).
	Instantiations(tmpl Template) []reflect.Type

	// Annotate attaches an annotation instance to a member of the carrier
	// type. An empty member name attaches it to the type itself. The
	// carrier is normalized to its nearest named type, so *T, []T and T
	// address the same bindings. The same annotation kind may be attached
	// more than once.
	Annotate(carrier reflect.Type, member string, ann any) error

	// Bindings returns the annotation instances of the marker kind attached
	// to the member (empty name: the type itself). A nil marker returns all
	// bindings for the member.
	Bindings(carrier reflect.Type, member string, marker reflect.Type) []any

	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of recorded entries of both kinds.
	Count() int
	// Reset clears all recorded entries.
	Reset()
}

// Entry is a single record in a Registry snapshot. Exactly one of the two
// shapes is populated: an interface instantiation (Iface non-nil) or an
// annotation binding (Carrier non-nil).
type Entry struct {
	// Iface is a recorded closed interface instantiation.
	Iface reflect.Type

	// Carrier, Member and Annotation describe one annotation binding.
	Carrier    reflect.Type
	Member     string
	Annotation any
}
