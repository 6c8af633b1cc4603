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

// Config carries read-only query knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// TagKey is the struct tag key scanned for annotation entries
	// (e.g. `mqx:"required,max=10"`). Empty means the package default.
	TagKey string

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when normalizing carrier types. Acts as a safety guard against
	// pathological nesting.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered primary
	// when searching for a nearest named inner type. If true, prefer V;
	// otherwise K.
	MapPreferElem bool

	// Binding is the member visibility filter applied when a query does not
	// supply one of its own. Zero means BindExported.
	Binding Binding

	// IncludeAbstract widens type-level queries to abstract (interface)
	// types even when the per-call flag is false. An explicit true on the
	// call always includes them.
	IncludeAbstract bool
}

// Binding selects which members a query considers, by accessibility.
// It is treated as an opaque pass-through: queries combine the flags with
// what the runtime's reflection facility can enumerate (unexported methods,
// for example, are never visible to reflect and thus never returned).
type Binding uint8

const (
	// BindExported selects exported members.
	BindExported Binding = 1 << iota
	// BindUnexported selects unexported members (struct fields only;
	// reflect does not surface unexported methods).
	BindUnexported
)

// Has reports whether all flags in f are set in b.
func (b Binding) Has(f Binding) bool { return b&f == f }
