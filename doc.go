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

// Package mqx provides a global, process-wide reflective metadata query
// service.
//
// mqx answers structural questions about Go types at runtime: which
// members of a type carry a given annotation, which closed instantiation
// of a generic interface template a type implements, which types of a
// caller-supplied bundle carry an annotation or derive from a base type,
// and how to read or write one member's value reflectively.
//
// # Design
//
// The core of mqx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control how queries behave (struct tag key,
//     container unwrapping depth, default member visibility, whether
//     abstract types are included in type-level queries).
//
//   - Registry: a process-wide store of the metadata Go reflection cannot
//     discover on its own: the closed generic interface instantiations
//     used as template-matching candidates, and explicit
//     (type, member) -> annotation bindings for members that cannot carry
//     struct tags. The registry can be written to at runtime
//     (RegisterInterface, Annotate).
//
//   - Querier: a read-only object that answers every query. Annotation
//     lookups try multiple strategies, in priority order:
//     1. If the queried type implements apis.Annotated, ask it directly.
//     2. Explicit registry bindings.
//     3. Struct tags (fields only), keyed per Config.TagKey.
//     Querier is expected to be concurrency-safe for reads and caches
//     nothing: results are consistent only within a single call.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Querier instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Querier instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means mqx lookups are lock-free on the hot path:
//
//	closed, ok, err := mqx.ImplementationOf[Comparable[string]](reflect.TypeOf(v))
//	required := mqx.Fields(reflect.TypeOf(v), mqx.MarkerOf[Required]())
//
// and concurrent callers always see a consistent snapshot.
//
// # Generic interface matching
//
// Go reflection cannot enumerate the interfaces a type implements, and an
// open generic interface has no runtime representation of its own. mqx
// therefore matches by template identity against an explicit candidate
// set: callers register the closed instantiations they care about
//
//	mqx.RegisterInterfaceOf[Comparable[string]]()
//	mqx.RegisterInterfaceOf[Comparable[int]]()
//
// and a query against any instantiation of Comparable[T] considers every
// recorded instantiation of that template. Exactly one match returns the
// closed interface; none reports absence; several fail with
// apis.ErrAmbiguousMatch rather than silently picking one.
//
// # Concurrency model
//
// Reads are wait-free: they load the current *state atomically and never
// take locks. Writes (SetConfig, SetBuilder, SetExt, SetRegistry,
// SetQuerier, Pin*/Unpin*, SetAll) take a short build mutex, assemble a
// brand-new state struct, and publish it via an atomic pointer swap.
// Mutating one target object concurrently through member value access is
// the caller's to serialize; mqx adds no synchronization of its own there.
//
// # Pinning
//
// SetRegistry(reg) / SetQuerier(qry) make that exact instance the
// process-wide one and pin it: later SetConfig calls will not rebuild the
// pinned layer until UnpinRegistry()/UnpinQuerier(). SetAll(...) is the
// hard-reset API, mainly used by tests to get deterministic snapshots.
//
// # Scope
//
// mqx is intentionally small. It does not load or scan assemblies of
// code, cache reflection results, inject dependencies, or generate
// anything. It only answers metadata queries about handles the caller
// already holds.
package mqx
