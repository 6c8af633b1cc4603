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

package mqx

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/builder"
	"dirpx.dev/mqx/config"
	"dirpx.dev/mqx/member"
)

// init initializes the global mqx state.
func init() {
	// Initialize state with default cfg, reg, and qry.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.qry = b.BuildQuerier(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("mqx: builder returned nil registry")
	// ErrNilQuerier is returned when a builder returns a nil querier.
	ErrNilQuerier = errors.New("mqx: builder returned nil querier")
)

// Implementation determines which closed instantiation of g's generic
// interface template t implements, using the global mqx querier.
// Zero matches yield (nil, false, nil); exactly one yields it; several
// fail with apis.ErrAmbiguousMatch. A g that is not a closed generic
// interface fails with apis.ErrInvalidArgument.
// This is a convenience wrapper around the global qry.
func Implementation(t, g reflect.Type) (reflect.Type, bool, error) {
	s := st.Load()
	return s.qry.Implementation(t, g, s.cfg)
}

// ImplementationOf is Implementation with the template taken from the type
// parameter: any closed instantiation of the open interface stands for it.
func ImplementationOf[G any](t reflect.Type) (reflect.Type, bool, error) {
	return Implementation(t, reflect.TypeOf((*G)(nil)).Elem())
}

// InterfaceOf returns the reflect descriptor of the interface type I.
// Unlike reflect.TypeOf on a value, it preserves interface identity, which
// makes it the natural companion of RegisterInterface and Implementation.
func InterfaceOf[I any]() reflect.Type {
	return reflect.TypeOf((*I)(nil)).Elem()
}

// MustImplementation is Implementation for callers that require the
// interface to be present: an absent match fails with apis.ErrNotImplemented.
func MustImplementation(t, g reflect.Type) (reflect.Type, error) {
	closed, ok, err := Implementation(t, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("mqx: %w: %s implements no recorded instantiation of %s",
			apis.ErrNotImplemented, t, g)
	}
	return closed, nil
}

// MustImplementationOf is MustImplementation with the template taken from
// the type parameter.
func MustImplementationOf[G any](t reflect.Type) (reflect.Type, error) {
	return MustImplementation(t, reflect.TypeOf((*G)(nil)).Elem())
}

// Annotations returns the annotation instances of the marker kind found on
// member m of t (zero Member: the type itself), using the global querier.
func Annotations(t reflect.Type, m apis.Member, marker reflect.Type) []any {
	s := st.Load()
	return s.qry.Annotations(t, m, marker, s.cfg)
}

// Members returns the members of the requested kind on t carrying at least
// one annotation of the marker kind, in implementation-defined declaration
// order. A zero Binding means the configured default.
// This is a convenience wrapper around the global qry.
func Members(t, marker reflect.Type, kind apis.MemberKind, b apis.Binding) []apis.Member {
	s := st.Load()
	return s.qry.Members(t, marker, kind, b, s.cfg)
}

// MembersAnnotated is Members paired with the matched annotations; members
// with an empty annotation set are excluded entirely.
func MembersAnnotated(t, marker reflect.Type, kind apis.MemberKind, b apis.Binding) []apis.AnnotatedMember {
	s := st.Load()
	return s.qry.MembersAnnotated(t, marker, kind, b, s.cfg)
}

// Fields returns the declared fields of t carrying the marker annotation.
func Fields(t, marker reflect.Type) []apis.Member {
	return Members(t, marker, apis.KindField, 0)
}

// FieldsAnnotated is Fields paired with the matched annotations.
func FieldsAnnotated(t, marker reflect.Type) []apis.AnnotatedMember {
	return MembersAnnotated(t, marker, apis.KindField, 0)
}

// Properties returns the accessor-pair properties of t carrying the marker
// annotation.
func Properties(t, marker reflect.Type) []apis.Member {
	return Members(t, marker, apis.KindProperty, 0)
}

// PropertiesAnnotated is Properties paired with the matched annotations.
func PropertiesAnnotated(t, marker reflect.Type) []apis.AnnotatedMember {
	return MembersAnnotated(t, marker, apis.KindProperty, 0)
}

// Methods returns the declared methods of t carrying the marker annotation.
func Methods(t, marker reflect.Type) []apis.Member {
	return Members(t, marker, apis.KindMethod, 0)
}

// MethodsAnnotated is Methods paired with the matched annotations.
func MethodsAnnotated(t, marker reflect.Type) []apis.AnnotatedMember {
	return MembersAnnotated(t, marker, apis.KindMethod, 0)
}

// TypesWith returns the types declared by src carrying the marker
// annotation. Abstract (interface) types are excluded unless
// includeAbstract. A src enumeration failure is propagated verbatim.
func TypesWith(src apis.TypeSource, marker reflect.Type, includeAbstract bool) ([]reflect.Type, error) {
	s := st.Load()
	return s.qry.TypesWith(src, marker, includeAbstract, s.cfg)
}

// DerivedTypes returns the types declared by src assignable to base
// (subtype-or-equal), with the same abstract-inclusion flag.
func DerivedTypes(src apis.TypeSource, base reflect.Type, includeAbstract bool) ([]reflect.Type, error) {
	s := st.Load()
	return s.qry.DerivedTypes(src, base, includeAbstract, s.cfg)
}

// DerivedOf is DerivedTypes with the base taken from the type parameter.
func DerivedOf[B any](src apis.TypeSource, includeAbstract bool) ([]reflect.Type, error) {
	return DerivedTypes(src, reflect.TypeOf((*B)(nil)).Elem(), includeAbstract)
}

// MemberType returns the declared type of a member handle.
// It is a convenience re-export of member.Type.
func MemberType(m apis.Member) (reflect.Type, error) {
	return member.Type(m)
}

// MemberValue reads the member's value from target.
// It is a convenience re-export of member.Get.
func MemberValue(m apis.Member, target any) (any, error) {
	return member.Get(m, target)
}

// SetMemberValue writes the member's value on target.
// It is a convenience re-export of member.Set.
func SetMemberValue(m apis.Member, target, value any) error {
	return member.Set(m, target, value)
}

// RegisterInterface records a closed generic interface instantiation as a
// template-matching candidate in the global mqx reg.
// This is a convenience wrapper around the global reg.
func RegisterInterface(iface reflect.Type) error {
	return st.Load().reg.RegisterInterface(iface)
}

// RegisterInterfaceOf is RegisterInterface with the instantiation taken
// from the type parameter.
func RegisterInterfaceOf[I any]() error {
	return RegisterInterface(reflect.TypeOf((*I)(nil)).Elem())
}

// Annotate attaches an annotation instance to a member of the carrier type
// in the global mqx reg. An empty member name annotates the type itself.
// This is a convenience wrapper around the global reg.
func Annotate(carrier reflect.Type, member string, ann any) error {
	return st.Load().reg.Annotate(carrier, member, ann)
}

// AnnotateType attaches an annotation instance to the carrier type itself.
func AnnotateType(carrier reflect.Type, ann any) error {
	return Annotate(carrier, "", ann)
}

// SetAll explicitly sets all global mqx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, qry apis.Querier, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Querier
	nqry := qry
	npqry := false
	if nqry == nil {
		nqry = nbld.BuildQuerier(ncfg, nreg, old.qry, next)
	} else {
		npqry = true
	}

	// Ensure non-nil reg and qry.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nqry == nil {
		panic(ErrNilQuerier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			qry:  nqry,
			bld:  nbld,
			preg: npreg,
			pqry: npqry,
		},
	)
}

// Config returns the global mqx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global mqx configuration to cfg.
// It rebuilds the global reg and qry using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and qry based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nqry := old.qry
	if !old.pqry {
		nqry = b.BuildQuerier(cfg, nreg, old.qry, old.ext)
	}

	// Ensure non-nil reg and qry.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nqry == nil {
		panic(ErrNilQuerier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			qry:  nqry,
			bld:  b,
			preg: old.preg,
			pqry: old.pqry,
		},
	)
}

// Registry returns the global mqx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global mqx reg to reg.
// It uses the global mqx configuration to rebuild the global qry.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new qry based on the old cfg and new reg.
	nqry := old.qry
	if !old.pqry {
		nqry = b.BuildQuerier(old.cfg, reg, old.qry, old.ext)
	}

	// Ensure non-nil qry.
	if nqry == nil {
		panic(ErrNilQuerier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			qry:  nqry,
			bld:  b,
			preg: true,
			pqry: old.pqry,
		},
	)
}

// Querier returns the global mqx qry.
func Querier() apis.Querier {
	return st.Load().qry
}

// SetQuerier sets the global mqx qry to qry.
// It uses the global mqx configuration and reg.
// This is a convenience wrapper around the global state.
func SetQuerier(qry apis.Querier) {
	if qry == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			qry:  qry,
			bld:  old.bld,
			preg: old.preg,
			pqry: true,
		},
	)
}

// Builder returns the global mqx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global mqx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and qry based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nqry := old.qry
	if !old.pqry {
		nqry = b.BuildQuerier(old.cfg, nreg, old.qry, old.ext)
	}

	// Ensure non-nil reg and qry.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nqry == nil {
		panic(ErrNilQuerier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			qry:  nqry,
			bld:  b,
			preg: old.preg,
			pqry: old.pqry,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and qry based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nqry := old.qry
	if !old.pqry {
		nqry = b.BuildQuerier(old.cfg, nreg, old.qry, ext)
	}

	// Ensure non-nil reg and qry.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nqry == nil {
		panic(ErrNilQuerier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			qry:  nqry,
			bld:  b,
			preg: old.preg,
			pqry: old.pqry,
		},
	)
}

// ExtAs returns the global mqx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global mqx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global mqx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			qry:  old.qry,
			bld:  old.bld,
			preg: true,
			pqry: old.pqry,
		},
	)
}

// UnpinRegistry makes the global mqx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			qry:  old.qry,
			bld:  old.bld,
			preg: false,
			pqry: old.pqry,
		},
	)
}

// IsQuerierPinned returns whether the global mqx qry is pinned (immutable).
func IsQuerierPinned() bool {
	return st.Load().pqry
}

// PinQuerier makes the global mqx qry immutable.
func PinQuerier() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			qry:  old.qry,
			bld:  old.bld,
			preg: old.preg,
			pqry: true,
		},
	)
}

// UnpinQuerier makes the global mqx qry mutable again.
func UnpinQuerier() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			qry:  old.qry,
			bld:  old.bld,
			preg: old.preg,
			pqry: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global mqx state.
var st atomic.Pointer[state]

// state is the global mqx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global mqx configuration.
	cfg apis.Config
	// ext is the global mqx extension configuration.
	ext any
	// reg is the global mqx reg.
	reg apis.Registry
	// qry is the global mqx qry.
	qry apis.Querier
	// bld is the global mqx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pqry indicates whether the qry is pinned (immutable).
	pqry bool
}
