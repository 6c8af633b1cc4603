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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
	uref "dirpx.dev/mqx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("mqx(registry): nil reflect.Type provided")
	// ErrNilAnnotation is returned when a nil annotation instance is provided.
	ErrNilAnnotation = errors.New("mqx(registry): nil annotation provided")
)

// New constructs a Registry that normalizes carrier types according to cfg.
// Only MaxUnwrap and MapPreferElem are used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
// Stored slices are copy-on-write: readers load and range without locking,
// writers replace the whole slice under mu.
type registry struct {
	// cfg is the configuration used for carrier type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// ifaces maps apis.Template to []reflect.Type (closed instantiations).
	ifaces sync.Map
	// binds maps bindKey to []any (annotation instances, in binding order).
	binds sync.Map
	// count tracks the number of recorded entries of both kinds.
	count int
}

// bindKey addresses the annotations of one member of one carrier type.
// An empty member names the type itself.
type bindKey struct {
	carrier reflect.Type
	member  string
}

// RegisterInterface records a closed generic interface instantiation as a
// matching candidate. It is idempotent for the same type.
func (r *registry) RegisterInterface(iface reflect.Type) error {
	if iface == nil {
		return ErrNilType
	}
	tmpl, err := uref.TemplateOf(iface)
	if err != nil {
		return fmt.Errorf("mqx(registry): %w", err)
	}

	// Fast read path: idempotency check without locking.
	if cur, ok := r.ifaces.Load(tmpl); ok {
		for _, c := range cur.([]reflect.Type) {
			if c == iface {
				return nil
			}
		}
	}

	// Write path: guard with a mutex to keep counter and slices consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	var cur []reflect.Type
	if v, ok := r.ifaces.Load(tmpl); ok {
		cur = v.([]reflect.Type)
		// Re-check under lock in case another goroutine stored meanwhile.
		for _, c := range cur {
			if c == iface {
				return nil
			}
		}
	}

	next := make([]reflect.Type, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = iface
	r.ifaces.Store(tmpl, next)
	r.count++
	return nil
}

// Instantiations returns the recorded closed instantiations of tmpl.
func (r *registry) Instantiations(tmpl apis.Template) []reflect.Type {
	v, ok := r.ifaces.Load(tmpl)
	if !ok {
		return nil
	}
	// Stored slices are never mutated in place, so handing out a copy keeps
	// callers from aliasing future writes.
	cur := v.([]reflect.Type)
	out := make([]reflect.Type, len(cur))
	copy(out, cur)
	return out
}

// Annotate attaches an annotation instance to a member of the carrier type.
// The carrier is normalized to its nearest named type first, so *T, []T and
// T address the same bindings. Repeat calls append: an annotation kind may
// be attached more than once.
func (r *registry) Annotate(carrier reflect.Type, member string, ann any) error {
	if carrier == nil {
		return ErrNilType
	}
	if ann == nil {
		return ErrNilAnnotation
	}

	base, err := uref.Normalize(carrier, r.cfg)
	if err != nil {
		return err
	}
	key := bindKey{carrier: base, member: member}

	r.mu.Lock()
	defer r.mu.Unlock()

	var cur []any
	if v, ok := r.binds.Load(key); ok {
		cur = v.([]any)
	}
	next := make([]any, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = ann
	r.binds.Store(key, next)
	r.count++
	return nil
}

// Bindings returns the annotation instances of the marker kind attached to
// the member, in binding order. A nil marker returns all of them.
func (r *registry) Bindings(carrier reflect.Type, member string, marker reflect.Type) []any {
	if carrier == nil {
		return nil
	}
	base, err := uref.Normalize(carrier, r.cfg)
	if err != nil {
		return nil
	}
	v, ok := r.binds.Load(bindKey{carrier: base, member: member})
	if !ok {
		return nil
	}
	var out []any
	for _, ann := range v.([]any) {
		if uref.Matches(ann, marker) {
			out = append(out, ann)
		}
	}
	return out
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.ifaces.Range(func(_, value any) bool {
		for _, iface := range value.([]reflect.Type) {
			entries = append(entries, apis.Entry{Iface: iface})
		}
		return true
	})
	r.binds.Range(func(key, value any) bool {
		k := key.(bindKey)
		for _, ann := range value.([]any) {
			entries = append(entries, apis.Entry{
				Carrier:    k.carrier,
				Member:     k.member,
				Annotation: ann,
			})
		}
		return true
	})
	return entries
}

// Count returns the number of recorded entries of both kinds.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all recorded entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ifaces = sync.Map{}
	r.binds = sync.Map{}
	r.count = 0
}
