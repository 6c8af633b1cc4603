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
	"reflect"
	"strings"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
	uref "dirpx.dev/mqx/utils/reflect"
)

// Members returns the members of the requested kind on t carrying at least
// one annotation of the marker kind. Order is the order the reflection
// facility enumerates members in: implementation-defined declaration order,
// fields before properties before methods for KindAny. Not guaranteed
// stable across runtime versions.
func (q querier) Members(t, marker reflect.Type, kind apis.MemberKind, b apis.Binding, cfg apis.Config) []apis.Member {
	base, members := declared(t, kind, binding(b, cfg), cfg)
	var out []apis.Member
	for _, m := range members {
		if len(q.Annotations(base, m, marker, cfg)) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// MembersAnnotated is Members paired with the matched annotation instances.
// A member with zero matching annotations never appears, so Annotations is
// never empty in the result.
func (q querier) MembersAnnotated(t, marker reflect.Type, kind apis.MemberKind, b apis.Binding, cfg apis.Config) []apis.AnnotatedMember {
	base, members := declared(t, kind, binding(b, cfg), cfg)
	var out []apis.AnnotatedMember
	for _, m := range members {
		anns := q.Annotations(base, m, marker, cfg)
		if len(anns) == 0 {
			continue
		}
		out = append(out, apis.AnnotatedMember{Member: m, Annotations: anns})
	}
	return out
}

// binding resolves the effective visibility filter: an explicit one wins,
// then cfg's, then the package default.
func binding(b apis.Binding, cfg apis.Config) apis.Binding {
	if b != 0 {
		return b
	}
	if cfg.Binding != 0 {
		return cfg.Binding
	}
	return config.DefaultBinding
}

// declared enumerates the members of the requested kind on t's nearest
// named type, which is returned alongside for annotation lookups.
func declared(t reflect.Type, kind apis.MemberKind, b apis.Binding, cfg apis.Config) (reflect.Type, []apis.Member) {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return nil, nil
	}

	var out []apis.Member
	if kind == apis.KindAny || kind == apis.KindField {
		out = append(out, fieldsOf(base, b)...)
	}
	if kind == apis.KindAny || kind == apis.KindProperty {
		out = append(out, propertiesOf(base, b)...)
	}
	if kind == apis.KindAny || kind == apis.KindMethod {
		out = append(out, methodsOf(base, b)...)
	}
	return base, out
}

// fieldsOf lists the declared struct fields admitted by the binding filter.
// Promoted fields of embedded structs are not declared members and are not
// descended into; the embedded field itself is listed.
func fieldsOf(base reflect.Type, b apis.Binding) []apis.Member {
	if base.Kind() != reflect.Struct {
		return nil
	}
	var out []apis.Member
	for i := 0; i < base.NumField(); i++ {
		f := base.Field(i)
		if f.IsExported() && !b.Has(apis.BindExported) {
			continue
		}
		if !f.IsExported() && !b.Has(apis.BindUnexported) {
			continue
		}
		out = append(out, apis.Member{Kind: apis.KindField, Name: f.Name, Field: f})
	}
	return out
}

// methodsOf lists declared methods. Reflect only surfaces exported methods,
// so BindUnexported alone yields nothing; pointer receiver methods are
// included via *T's method set.
func methodsOf(base reflect.Type, b apis.Binding) []apis.Member {
	if !b.Has(apis.BindExported) {
		return nil
	}
	mt := methodCarrier(base)
	var out []apis.Member
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		out = append(out, apis.Member{Kind: apis.KindMethod, Name: m.Name, Method: m})
	}
	return out
}

// propertiesOf derives accessor-pair properties from the method set:
// a getter is "X" or "GetX" with no arguments and one result, a setter is
// "SetX" with one argument and no results. Either half may be absent.
// Order follows the first method contributing to each property.
func propertiesOf(base reflect.Type, b apis.Binding) []apis.Member {
	if !b.Has(apis.BindExported) {
		return nil
	}
	mt := methodCarrier(base)
	// Interface method signatures carry no receiver argument.
	recv := 1
	if mt.Kind() == reflect.Interface {
		recv = 0
	}

	byName := map[string]int{}
	var props []apis.Member
	at := func(name string) *apis.Member {
		if i, ok := byName[name]; ok {
			return &props[i]
		}
		byName[name] = len(props)
		props = append(props, apis.Member{Kind: apis.KindProperty, Name: name})
		return &props[len(props)-1]
	}

	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		sig := m.Type
		switch {
		case strings.HasPrefix(m.Name, "Set") && len(m.Name) > 3 &&
			sig.NumIn() == recv+1 && sig.NumOut() == 0:
			p := at(m.Name[3:])
			if !p.HasSetter {
				p.Setter, p.HasSetter = m, true
			}
		case !strings.HasPrefix(m.Name, "Set") &&
			sig.NumIn() == recv && sig.NumOut() == 1:
			name := m.Name
			if strings.HasPrefix(name, "Get") && len(name) > 3 {
				name = name[3:]
			}
			p := at(name)
			if !p.HasGetter {
				p.Getter, p.HasGetter = m, true
			}
		}
	}
	return props
}

// methodCarrier picks the type whose method set is enumerated: *T for
// concrete types (it includes both receiver forms), the type itself for
// interfaces.
func methodCarrier(base reflect.Type) reflect.Type {
	if base.Kind() == reflect.Interface {
		return base
	}
	return reflect.PointerTo(base)
}
