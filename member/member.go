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

// Package member reads and writes member values reflectively: thin,
// synchronous, single-call operations whose only side effect is the target
// object's mutated field or property.
package member

import (
	"fmt"
	"reflect"

	"dirpx.dev/mqx/apis"
)

// Type returns the declared type of the member: a field's type, a readable
// property's getter result, or a method's first result. A write-only
// property fails with apis.ErrInvalidOperation; a method without results or
// any other member kind fails with apis.ErrInvalidArgument.
func Type(m apis.Member) (reflect.Type, error) {
	switch m.Kind {
	case apis.KindField:
		return m.Field.Type, nil
	case apis.KindProperty:
		if !m.HasGetter {
			return nil, fmt.Errorf("member: %w: property %s is write-only", apis.ErrInvalidOperation, m.Name)
		}
		return m.Getter.Type.Out(0), nil
	case apis.KindMethod:
		if m.Method.Type.NumOut() == 0 {
			return nil, fmt.Errorf("member: %w: method %s has no result", apis.ErrInvalidArgument, m.Name)
		}
		return m.Method.Type.Out(0), nil
	}
	return nil, fmt.Errorf("member: %w: %s member has no declared value type", apis.ErrInvalidArgument, m.Kind)
}

// Get reads the member's value from target: a field read or a property
// getter call. A write-only property fails with apis.ErrInvalidOperation;
// a method or any other member kind fails with apis.ErrInvalidArgument.
func Get(m apis.Member, target any) (any, error) {
	switch m.Kind {
	case apis.KindField:
		sv, err := structOf(m, target)
		if err != nil {
			return nil, err
		}
		fv := sv.FieldByIndex(m.Field.Index)
		if !fv.CanInterface() {
			return nil, fmt.Errorf("member: %w: field %s is unexported", apis.ErrInvalidOperation, m.Field.Name)
		}
		return fv.Interface(), nil

	case apis.KindProperty:
		if !m.HasGetter {
			return nil, fmt.Errorf("member: %w: property %s is write-only", apis.ErrInvalidOperation, m.Name)
		}
		fn, err := accessor(target, m.Getter.Name)
		if err != nil {
			return nil, err
		}
		return fn.Call(nil)[0].Interface(), nil
	}
	return nil, fmt.Errorf("member: %w: cannot read a %s member", apis.ErrInvalidArgument, m.Kind)
}

// Set writes the member's value on target: a field write or a property
// setter call. target must be a pointer for field writes. A read-only
// property or an immutable (unexported or unaddressable) field fails with
// apis.ErrInvalidOperation; a method kind or a value of the wrong type
// fails with apis.ErrInvalidArgument.
func Set(m apis.Member, target, value any) error {
	switch m.Kind {
	case apis.KindField:
		sv, err := structOf(m, target)
		if err != nil {
			return err
		}
		fv := sv.FieldByIndex(m.Field.Index)
		if !fv.CanSet() {
			return fmt.Errorf("member: %w: field %s is not settable", apis.ErrInvalidOperation, m.Field.Name)
		}
		vv, err := conform(value, fv.Type())
		if err != nil {
			return err
		}
		fv.Set(vv)
		return nil

	case apis.KindProperty:
		if !m.HasSetter {
			return fmt.Errorf("member: %w: property %s is read-only", apis.ErrInvalidOperation, m.Name)
		}
		fn, err := accessor(target, m.Setter.Name)
		if err != nil {
			return err
		}
		vv, err := conform(value, fn.Type().In(0))
		if err != nil {
			return err
		}
		fn.Call([]reflect.Value{vv})
		return nil
	}
	return fmt.Errorf("member: %w: cannot write a %s member", apis.ErrInvalidArgument, m.Kind)
}

// structOf unwraps target down to the struct value declaring m's field.
// Writes stay possible only when the caller passed a pointer. A handle from
// one type applied to an unrelated struct must not read whatever sits at
// that index, so the field's presence is verified before any access.
func structOf(m apis.Member, target any) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("member: %w: nil target", apis.ErrInvalidArgument)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || !declares(rv.Type(), m.Field) {
		return reflect.Value{}, fmt.Errorf("member: %w: target %T does not declare field %s",
			apis.ErrInvalidArgument, target, m.Field.Name)
	}
	return rv, nil
}

// declares reports whether st declares the field handle f: every index step
// stays in range and the field found there carries f's name and type.
func declares(st reflect.Type, f reflect.StructField) bool {
	if len(f.Index) == 0 {
		return false
	}
	cur := st
	var sf reflect.StructField
	for _, i := range f.Index {
		if cur.Kind() == reflect.Ptr {
			cur = cur.Elem()
		}
		if cur.Kind() != reflect.Struct || i < 0 || i >= cur.NumField() {
			return false
		}
		sf = cur.Field(i)
		cur = sf.Type
	}
	return sf.Name == f.Name && sf.Type == f.Type
}

// accessor resolves a bound accessor method on the target instance.
// Pointer receiver accessors require an addressable target, which only a
// pointer provides; that absence reads as the accessor missing from the
// method set.
func accessor(target any, name string) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("member: %w: nil target", apis.ErrInvalidArgument)
	}
	fn := rv.MethodByName(name)
	if !fn.IsValid() {
		return reflect.Value{}, fmt.Errorf("member: %w: %s is not in the method set of %T",
			apis.ErrInvalidOperation, name, target)
	}
	return fn, nil
}

// conform checks value's assignability to the declared type, allowing
// untyped nil for nillable kinds.
func conform(value any, want reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("member: %w: nil value for %s", apis.ErrInvalidArgument, want)
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("member: %w: %s is not assignable to %s",
			apis.ErrInvalidArgument, vv.Type(), want)
	}
	return vv, nil
}
