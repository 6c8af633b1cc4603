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

package query_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
	"dirpx.dev/mqx/query"
	"dirpx.dev/mqx/registry"
	"dirpx.dev/mqx/strategy"
)

// Domain fixtures for template matching.

type User struct{ ID string }
type Order struct{ ID string }

// IRepository is an open generic interface; its instantiations pin T in the
// method signature, so a type can implement at most one of them.
type IRepository[T any] interface {
	Find(id string) (T, error)
}

// Keyed is a marker-style template: T does not appear in the method set, so
// one type can satisfy several instantiations at once.
type Keyed[T any] interface {
	Key() string
}

type Plain interface{ Ping() }

// Repo implements exactly IRepository[User].
type Repo struct{}

func (Repo) Find(id string) (User, error) { return User{ID: id}, nil }

// Repo2 satisfies every instantiation of Keyed.
type Repo2 struct{}

func (Repo2) Key() string { return "repo2" }

// Loner implements nothing that is registered.
type Loner struct{}

func newQuerier(t *testing.T) (apis.Registry, apis.Querier, apis.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	qry := query.New(
		reg,
		strategy.NewAnnotatedStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewTagStrategy(),
	)
	return reg, qry, cfg
}

func TestImplementation_SingleMatch(t *testing.T) {
	t.Parallel()
	reg, qry, cfg := newQuerier(t)
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*IRepository[User])(nil)).Elem()))
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*IRepository[Order])(nil)).Elem()))

	closed, ok, err := qry.Implementation(reflect.TypeOf(Repo{}), reflect.TypeOf((*IRepository[User])(nil)).Elem(), cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*IRepository[User])(nil)).Elem(), closed)

	// Any instantiation of the open interface names the same template.
	closed2, ok, err := qry.Implementation(reflect.TypeOf(Repo{}), reflect.TypeOf((*IRepository[Order])(nil)).Elem(), cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, closed, closed2)
}

func TestImplementation_NilRegistry(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	qry := query.New(nil, strategy.NewTagStrategy())

	// Without a registry there are no candidates, which is absence, not an
	// error.
	closed, ok, err := qry.Implementation(reflect.TypeOf(Repo{}), reflect.TypeOf((*IRepository[User])(nil)).Elem(), cfg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, closed)

	// Descriptor validation still applies.
	_, _, err = qry.Implementation(nil, reflect.TypeOf((*IRepository[User])(nil)).Elem(), cfg)
	assert.ErrorIs(t, err, apis.ErrInvalidArgument)
}

func TestImplementation_NoMatch(t *testing.T) {
	t.Parallel()
	reg, qry, cfg := newQuerier(t)
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*IRepository[User])(nil)).Elem()))

	closed, ok, err := qry.Implementation(reflect.TypeOf(Loner{}), reflect.TypeOf((*IRepository[User])(nil)).Elem(), cfg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, closed)
}

func TestImplementation_AmbiguousMatch(t *testing.T) {
	t.Parallel()
	reg, qry, cfg := newQuerier(t)
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*Keyed[User])(nil)).Elem()))
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*Keyed[Order])(nil)).Elem()))

	// Repo2 satisfies both recorded instantiations: fail loudly instead of
	// silently picking one.
	_, _, err := qry.Implementation(reflect.TypeOf(Repo2{}), reflect.TypeOf((*Keyed[User])(nil)).Elem(), cfg)
	require.ErrorIs(t, err, apis.ErrAmbiguousMatch)
}

func TestImplementation_InvalidDescriptors(t *testing.T) {
	t.Parallel()
	_, qry, cfg := newQuerier(t)

	cases := []struct {
		name string
		g    reflect.Type
	}{
		{"nil", nil},
		{"non-interface", reflect.TypeOf(User{})},
		{"non-generic interface", reflect.TypeOf((*Plain)(nil)).Elem()},
		{"builtin", reflect.TypeOf(42)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := qry.Implementation(reflect.TypeOf(Repo{}), tc.g, cfg)
			assert.ErrorIs(t, err, apis.ErrInvalidArgument)
		})
	}

	// Nil concrete type is a caller error too.
	_, _, err := qry.Implementation(nil, reflect.TypeOf((*IRepository[User])(nil)).Elem(), cfg)
	assert.ErrorIs(t, err, apis.ErrInvalidArgument)
}

func TestImplementation_PointerReceiverMethodSet(t *testing.T) {
	t.Parallel()
	reg, qry, cfg := newQuerier(t)
	require.NoError(t, reg.RegisterInterface(reflect.TypeOf((*Keyed[User])(nil)).Elem()))

	// Counter implements Keyed[User] only through *Counter.
	closed, ok, err := qry.Implementation(reflect.TypeOf(Counter{}), reflect.TypeOf((*Keyed[User])(nil)).Elem(), cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*Keyed[User])(nil)).Elem(), closed)
}

// Counter has pointer receiver methods only.
type Counter struct{ n int }

func (c *Counter) Key() string { return "counter" }
