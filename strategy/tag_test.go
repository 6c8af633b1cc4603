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

package strategy_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
	"dirpx.dev/mqx/strategy"
)

// Marker annotations used across the strategy tests.
type Required struct{}

type MaxLen struct{ N int }

func (MaxLen) ParseTag(arg string) (any, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, err
	}
	return MaxLen{N: n}, nil
}

// Renamed carries a custom tag key via apis.Namer.
type Renamed struct{}

func (Renamed) AnnotationName() string { return "rn" }

type tagged struct {
	Name  string `mqx:"required"`
	Bio   string `mqx:"maxlen=160"`
	Both  string `mqx:"required,maxlen=10"`
	Twice string `mqx:"maxlen=1,maxlen=2"`
	Alt   string `mqx:"rn"`
	Bad   string `mqx:"maxlen=oops"`
	None  string
	Other string `json:"other"`
}

func fieldMember(t *testing.T, name string) apis.Member {
	t.Helper()
	f, ok := reflect.TypeOf(tagged{}).FieldByName(name)
	require.True(t, ok, "field %s", name)
	return apis.Member{Kind: apis.KindField, Name: name, Field: f}
}

func TestTagStrategy_BareKey(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()

	anns, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), fieldMember(t, "Name"), reflect.TypeOf(Required{}), cfg)
	require.True(t, ok)
	require.Len(t, anns, 1)
	assert.IsType(t, Required{}, anns[0])
}

func TestTagStrategy_ParsedArgument(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()

	anns, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), fieldMember(t, "Bio"), reflect.TypeOf(MaxLen{}), cfg)
	require.True(t, ok)
	require.Len(t, anns, 1)
	assert.Equal(t, MaxLen{N: 160}, anns[0])
}

func TestTagStrategy_MultipleKeysOneEntryEach(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()
	m := fieldMember(t, "Both")

	req, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), m, reflect.TypeOf(Required{}), cfg)
	require.True(t, ok)
	assert.Len(t, req, 1)

	ml, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), m, reflect.TypeOf(MaxLen{}), cfg)
	require.True(t, ok)
	assert.Equal(t, []any{MaxLen{N: 10}}, ml)
}

func TestTagStrategy_RepeatedKeyYieldsMultipleInstances(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()

	anns, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), fieldMember(t, "Twice"), reflect.TypeOf(MaxLen{}), cfg)
	require.True(t, ok)
	assert.Equal(t, []any{MaxLen{N: 1}, MaxLen{N: 2}}, anns)
}

func TestTagStrategy_NamerKey(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()

	anns, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), fieldMember(t, "Alt"), reflect.TypeOf(Renamed{}), cfg)
	require.True(t, ok)
	assert.Len(t, anns, 1)
}

func TestTagStrategy_FallsThrough(t *testing.T) {
	t.Parallel()
	s := strategy.NewTagStrategy()
	cfg := config.DefaultConfig()

	cases := []struct {
		name   string
		member apis.Member
		marker reflect.Type
	}{
		{"untagged field", fieldMember(t, "None"), reflect.TypeOf(Required{})},
		{"foreign namespace", fieldMember(t, "Other"), reflect.TypeOf(Required{})},
		{"wrong marker", fieldMember(t, "Name"), reflect.TypeOf(MaxLen{})},
		{"malformed argument", fieldMember(t, "Bad"), reflect.TypeOf(MaxLen{})},
		{"non-field member", apis.Member{Kind: apis.KindMethod, Name: "Name"}, reflect.TypeOf(Required{})},
		{"type itself", apis.Member{}, reflect.TypeOf(Required{})},
		{"nil marker", fieldMember(t, "Name"), nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			anns, ok := s.TryAnnotations(reflect.TypeOf(tagged{}), tc.member, tc.marker, cfg)
			assert.False(t, ok)
			assert.Nil(t, anns)
		})
	}
}

func TestTagStrategy_CustomTagKey(t *testing.T) {
	t.Parallel()
	type alt struct {
		Name string `meta:"required"`
	}
	f, _ := reflect.TypeOf(alt{}).FieldByName("Name")
	m := apis.Member{Kind: apis.KindField, Name: "Name", Field: f}

	s := strategy.NewTagStrategy()
	cfg := config.NewConfig(config.WithTagKey("meta"))

	anns, ok := s.TryAnnotations(reflect.TypeOf(alt{}), m, reflect.TypeOf(Required{}), cfg)
	require.True(t, ok)
	assert.Len(t, anns, 1)

	// The default key does not see the custom namespace.
	_, ok = s.TryAnnotations(reflect.TypeOf(alt{}), m, reflect.TypeOf(Required{}), config.DefaultConfig())
	assert.False(t, ok)
}

func TestMarkerKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "required", strategy.MarkerKey(reflect.TypeOf(Required{})))
	assert.Equal(t, "required", strategy.MarkerKey(reflect.TypeOf(&Required{})))
	assert.Equal(t, "rn", strategy.MarkerKey(reflect.TypeOf(Renamed{})))
	assert.Equal(t, "", strategy.MarkerKey(nil))
}
