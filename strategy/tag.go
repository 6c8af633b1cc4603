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

package strategy

import (
	"reflect"
	"strings"

	"dirpx.dev/mqx/apis"
	"dirpx.dev/mqx/config"
)

// NewTagStrategy creates an apis.Strategy that derives annotation instances
// from struct tags. It is the universal fallback for field members.
func NewTagStrategy() apis.Strategy {
	return tagStrategy{}
}

// tagStrategy parses Config.TagKey tags: a comma-separated list of entries,
// each a bare marker key ("required") or key=arg ("max=10"). The key of a
// marker type comes from apis.Namer when implemented, else its lowercased
// type name. Repeated keys yield multiple instances. Entries whose argument
// the marker fails to parse are ignored; tags declare metadata and a
// malformed entry is indistinguishable from someone else's namespace.
type tagStrategy struct{}

// Ensure tagStrategy implements apis.Strategy.
var _ apis.Strategy = (*tagStrategy)(nil)

// TryAnnotations scans the field's tag for entries of the marker kind.
// Non-field members carry no tags and always fall through.
func (tagStrategy) TryAnnotations(_ reflect.Type, m apis.Member, marker reflect.Type, cfg apis.Config) ([]any, bool) {
	if m.Kind != apis.KindField || marker == nil {
		return nil, false
	}
	key := cfg.TagKey
	if key == "" {
		key = config.DefaultTagKey
	}
	tag, ok := m.Field.Tag.Lookup(key)
	if !ok {
		return nil, false
	}

	want := MarkerKey(marker)
	var out []any
	for _, entry := range strings.Split(tag, ",") {
		k, arg, hasArg := strings.Cut(entry, "=")
		if strings.TrimSpace(k) != want {
			continue
		}
		inst, err := instantiate(marker, arg, hasArg)
		if err != nil {
			continue
		}
		out = append(out, inst)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// MarkerKey returns the tag key of an annotation marker type: its
// apis.Namer name when implemented, else the lowercased bare type name
// ("Required" -> "required", generic suffixes stripped).
func MarkerKey(marker reflect.Type) string {
	if marker == nil {
		return ""
	}
	if marker.Kind() == reflect.Ptr {
		marker = marker.Elem()
	}
	if n, ok := zeroOf(marker).(apis.Namer); ok {
		return n.AnnotationName()
	}
	name := marker.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

// instantiate builds an annotation instance for one tag entry.
// A bare key yields the zero marker value; key=arg requires apis.TagParser.
func instantiate(marker reflect.Type, arg string, hasArg bool) (any, error) {
	zero := zeroOf(marker)
	if !hasArg {
		return zero, nil
	}
	if p, ok := zero.(apis.TagParser); ok {
		return p.ParseTag(arg)
	}
	// Marker cannot parse arguments; treat the argument as decoration.
	return zero, nil
}

// zeroOf returns a zero instance of the marker, probing *T for pointer
// receiver contracts.
func zeroOf(marker reflect.Type) any {
	v := reflect.New(marker)
	if _, ok := v.Interface().(apis.Namer); ok {
		return v.Interface()
	}
	if _, ok := v.Interface().(apis.TagParser); ok {
		return v.Interface()
	}
	return v.Elem().Interface()
}
