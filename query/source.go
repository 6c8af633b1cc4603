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

	"dirpx.dev/mqx/apis"
)

// Fixed is a slice-backed apis.TypeSource for callers that assemble their
// declared-type bundle by hand (and for tests).
type Fixed []reflect.Type

// Ensure Fixed implements apis.TypeSource.
var _ apis.TypeSource = (Fixed)(nil)

// Types returns a copy of the fixed type list; enumeration never fails.
func (f Fixed) Types() ([]reflect.Type, error) {
	out := make([]reflect.Type, len(f))
	copy(out, f)
	return out, nil
}

// SourceOf builds a Fixed source from the dynamic types of the given values.
func SourceOf(vs ...any) Fixed {
	out := make(Fixed, 0, len(vs))
	for _, v := range vs {
		if v == nil {
			continue
		}
		out = append(out, reflect.TypeOf(v))
	}
	return out
}
