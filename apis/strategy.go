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

import "reflect"

// Strategy is a pluggable annotation-lookup step. A Querier chains multiple
// strategies in order (e.g., Annotated -> Registry -> Tag); the first one
// that reports a match for a member wins.
type Strategy interface {
	// TryAnnotations attempts to find annotation instances of the marker
	// kind on member m of t (zero Member: the type itself). It returns
	// (instances, true) if this source has them; otherwise (nil, false) to
	// fall through.
	TryAnnotations(t reflect.Type, m Member, marker reflect.Type, cfg Config) (anns []any, handled bool)
}
