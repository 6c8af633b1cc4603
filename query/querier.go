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

// New constructs an apis.Querier that tries the given annotation strategies
// in order and matches interface templates against reg's candidate set.
// Nil strategies are ignored. A nil reg is tolerated and yields an empty
// instantiation candidate set. The returned querier is safe for concurrent
// use provided reg and the strategies themselves are.
func New(reg apis.Registry, strategies ...apis.Strategy) apis.Querier {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return querier{reg: reg, strats: out}
}

// querier is an immutable, order-preserving querier over a set of
// strategies and a registry. It holds no mutable state and caches nothing:
// every call re-derives its answer.
type querier struct {
	reg    apis.Registry
	strats []apis.Strategy
}

// Annotations runs strategies in order until one handles the member.
// Returns nil if no strategy produced annotation instances.
func (q querier) Annotations(t reflect.Type, m apis.Member, marker reflect.Type, cfg apis.Config) []any {
	for _, s := range q.strats {
		if anns, ok := s.TryAnnotations(t, m, marker, cfg); ok {
			return anns
		}
	}
	return nil
}
