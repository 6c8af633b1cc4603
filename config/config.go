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

package config

import (
	"dirpx.dev/mqx/apis"
)

const (
	// DefaultTagKey is the struct tag key scanned for annotation entries.
	DefaultTagKey = "mqx"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem represents the default for MapPreferElem.
	// When true, map value types are preferred when searching for named inner types.
	DefaultMapPreferElem = true
	// DefaultIncludeAbstract represents the default for IncludeAbstract.
	// Abstract (interface) types are excluded from type-level queries unless requested.
	DefaultIncludeAbstract = false
)

// DefaultBinding is the member visibility filter used when a query supplies none.
const DefaultBinding = apis.BindExported

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		TagKey:          DefaultTagKey,
		MaxUnwrap:       DefaultMaxUnwrap,
		MapPreferElem:   DefaultMapPreferElem,
		Binding:         DefaultBinding,
		IncludeAbstract: DefaultIncludeAbstract,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithTagKey sets the TagKey option. An empty key resets to the default.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		if key == "" {
			c.TagKey = DefaultTagKey
			return
		}
		c.TagKey = key
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// WithBinding sets the default member visibility filter.
// A zero value resets to the default.
func WithBinding(b apis.Binding) Option {
	return func(c *apis.Config) {
		if b == 0 {
			c.Binding = DefaultBinding
			return
		}
		c.Binding = b
	}
}

// WithIncludeAbstract sets the IncludeAbstract option.
func WithIncludeAbstract(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeAbstract = include
	}
}
