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

import "errors"

// Error taxonomy shared by all mqx packages. Producers wrap these with
// fmt.Errorf("pkg: %w: detail", ...) so callers can classify failures
// with errors.Is without depending on message text.
var (
	// ErrInvalidArgument indicates a caller error: a descriptor that is not
	// a generic interface where one is required, or a member handle of the
	// wrong kind passed to a value-access operation.
	ErrInvalidArgument = errors.New("mqx: invalid argument")

	// ErrAmbiguousMatch indicates that a type implements more than one
	// structurally distinct closed instantiation of the queried generic
	// interface template.
	ErrAmbiguousMatch = errors.New("mqx: ambiguous match")

	// ErrNotImplemented indicates that a required interface match is absent.
	// Only the Must* accessors produce it; plain lookups report absence
	// without an error.
	ErrNotImplemented = errors.New("mqx: interface not implemented")

	// ErrInvalidOperation indicates a value-access operation the member
	// cannot support: reading a write-only property, writing a read-only
	// property, or writing an immutable field.
	ErrInvalidOperation = errors.New("mqx: invalid operation")
)
