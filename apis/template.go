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

// Template is the identity of an open generic interface: the package path
// and type name with the instantiation suffix stripped. Two closed
// instantiations of the same open interface (Comparable[string],
// Comparable[int]) share one Template, independent of type arguments.
// Template is comparable and usable as a map key.
type Template struct {
	// PkgPath is the defining package's import path.
	PkgPath string
	// Name is the bare type name, without "[...]" parameters.
	Name string
}

// String returns "pkgpath.Name".
func (t Template) String() string {
	if t.PkgPath == "" {
		return t.Name
	}
	return t.PkgPath + "." + t.Name
}

// IsZero reports whether t carries no identity.
func (t Template) IsZero() bool { return t == Template{} }
