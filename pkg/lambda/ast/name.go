// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

// Name represents a reference to a (free or bound) variable.
type Name struct {
	Name string
}

// NewName constructs a reference to a given variable name.
func NewName(name string) *Name {
	return &Name{name}
}

// Equals implementation for the Expr interface.
func (p *Name) Equals(e Expr) bool {
	if e, ok := e.(*Name); ok {
		return p.Name == e.Name
	}
	//
	return false
}

func (p *Name) String() string {
	return String(p)
}
