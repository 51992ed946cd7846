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

import "slices"

// Abstraction represents a lambda term binding one or more single character
// parameters over a body.  Multiple parameters are shorthand for nested
// abstractions, so "λab.e" is equivalent to "λa.λb.e".
type Abstraction struct {
	Params []rune
	Body   Expr
}

// NewAbstraction constructs a new abstraction node.
func NewAbstraction(params []rune, body Expr) *Abstraction {
	return &Abstraction{params, body}
}

// Equals implementation for the Expr interface.
func (p *Abstraction) Equals(e Expr) bool {
	if e, ok := e.(*Abstraction); ok {
		return slices.Equal(p.Params, e.Params) && Equal(p.Body, e.Body)
	}
	//
	return false
}

func (p *Abstraction) String() string {
	return String(p)
}
