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

// Application represents the application of a callee to a single argument.
// Juxtaposition associates to the left, hence "f a b" is an application whose
// callee is itself the application "f a".
type Application struct {
	Callee   Expr
	Argument Expr
}

// NewApplication constructs a new application node.
func NewApplication(callee Expr, argument Expr) *Application {
	return &Application{callee, argument}
}

// Apply folds a sequence of arguments onto a given callee, producing a left
// associative chain of applications.
func Apply(callee Expr, arguments ...Expr) Expr {
	for _, arg := range arguments {
		callee = NewApplication(callee, arg)
	}
	//
	return callee
}

// Equals implementation for the Expr interface.
func (p *Application) Equals(e Expr) bool {
	if e, ok := e.(*Application); ok {
		return Equal(p.Callee, e.Callee) && Equal(p.Argument, e.Argument)
	}
	//
	return false
}

func (p *Application) String() string {
	return String(p)
}
