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

import (
	"fmt"
	"strings"
)

// Expr represents an arbitrary lambda term.  Every node exclusively owns its
// children, hence a tree has no sharing and no cycles.
type Expr interface {
	// Check whether two expressions are structurally identical.
	Equals(e Expr) bool
	// String returns a string representation of this expression which can be
	// parsed back into an equivalent expression.
	String() string
}

// Equal determines whether two (possibly nil) expressions are structurally
// identical.
func Equal(lhs Expr, rhs Expr) bool {
	if lhs == nil || rhs == nil {
		return lhs == nil && rhs == nil
	}
	//
	return lhs.Equals(rhs)
}

// String provides a generic facility for converting an expression into a
// suitable string.  The output is the concrete syntax of the expression, using
// the minimum number of brackets required for it to parse back into the same
// tree.
func String(e Expr) string {
	var builder strings.Builder
	//
	writeExpr(&builder, e, true)
	//
	return builder.String()
}

// Write an expression.  The tail flag indicates whether anything is written
// after this expression at the same level, as an abstraction will swallow
// everything to its right unless bracketed.
func writeExpr(builder *strings.Builder, e Expr, tail bool) {
	switch e := e.(type) {
	case *Name:
		builder.WriteString(e.Name)
	case *Application:
		writeExpr(builder, e.Callee, false)
		builder.WriteString(" ")
		// Application is left associative, so a nested application on the
		// right must be bracketed.
		if _, ok := e.Argument.(*Application); ok {
			writeBracketed(builder, e.Argument)
		} else {
			writeExpr(builder, e.Argument, tail)
		}
	case *Abstraction:
		if !tail {
			writeBracketed(builder, e)
			return
		}
		//
		builder.WriteString("λ")
		builder.WriteString(string(e.Params))
		builder.WriteString(".")
		writeExpr(builder, e.Body, true)
	default:
		panic(fmt.Sprintf("unknown expression encountered (%T)", e))
	}
}

func writeBracketed(builder *strings.Builder, e Expr) {
	builder.WriteString("(")
	writeExpr(builder, e, true)
	builder.WriteString(")")
}
