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

// Debug produces an indented, multi-line rendering of the tree structure of an
// expression, with one node per line.  This is intended for inspecting how a
// term was parsed (e.g. how applications were associated).
func Debug(e Expr) string {
	var builder strings.Builder
	//
	writeDebug(&builder, e, 0)
	//
	return builder.String()
}

func writeDebug(builder *strings.Builder, e Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	//
	switch e := e.(type) {
	case *Name:
		fmt.Fprintf(builder, "%sName(%s)\n", indent, e.Name)
	case *Application:
		fmt.Fprintf(builder, "%sApplication\n", indent)
		writeDebug(builder, e.Callee, depth+1)
		writeDebug(builder, e.Argument, depth+1)
	case *Abstraction:
		fmt.Fprintf(builder, "%sAbstraction [%s]\n", indent, paramList(e.Params))
		writeDebug(builder, e.Body, depth+1)
	default:
		panic(fmt.Sprintf("unknown expression encountered (%T)", e))
	}
}

func paramList(params []rune) string {
	names := make([]string, len(params))
	//
	for i, p := range params {
		names[i] = string(p)
	}
	//
	return strings.Join(names, ", ")
}
