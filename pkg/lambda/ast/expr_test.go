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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_String_Name(t *testing.T) {
	assert.Equal(t, "abc", NewName("abc").String())
}

func Test_String_Application(t *testing.T) {
	var (
		a, b, c = NewName("a"), NewName("b"), NewName("c")
	)
	// Left associative chains need no brackets
	assert.Equal(t, "a b c", Apply(a, b, c).String())
	// Right nested applications do
	assert.Equal(t, "a (b c)", NewApplication(a, NewApplication(b, c)).String())
}

func Test_String_Abstraction(t *testing.T) {
	var (
		x   = NewName("x")
		id  = NewAbstraction([]rune("x"), x)
		app = NewApplication(NewName("f"), x)
	)
	//
	assert.Equal(t, "λx.x", id.String())
	assert.Equal(t, "λxy.f x", NewAbstraction([]rune("xy"), app).String())
	// Abstraction as callee must be bracketed
	assert.Equal(t, "(λx.x) f", NewApplication(id, NewName("f")).String())
	// Abstraction as final argument need not be
	assert.Equal(t, "f λx.x", NewApplication(NewName("f"), id).String())
	// Abstraction as non-final argument must be bracketed
	assert.Equal(t, "f (λx.x) y", Apply(NewName("f"), id, NewName("y")).String())
	// Nested abstractions in tail position
	assert.Equal(t, "λx.λy.x", NewAbstraction([]rune("x"), NewAbstraction([]rune("y"), x)).String())
}

func Test_Equal(t *testing.T) {
	var (
		lhs = Apply(NewName("a"), NewAbstraction([]rune("x"), NewName("x")))
		rhs = Apply(NewName("a"), NewAbstraction([]rune("x"), NewName("x")))
		oth = Apply(NewName("a"), NewAbstraction([]rune("y"), NewName("x")))
	)
	//
	assert.True(t, Equal(lhs, rhs))
	assert.False(t, Equal(lhs, oth))
	assert.False(t, Equal(lhs, nil))
	assert.True(t, Equal(nil, nil))
	assert.False(t, NewName("a").Equals(NewApplication(NewName("a"), NewName("a"))))
}

func Test_Debug(t *testing.T) {
	expr := NewAbstraction([]rune("xy"), Apply(NewName("x"), NewName("y")))
	expected := "Abstraction [x, y]\n" +
		"  Application\n" +
		"    Name(x)\n" +
		"    Name(y)\n"
	//
	assert.Equal(t, expected, Debug(expr))
}
