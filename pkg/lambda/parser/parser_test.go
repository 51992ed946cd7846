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
package parser

import (
	"testing"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Valid
// ============================================================================

func Test_Parse_Name(t *testing.T) {
	for _, name := range []string{"a", "abc", "XyZ", "lambda"} {
		checkParse(t, name, ast.NewName(name))
	}
}

func Test_Parse_Application_01(t *testing.T) {
	checkParse(t, "f x", ast.NewApplication(name("f"), name("x")))
}

func Test_Parse_Application_02(t *testing.T) {
	// Left associative
	expected := ast.NewApplication(ast.NewApplication(name("a"), name("b")), name("c"))
	checkParse(t, "a b c", expected)
}

func Test_Parse_Application_03(t *testing.T) {
	expected := ast.NewApplication(name("a"), ast.NewApplication(name("b"), name("c")))
	checkParse(t, "a (b c)", expected)
}

func Test_Parse_Abstraction_01(t *testing.T) {
	checkParse(t, "λx.x", abs("x", name("x")))
}

func Test_Parse_Abstraction_02(t *testing.T) {
	// Body extends as far right as possible
	checkParse(t, "λx. a b", abs("x", ast.Apply(name("a"), name("b"))))
}

func Test_Parse_Abstraction_03(t *testing.T) {
	// Each letter of the parameter identifier is a parameter
	checkParse(t, "λab.a", abs("ab", name("a")))
}

func Test_Parse_Abstraction_04(t *testing.T) {
	checkParse(t, "(λx.x) y", ast.NewApplication(abs("x", name("x")), name("y")))
}

func Test_Parse_Abstraction_05(t *testing.T) {
	// A bare abstraction as an operand swallows everything after it.
	expected := ast.NewApplication(name("f"), abs("x", ast.Apply(name("x"), name("y"))))
	checkParse(t, "f λx.x y", expected)
}

func Test_Parse_Abstraction_06(t *testing.T) {
	checkParse(t, "λx.λy.x", abs("x", abs("y", name("x"))))
}

func Test_Parse_Abstraction_Body(t *testing.T) {
	bodies := []string{"x", "x y", "(a b) c", "λy.y", "f (λz.z) w", "((q))"}
	//
	for _, body := range bodies {
		expected, errs := Parse(body)
		require.Empty(t, errs)
		//
		checkParse(t, "λx."+body, abs("x", expected))
	}
}

func Test_Parse_Brackets(t *testing.T) {
	pairs := [][2]string{
		{"(a)", "a"},
		{"((a))", "a"},
		{"((a b))", "a b"},
		{"(a) (b)", "a b"},
		{"(λx.x)", "λx.x"},
	}
	//
	for _, pair := range pairs {
		lhs, errs := Parse(pair[0])
		require.Empty(t, errs)
		rhs, errs := Parse(pair[1])
		require.Empty(t, errs)
		//
		assert.True(t, ast.Equal(lhs, rhs), "%s != %s", pair[0], pair[1])
	}
}

func Test_Parse_Whitespace(t *testing.T) {
	checkParse(t, "\n  f\t(\r\nx )  ", ast.NewApplication(name("f"), name("x")))
}

func Test_Parse_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"a b c",
		"a (b c)",
		"λx.x",
		"λxy.x (y y)",
		"(λx.x x) (λx.x x)",
		"f (λx.x) y",
		"f λx.x y",
		"λf.(λx.f (x x)) (λx.f (x x))",
		"((a b) (c d)) e",
		"λx.λy.λz.x z (y z)",
	}
	//
	for _, input := range inputs {
		expr, errs := Parse(input)
		require.Empty(t, errs, input)
		//
		printed := ast.String(expr)
		reparsed, errs := Parse(printed)
		require.Empty(t, errs, printed)
		assert.True(t, ast.Equal(expr, reparsed), "%s => %s", input, printed)
	}
}

func Test_Parse_SourceMap(t *testing.T) {
	var (
		file                 = source.NewSourceFile("test", []byte("f (x y)"))
		expr, srcmap, errors = ParseFile(file, Options{})
	)
	//
	require.Empty(t, errors)
	//
	root := expr.(*ast.Application)
	assert.Equal(t, source.NewSpan(0, 7), srcmap.Get(root))
	assert.Equal(t, source.NewSpan(0, 1), srcmap.Get(root.Callee))
	assert.Equal(t, source.NewSpan(3, 6), srcmap.Get(root.Argument))
}

func Test_Parse_MaxDepth(t *testing.T) {
	var (
		file          = source.NewSourceFile("test", []byte("((((a))))"))
		_, _, errors  = ParseFile(file, Options{MaxDepth: 3})
		expr, _, errs = ParseFile(source.NewSourceFile("test", []byte("((a))")), Options{MaxDepth: 3})
	)
	//
	checkErrors(t, errors, &CustomError{span(3, 4), "expression nested too deeply (limit is 3)"})
	assert.Empty(t, errs)
	assert.True(t, ast.Equal(name("a"), expr))
}

// ============================================================================
// Invalid
// ============================================================================

func Test_Invalid_Empty(t *testing.T) {
	checkInvalid(t, "", &UnexpectedToken{span(0, 1), none(), expect(LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Whitespace(t *testing.T) {
	checkInvalid(t, "   ", &UnexpectedToken{span(3, 4), none(), expect(LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Unclosed_01(t *testing.T) {
	checkInvalid(t, "(a", &UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(2, 3), none()})
}

func Test_Invalid_Unclosed_02(t *testing.T) {
	checkInvalid(t, "((a",
		&UnclosedDelimiter{span(1, 2), Description{LBRACE, "("}, span(3, 4), none()},
		&UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(3, 4), none()})
}

func Test_Invalid_Unclosed_03(t *testing.T) {
	// The group is abandoned at the dot, and parsing resumes after the
	// closing bracket.
	checkInvalid(t, "(a . b) c",
		&UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(3, 4), found(DOT, ".")})
}

func Test_Invalid_Unclosed_04(t *testing.T) {
	// Two separately unclosed groups
	checkInvalid(t, "(a . b) (c",
		&UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(3, 4), found(DOT, ".")},
		&UnclosedDelimiter{span(8, 9), Description{LBRACE, "("}, span(10, 11), none()})
}

func Test_Invalid_Unclosed_05(t *testing.T) {
	// Skipping to the end of input reports the group only once
	checkInvalid(t, "(a . b (c",
		&UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(3, 4), found(DOT, ".")})
}

func Test_Invalid_MissingParam(t *testing.T) {
	checkInvalid(t, "λ.", &UnexpectedToken{span(2, 3), found(DOT, "."), expect(IDENTIFIER)})
}

func Test_Invalid_MissingDot(t *testing.T) {
	checkInvalid(t, "λx x", &UnexpectedToken{span(4, 5), found(IDENTIFIER, "x"), expect(DOT)})
}

func Test_Invalid_MissingBody(t *testing.T) {
	checkInvalid(t, "λx.", &UnexpectedToken{span(4, 5), none(), expect(LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_EmptyBrackets(t *testing.T) {
	checkInvalid(t, "()", &UnexpectedToken{span(1, 2), found(RBRACE, ")"), expect(LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Trailing(t *testing.T) {
	checkInvalid(t, "a )", &UnexpectedToken{span(2, 3), found(RBRACE, ")"), expect(END_OF, LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Character(t *testing.T) {
	checkInvalid(t, "a # b", &UnexpectedToken{span(2, 3), found(INVALID, "#"), expect(END_OF, LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Binding_01(t *testing.T) {
	checkInvalid(t, "a := b", &CustomError{span(2, 4), "definitions using `:=` are not supported in expressions"})
}

func Test_Invalid_Binding_02(t *testing.T) {
	checkInvalid(t, "(a := b) c", &CustomError{span(3, 5), "definitions using `:=` are not supported in expressions"})
}

func Test_Invalid_Recovery_01(t *testing.T) {
	// Errors in separate groups are all reported
	checkInvalid(t, "(λ.x) (y",
		&UnexpectedToken{span(3, 4), found(DOT, "."), expect(IDENTIFIER)},
		&UnclosedDelimiter{span(7, 8), Description{LBRACE, "("}, span(9, 10), none()})
}

func Test_Invalid_Recovery_02(t *testing.T) {
	checkInvalid(t, "f (λ.x) (λy) z",
		&UnexpectedToken{span(5, 6), found(DOT, "."), expect(IDENTIFIER)},
		&UnexpectedToken{span(13, 14), found(RBRACE, ")"), expect(DOT)})
}

func Test_Invalid_Recovery_03(t *testing.T) {
	// Error outside of a group ends the parse
	checkInvalid(t, "λ. (λ.x)", &UnexpectedToken{span(2, 3), found(DOT, "."), expect(IDENTIFIER)})
}

func Test_Invalid_Recovery_04(t *testing.T) {
	// Trailing tokens are still checked after recovery
	checkInvalid(t, "(λ.x) )",
		&UnexpectedToken{span(3, 4), found(DOT, "."), expect(IDENTIFIER)},
		&UnexpectedToken{span(7, 8), found(RBRACE, ")"), expect(END_OF, LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Recovery_05(t *testing.T) {
	// Group failing at end of input is not also reported as unclosed
	checkInvalid(t, "λx. x (", &UnexpectedToken{span(8, 9), none(), expect(LAMBDA, LBRACE, IDENTIFIER)})
}

func Test_Invalid_Recovery_06(t *testing.T) {
	// Enclosing groups are still reported
	checkInvalid(t, "f ((",
		&UnexpectedToken{span(4, 5), none(), expect(LAMBDA, LBRACE, IDENTIFIER)},
		&UnclosedDelimiter{span(2, 3), Description{LBRACE, "("}, span(4, 5), none()})
}

func Test_Invalid_Idempotent(t *testing.T) {
	inputs := []string{"", "(a", "λ.", "(λ.x) (y", "a := b", "((a"}
	//
	for _, input := range inputs {
		_, first := Parse(input)
		_, second := Parse(input)
		//
		require.NotEmpty(t, first)
		assert.Equal(t, first, second)
	}
}

func Test_Invalid_Parser_Reuse(t *testing.T) {
	var (
		file         = source.NewSourceFile("test", []byte("(a"))
		parser       = NewParser(file, Options{})
		_, _, first  = parser.Parse()
		_, _, second = parser.Parse()
	)
	//
	assert.Len(t, first, 1)
	assert.Equal(t, first, second)
}

func Test_Error_Messages(t *testing.T) {
	errs := []ParseError{
		&UnclosedDelimiter{span(0, 1), Description{LBRACE, "("}, span(2, 3), none()},
		&UnexpectedToken{span(2, 3), found(DOT, "."), expect(IDENTIFIER)},
		&UnexpectedToken{span(0, 1), none(), expect(LAMBDA, LBRACE, IDENTIFIER)},
		&UnexpectedToken{span(0, 1), found(INVALID, "#"), nil},
		&CustomError{span(0, 1), "oops"},
	}
	//
	assert.Equal(t, "unclosed delimiter `(`", errs[0].Error())
	assert.Equal(t, "unexpected token in input, expected identifier", errs[1].Error())
	assert.Equal(t, "unexpected end of input, expected `λ`, `(`, identifier", errs[2].Error())
	assert.Equal(t, "unexpected token in input, expected something else", errs[3].Error())
	assert.Equal(t, "oops", errs[4].Error())
}

// ============================================================================
// Framework
// ============================================================================

func name(n string) ast.Expr {
	return ast.NewName(n)
}

func abs(params string, body ast.Expr) ast.Expr {
	return ast.NewAbstraction([]rune(params), body)
}

func span(start, end int) source.Span {
	return source.NewSpan(start, end)
}

func none() util.Option[Description] {
	return util.None[Description]()
}

func found(kind uint, text string) util.Option[Description] {
	return util.Some(Description{kind, text})
}

func expect(kinds ...uint) []Description {
	return expectations(kinds)
}

func checkParse(t *testing.T, input string, expected ast.Expr) {
	actual, errs := Parse(input)
	//
	require.Empty(t, errs, "parsing %q", input)
	assert.True(t, ast.Equal(expected, actual), "parsing %q: expected %s, got %s", input, expected, actual)
}

func checkInvalid(t *testing.T, input string, expected ...ParseError) {
	actual, errs := Parse(input)
	//
	assert.Nil(t, actual, "parsing %q", input)
	checkErrors(t, errs, expected...)
}

func checkErrors(t *testing.T, actual []ParseError, expected ...ParseError) {
	require.Len(t, actual, len(expected), "got %v", actual)
	//
	for i := range expected {
		assert.Equal(t, expected[i], actual[i])
	}
}
