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
	"strings"
	"testing"

	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/consensys/go-lambda/pkg/util/source/lex"
	"github.com/stretchr/testify/assert"
)

func Test_Lex_Empty(t *testing.T) {
	checkLex(t, "", tok(END_OF, 0, 1))
}

func Test_Lex_Whitespace(t *testing.T) {
	checkLex(t, " \t\r\n", tok(END_OF, 4, 5))
}

func Test_Lex_Identity(t *testing.T) {
	checkLex(t, "λx.x",
		tok(LAMBDA, 0, 2),
		tok(IDENTIFIER, 2, 3),
		tok(DOT, 3, 4),
		tok(IDENTIFIER, 4, 5),
		tok(END_OF, 5, 6))
}

func Test_Lex_Identifiers(t *testing.T) {
	// Maximal munch over letters
	checkLex(t, "abc De",
		tok(IDENTIFIER, 0, 3),
		tok(IDENTIFIER, 4, 6),
		tok(END_OF, 6, 7))
}

func Test_Lex_Brackets(t *testing.T) {
	checkLex(t, "(f)",
		tok(LBRACE, 0, 1),
		tok(IDENTIFIER, 1, 2),
		tok(RBRACE, 2, 3),
		tok(END_OF, 3, 4))
}

func Test_Lex_Binding(t *testing.T) {
	checkLex(t, "a := b",
		tok(IDENTIFIER, 0, 1),
		tok(BINDING, 2, 4),
		tok(IDENTIFIER, 5, 6),
		tok(END_OF, 6, 7))
}

func Test_Lex_Invalid_01(t *testing.T) {
	// A colon on its own is not a token
	checkLex(t, ":", tok(INVALID, 0, 1), tok(END_OF, 1, 2))
}

func Test_Lex_Invalid_02(t *testing.T) {
	checkLex(t, "ab#c",
		tok(IDENTIFIER, 0, 2),
		tok(INVALID, 2, 3),
		tok(IDENTIFIER, 3, 4),
		tok(END_OF, 4, 5))
}

func Test_Lex_Invalid_03(t *testing.T) {
	// Multi-byte characters form a single invalid token
	checkLex(t, "é1",
		tok(INVALID, 0, 2),
		tok(INVALID, 2, 3),
		tok(END_OF, 3, 4))
}

func Test_Lex_Invalid_04(t *testing.T) {
	// Malformed encodings are consumed one byte at a time
	checkLex(t, "\xff\xfe",
		tok(INVALID, 0, 1),
		tok(INVALID, 1, 2),
		tok(END_OF, 2, 3))
}

func Test_Lexer_Restart(t *testing.T) {
	var (
		file  = source.NewSourceFile("test", []byte("(λx.x) y"))
		lexer = NewLexer(file)
		first []lex.Token
		again []lex.Token
	)
	//
	for lexer.HasNext() {
		first = append(first, lexer.Next())
	}
	//
	lexer.Reset()
	//
	for lexer.HasNext() {
		again = append(again, lexer.Next())
	}
	//
	assert.Equal(t, 8, len(first))
	assert.Equal(t, first, again)
}

func Test_Lex_Coverage(t *testing.T) {
	inputs := []string{
		"λx.λy.x y",
		"  (a\tb)\n c ",
		"f := λx.# x",
		"λxy.(x (y z))",
	}
	//
	for _, input := range inputs {
		checkCoverage(t, input)
	}
}

func Test_Describe(t *testing.T) {
	file := source.NewSourceFile("test", []byte("foo λ # \xff"))
	tokens := Lex(file)
	//
	assert.Equal(t, "`foo`", Describe(file, tokens[0]).String())
	assert.Equal(t, "`λ`", Describe(file, tokens[1]).String())
	assert.Equal(t, "`#`", Describe(file, tokens[2]).String())
	assert.Equal(t, "byte 0xff", Describe(file, tokens[3]).String())
	assert.Equal(t, "end of input", Describe(file, tokens[4]).String())
	assert.Equal(t, "identifier", Expect(IDENTIFIER).String())
	assert.Equal(t, "`)`", Expect(RBRACE).String())
}

// ==================================================================
// Framework
// ==================================================================

func tok(kind uint, start int, end int) lex.Token {
	return lex.Token{Kind: kind, Span: source.NewSpan(start, end)}
}

func checkLex(t *testing.T, input string, expected ...lex.Token) {
	tokens := Lex(source.NewSourceFile("test", []byte(input)))
	//
	assert.Equal(t, expected, tokens)
}

// Check spans are strictly increasing and non-overlapping, that anything not
// covered by a span is whitespace, and that the final token is the end-of-input
// sentinel.
func checkCoverage(t *testing.T, input string) {
	var (
		tokens = Lex(source.NewSourceFile("test", []byte(input)))
		last   = 0
	)
	//
	for i, token := range tokens {
		span := token.Span
		//
		assert.True(t, span.Start() >= last, "overlapping token %d in %q", i, input)
		assert.Equal(t, "", strings.Trim(input[last:span.Start()], " \t\r\n"))
		assert.True(t, span.Length() > 0)
		//
		last = span.End()
	}
	//
	final := tokens[len(tokens)-1]
	assert.Equal(t, END_OF, final.Kind)
	assert.Equal(t, source.NewSpan(len(input), len(input)+1), final.Span)
}
