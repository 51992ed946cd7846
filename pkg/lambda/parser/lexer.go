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
	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/consensys/go-lambda/pkg/util/source/lex"
)

// Rule for describing whitespace
var whitespace lex.Scanner[byte] = lex.Many(lex.Or(
	lex.Unit[byte](' '),
	lex.Unit[byte]('\t'),
	lex.Unit[byte]('\r'),
	lex.Unit[byte]('\n')))

// Rule for describing identifiers
var identifier lex.Scanner[byte] = lex.Many(lex.Or(
	lex.Within[byte]('a', 'z'),
	lex.Within[byte]('A', 'Z')))

// lexing rules.  Order matters: multi-character tokens precede any single
// character rule they share a prefix with, and the final rule accepts any
// single character so that lexing never gets stuck.
var rules []lex.LexRule[byte] = []lex.LexRule[byte]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Bytes("λ"), LAMBDA),
	lex.Rule(lex.Unit[byte](':', '='), BINDING),
	lex.Rule(lex.Unit[byte]('.'), DOT),
	lex.Rule(lex.Unit[byte]('('), LBRACE),
	lex.Rule(lex.Unit[byte](')'), RBRACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[byte](), END_OF),
	lex.Rule(lex.Utf8(), INVALID),
}

// Lexer produces the tokens of a given source file on demand, discarding any
// whitespace.  The final token is always END_OF, whose span covers the single
// position immediately after the input.
type Lexer struct {
	lexer *lex.Lexer[byte]
	// Next non-whitespace token, if already scanned.
	pending util.Option[lex.Token]
}

// NewLexer constructs a new lexer for a given source file.
func NewLexer(srcfile *source.File) *Lexer {
	return &Lexer{lex.NewLexer(srcfile.Contents(), rules...), util.None[lex.Token]()}
}

// HasNext checks whether or not there are any tokens remaining.
func (p *Lexer) HasNext() bool {
	for p.pending.IsEmpty() && p.lexer.HasNext() {
		if token := p.lexer.Next(); token.Kind != WHITESPACE {
			p.pending = util.Some(token)
		}
	}
	//
	return p.pending.HasValue()
}

// Next returns the next token and advances the lexer.
func (p *Lexer) Next() lex.Token {
	token := p.pending.Unwrap()
	p.pending = util.None[lex.Token]()
	//
	return token
}

// Reset restarts this lexer from the beginning of its input.
func (p *Lexer) Reset() {
	p.lexer.Reset()
	p.pending = util.None[lex.Token]()
}

// Lex a given source file into a sequence of tokens terminated by END_OF.
// Whitespace is dropped, and any unrecognised character is returned as an
// INVALID token rather than stopping the lexer.
func Lex(srcfile *source.File) []lex.Token {
	var (
		lexer  = NewLexer(srcfile)
		tokens []lex.Token
	)
	//
	for lexer.HasNext() {
		tokens = append(tokens, lexer.Next())
	}
	//
	return tokens
}
