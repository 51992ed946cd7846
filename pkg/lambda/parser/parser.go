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
	"fmt"
	"slices"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/consensys/go-lambda/pkg/util/source/lex"
)

// ATOM_START captures the set of tokens which can begin an atom.
var ATOM_START = []uint{LAMBDA, LBRACE, IDENTIFIER}

// Options controls the behaviour of the parser.
type Options struct {
	// MaxDepth bounds how deeply expressions may be nested (through brackets
	// or abstractions), where zero means unlimited.  Without a bound, deeply
	// nested input is limited only by the available stack.
	MaxDepth uint
}

// Parse a given piece of text as a single lambda expression.  This returns
// either the expression, or a non-empty list of syntax errors in the order they
// were discovered.
func Parse(text string) (ast.Expr, []ParseError) {
	expr, _, errs := ParseFile(source.NewSourceFile("", []byte(text)), Options{})
	//
	return expr, errs
}

// ParseFile parses a given source file as a single lambda expression.  On
// success, this additionally returns a source map identifying the span of each
// node in the resulting tree.
func ParseFile(srcfile *source.File, options Options) (ast.Expr, *source.Map[ast.Expr], []ParseError) {
	return NewParser(srcfile, options).Parse()
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive descent parser for lambda expressions.  The grammar is
// structured as a precedence ladder, where an expression is a left-associative
// sequence of one or more atoms, and an atom is a name, a bracketed expression
// or an abstraction.  The body of an abstraction is itself an expression, and
// so extends as far to the right as possible.
//
// When an error arises within a bracketed expression, the parser skips to the
// matching closing bracket and continues from there.  Thus, errors in separate
// groups are all reported by a single parse.  An error outside of any group
// ends the parse.
type Parser struct {
	srcfile *source.File
	options Options
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[ast.Expr]
	// Position within the tokens
	index int
	// Current nesting depth
	depth uint
	// Indicates the nesting limit was exceeded, in which case no recovery is
	// attempted.
	aborted bool
	// Errors discovered so far
	errors []ParseError
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File, options Options) *Parser {
	return &Parser{srcfile: srcfile, options: options}
}

// Parse the given source file into an expression, or some number of syntax
// errors.  Each call starts afresh from the beginning of the file.
func (p *Parser) Parse() (ast.Expr, *source.Map[ast.Expr], []ParseError) {
	// Reset state
	p.tokens = Lex(p.srcfile)
	p.srcmap = source.NewSourceMap[ast.Expr](p.srcfile)
	p.index, p.depth, p.aborted, p.errors = 0, 0, false, nil
	// Parse expression
	expr, ok := p.parseExpr()
	// Check everything was consumed.
	if ok && p.lookahead().Kind != END_OF {
		p.unexpected(append([]uint{END_OF}, ATOM_START...)...)
	}
	//
	if len(p.errors) > 0 {
		return nil, nil, p.errors
	}
	//
	return expr, p.srcmap, nil
}

// Parse a left-associative sequence of one or more atoms.  The return value
// follows a convention used throughout the parser: false indicates an error
// from which no recovery has yet been made; true with a nil expression
// indicates an error was reported but the parser has recovered; otherwise, the
// expression was parsed successfully.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	var (
		start  = p.index
		failed bool
	)
	//
	if !p.enter() {
		return nil, false
	}
	//
	defer p.leave()
	//
	expr, ok := p.parseAtom()
	//
	if !ok {
		return nil, false
	}
	// Fold in remaining atoms
	for p.follows(ATOM_START...) {
		arg, ok := p.parseAtom()
		//
		if !ok {
			return nil, false
		} else if expr == nil || arg == nil {
			failed = true
		} else {
			expr = ast.NewApplication(expr, arg)
			p.srcmap.Put(expr, p.spanOf(start, p.index-1))
		}
	}
	//
	if failed || expr == nil {
		return nil, true
	}
	//
	return expr, true
}

func (p *Parser) parseAtom() (ast.Expr, bool) {
	lookahead := p.lookahead()
	//
	switch lookahead.Kind {
	case IDENTIFIER:
		p.index++
		name := ast.NewName(p.string(lookahead))
		p.srcmap.Put(name, lookahead.Span)
		//
		return name, true
	case LBRACE:
		return p.parseBracketed()
	case LAMBDA:
		return p.parseAbstraction()
	}
	//
	p.unexpected(ATOM_START...)
	//
	return nil, false
}

func (p *Parser) parseAbstraction() (ast.Expr, bool) {
	var start = p.index
	//
	if !p.expect(LAMBDA) {
		return nil, false
	}
	// Parameters
	params := p.lookahead()
	//
	if !p.expect(IDENTIFIER) || !p.expect(DOT) {
		return nil, false
	}
	// Body
	body, ok := p.parseExpr()
	//
	if !ok || body == nil {
		return nil, ok
	}
	//
	expr := ast.NewAbstraction([]rune(p.string(params)), body)
	p.srcmap.Put(expr, p.spanOf(start, p.index-1))
	//
	return expr, true
}

// Parse a bracketed expression.  This does not produce a node of its own, as
// the enclosed expression is returned directly.
func (p *Parser) parseBracketed() (ast.Expr, bool) {
	var open = p.lookahead()
	//
	p.index++
	//
	expr, ok := p.parseExpr()
	//
	if !ok && p.aborted {
		return nil, false
	} else if !ok {
		// Recover from error.  An error already reported at the end of input
		// covers the missing bracket as well.
		if !p.synchronise() && !p.reportedAt(p.lookahead().Span) {
			p.unclosed(open)
		}
		//
		return nil, true
	} else if p.match(RBRACE) {
		return expr, true
	} else if p.lookahead().Kind == BINDING {
		p.unexpected()
		//
		if !p.synchronise() {
			p.unclosed(open)
		}
	} else {
		p.unclosed(open)
		p.synchronise()
	}
	//
	return nil, true
}

// Skip tokens up to and including the closing bracket which matches an
// already consumed opening bracket.  This returns false if the end of input
// is reached first.
func (p *Parser) synchronise() bool {
	var depth = 0
	//
	for {
		switch p.lookahead().Kind {
		case END_OF:
			return false
		case LBRACE:
			depth++
		case RBRACE:
			if depth == 0 {
				p.index++
				return true
			}
			//
			depth--
		}
		//
		p.index++
	}
}

// Check whether the most recently reported error is at a given span.
func (p *Parser) reportedAt(span source.Span) bool {
	return len(p.errors) > 0 && p.errors[len(p.errors)-1].Span() == span
}

// Enter a nested expression, checking the nesting limit.
func (p *Parser) enter() bool {
	p.depth++
	//
	if p.options.MaxDepth == 0 || p.depth <= p.options.MaxDepth {
		return true
	}
	//
	p.depth--
	//
	if !p.aborted {
		msg := fmt.Sprintf("expression nested too deeply (limit is %d)", p.options.MaxDepth)
		p.errors = append(p.errors, &CustomError{p.lookahead().Span, msg})
		p.aborted = true
	}
	//
	return false
}

func (p *Parser) leave() {
	p.depth--
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Slice(token.Span)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect reports an error if the next token is not what was expected, and
// otherwise consumes it.
func (p *Parser) expect(kind uint) bool {
	if p.lookahead().Kind != kind {
		p.unexpected(kind)
		return false
	}
	//
	p.index++
	//
	return true
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	//
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

// Report the lookahead as an unexpected token, given the kinds of token which
// would have been acceptable.  The reserved binding operator is reported
// specifically, since it is never acceptable within an expression.
func (p *Parser) unexpected(expected ...uint) {
	var (
		lookahead = p.lookahead()
		found     = util.None[Description]()
	)
	//
	if lookahead.Kind == BINDING {
		msg := "definitions using `:=` are not supported in expressions"
		p.errors = append(p.errors, &CustomError{lookahead.Span, msg})
		//
		return
	} else if lookahead.Kind != END_OF {
		found = util.Some(Describe(p.srcfile, lookahead))
	}
	//
	p.errors = append(p.errors, &UnexpectedToken{lookahead.Span, found, expectations(expected)})
}

// Report an unclosed delimiter, where the lookahead is the point at which the
// closing delimiter was expected.
func (p *Parser) unclosed(open lex.Token) {
	var (
		lookahead = p.lookahead()
		found     = util.None[Description]()
	)
	//
	if lookahead.Kind != END_OF {
		found = util.Some(Describe(p.srcfile, lookahead))
	}
	//
	p.errors = append(p.errors, &UnclosedDelimiter{open.Span, Describe(p.srcfile, open), lookahead.Span, found})
}

// Construct an ordered, duplicate free list of expected token descriptions.
func expectations(kinds []uint) []Description {
	kinds = slices.Clone(kinds)
	slices.Sort(kinds)
	kinds = slices.Compact(kinds)
	//
	descriptions := make([]Description, len(kinds))
	//
	for i, k := range kinds {
		descriptions[i] = Expect(k)
	}
	//
	return descriptions
}
