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
	"unicode/utf8"

	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/consensys/go-lambda/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LAMBDA signals "λ"
const LAMBDA uint = 2

// DOT signals "."
const DOT uint = 3

// BINDING signals ":=", which is reserved for definitions.
const BINDING uint = 4

// LBRACE signals "("
const LBRACE uint = 5

// RBRACE signals ")"
const RBRACE uint = 6

// IDENTIFIER signals a name made up of one or more letters
const IDENTIFIER uint = 7

// INVALID signals a character which cannot begin any token
const INVALID uint = 8

// Description identifies a token for the purposes of reporting.  When Text is
// empty, the description refers to the category of tokens as a whole (e.g.
// "identifier") rather than to a specific occurrence.
type Description struct {
	Kind uint
	Text string
}

// Expect constructs a description of a given kind of token, as used to
// describe what was expected at some point of a parse.
func Expect(kind uint) Description {
	return Description{kind, ""}
}

// Describe constructs a description of a specific token occurring in a given
// source file.
func Describe(srcfile *source.File, token lex.Token) Description {
	return Description{token.Kind, srcfile.Slice(token.Span)}
}

// String returns the canonical display text for a token.  This is used both for
// tokens actually found, and for those which were expected.
func (d Description) String() string {
	switch d.Kind {
	case END_OF:
		return "end of input"
	case WHITESPACE:
		return "whitespace"
	case LAMBDA:
		return "`λ`"
	case DOT:
		return "`.`"
	case BINDING:
		return "`:=`"
	case LBRACE:
		return "`(`"
	case RBRACE:
		return "`)`"
	case IDENTIFIER:
		if d.Text == "" {
			return "identifier"
		}
		//
		return fmt.Sprintf("`%s`", d.Text)
	case INVALID:
		if d.Text == "" {
			return "invalid character"
		} else if !utf8.ValidString(d.Text) {
			return fmt.Sprintf("byte 0x%02x", d.Text[0])
		}
		//
		return fmt.Sprintf("`%s`", d.Text)
	default:
		panic(fmt.Sprintf("unknown token kind (%d)", d.Kind))
	}
}

// FoundString returns the display text for a token which was found at some
// position, where an empty option indicates the end of the file was reached.
func FoundString(found util.Option[Description]) string {
	if found.HasValue() {
		return found.Unwrap().String()
	}
	//
	return "end of file"
}
