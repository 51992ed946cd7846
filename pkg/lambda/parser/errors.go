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
	"strings"

	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
)

// ParseError represents a syntax error arising from a given parse.  Every
// error is anchored at a primary span in the original text, which may be the
// end-of-input position.  The concrete types are UnclosedDelimiter,
// UnexpectedToken and CustomError.
type ParseError interface {
	error
	// Span returns the primary location of this error.
	Span() source.Span
}

// UnclosedDelimiter indicates an opening delimiter which was not matched by a
// closing delimiter, either because the input ended or because a token was
// encountered which could not continue the enclosed expression.
type UnclosedDelimiter struct {
	// Span of the opening delimiter
	Opening source.Span
	// The opening delimiter itself
	Delimiter Description
	// Span of the token where the closing delimiter was expected.
	Unmatched source.Span
	// Token found where the closing delimiter was expected (empty at end of
	// input).
	Found util.Option[Description]
}

// Span implementation for ParseError interface.
func (p *UnclosedDelimiter) Span() source.Span {
	return p.Unmatched
}

func (p *UnclosedDelimiter) Error() string {
	return fmt.Sprintf("unclosed delimiter %s", p.Delimiter.String())
}

// UnexpectedToken indicates that a token (or the end of input) occurred at a
// point where the grammar required one of a given set of tokens.
type UnexpectedToken struct {
	// Span of the offending token (or end of input).
	At source.Span
	// Token actually found, where empty indicates the end of input.
	Found util.Option[Description]
	// Tokens which would have been acceptable, ordered by kind.
	Expected []Description
}

// Span implementation for ParseError interface.
func (p *UnexpectedToken) Span() source.Span {
	return p.At
}

func (p *UnexpectedToken) Error() string {
	var (
		prefix   = "unexpected token in input"
		expected = "something else"
	)
	//
	if p.Found.IsEmpty() {
		prefix = "unexpected end of input"
	}
	//
	if len(p.Expected) > 0 {
		descriptions := make([]string, len(p.Expected))
		//
		for i, e := range p.Expected {
			descriptions[i] = e.String()
		}
		//
		expected = strings.Join(descriptions, ", ")
	}
	//
	return fmt.Sprintf("%s, expected %s", prefix, expected)
}

// CustomError is a syntax error specific to a particular grammar rule, whose
// message is reported verbatim.
type CustomError struct {
	At      source.Span
	Message string
}

// Span implementation for ParseError interface.
func (p *CustomError) Span() source.Span {
	return p.At
}

func (p *CustomError) Error() string {
	return p.Message
}
