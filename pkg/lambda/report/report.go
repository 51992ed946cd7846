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
package report

import (
	"fmt"

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/source"
)

// Severity indicates the severity level of a report.  Syntax errors are the
// only reports produced, hence there is a single level.
type Severity uint8

// ERROR indicates a report which prevents the input from being accepted.
const ERROR Severity = 0

func (s Severity) String() string {
	if s == ERROR {
		return "error"
	}
	//
	return "unknown"
}

// Emphasis determines how strongly a label is highlighted.
type Emphasis uint8

const (
	// PRIMARY marks the location at which a failure occurred.
	PRIMARY Emphasis = iota
	// SECONDARY marks a location providing context for a failure.
	SECONDARY
)

// Label attaches a piece of text to a given span of the original source.
type Label struct {
	Span     source.Span
	Text     string
	Emphasis Emphasis
}

// Report is the structured form of a diagnostic, consisting of a one-line
// summary and zero or more labelled spans.  Reports are independent of any
// particular rendering, so can be consumed programmatically.
type Report struct {
	Severity Severity
	Message  string
	Labels   []Label
}

// Primary returns the first primary label of this report, if there is one.
func (p *Report) Primary() (Label, bool) {
	for _, l := range p.Labels {
		if l.Emphasis == PRIMARY {
			return l, true
		}
	}
	//
	return Label{}, false
}

// FromError constructs a report for a given syntax error.
func FromError(err parser.ParseError) Report {
	switch err := err.(type) {
	case *parser.UnclosedDelimiter:
		return Report{ERROR, err.Error(), []Label{
			{err.Opening, fmt.Sprintf("unclosed delimiter %s", err.Delimiter), SECONDARY},
			{err.Unmatched, fmt.Sprintf("must be closed before this %s", parser.FoundString(err.Found)), PRIMARY},
		}}
	case *parser.UnexpectedToken:
		return Report{ERROR, err.Error(), []Label{
			{err.At, fmt.Sprintf("unexpected token %s", parser.FoundString(err.Found)), PRIMARY},
		}}
	case *parser.CustomError:
		return Report{ERROR, err.Message, []Label{
			{err.At, err.Message, PRIMARY},
		}}
	default:
		panic(fmt.Sprintf("unknown syntax error encountered (%T)", err))
	}
}

// FromErrors constructs reports for a given set of syntax errors, preserving
// their order.
func FromErrors(errs []parser.ParseError) []Report {
	reports := make([]Report, len(errs))
	//
	for i, err := range errs {
		reports[i] = FromError(err)
	}
	//
	return reports
}
