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
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/consensys/go-lambda/pkg/util/termio"
)

// Render a given syntax error against the text from which it arose, producing
// plain (i.e. uncoloured) output.
func Render(err parser.ParseError, text string) string {
	var (
		builder  strings.Builder
		srcfile  = source.NewSourceFile("", []byte(text))
		renderer = NewRenderer(&builder, false)
	)
	// Writing to a builder cannot fail
	_ = renderer.Render(FromError(err), srcfile)
	//
	return builder.String()
}

// Renderer writes reports in a human readable form, showing each labelled line
// of the source file with the labelled spans underlined beneath it.  For
// example:
//
//	error: unclosed delimiter `(`
//	 --> input:1:3
//	  |
//	1 | (a
//	  | - unclosed delimiter `(`
//	  |   ^ must be closed before this end of file
type Renderer struct {
	writer io.Writer
	// Colour determines whether or not ANSI escapes are used.
	Colour bool
}

// NewRenderer constructs a renderer which writes to a given writer.
func NewRenderer(writer io.Writer, colour bool) *Renderer {
	return &Renderer{writer, colour}
}

// A label resolved against its enclosing line.
type located struct {
	label  Label
	line   source.Line
	column int
	width  int
}

// RenderAll writes a sequence of reports, one after the other, separated by a
// blank line.
func (r *Renderer) RenderAll(reports []Report, srcfile *source.File) error {
	for i, report := range reports {
		if i != 0 {
			if _, err := io.WriteString(r.writer, "\n"); err != nil {
				return err
			}
		}
		//
		if err := r.Render(report, srcfile); err != nil {
			return err
		}
	}
	//
	return nil
}

// Render writes a given report against the source file it refers to.
func (r *Renderer) Render(report Report, srcfile *source.File) error {
	var (
		builder strings.Builder
		labels  = locate(report.Labels, srcfile)
		gutter  = 1
	)
	// Header
	builder.WriteString(r.severity(report.Severity))
	builder.WriteString(r.bold(": " + report.Message))
	builder.WriteString("\n")
	//
	if len(labels) == 0 {
		_, err := io.WriteString(r.writer, builder.String())
		return err
	}
	// Determine width of line numbers
	for _, l := range labels {
		gutter = max(gutter, len(strconv.Itoa(l.line.Number())))
	}
	// Location
	primary, ok := report.Primary()
	if !ok {
		primary = report.Labels[0]
	}
	//
	filename := srcfile.Filename()
	if filename == "" {
		filename = "input"
	}
	//
	line, column := srcfile.Position(primary.Span.Start())
	fmt.Fprintf(&builder, "%s%s %s:%d:%d\n", strings.Repeat(" ", gutter), r.gutter("-->"), filename, line, column)
	builder.WriteString(r.margin(gutter, ""))
	builder.WriteString("\n")
	// Lines
	for i, l := range labels {
		if i == 0 || labels[i-1].line.Number() != l.line.Number() {
			text := printable(l.line.String())
			builder.WriteString(r.margin(gutter, strconv.Itoa(l.line.Number())))
			builder.WriteString(" ")
			builder.WriteString(text)
			builder.WriteString("\n")
		}
		//
		builder.WriteString(r.margin(gutter, ""))
		builder.WriteString(" ")
		builder.WriteString(strings.Repeat(" ", l.column-1))
		builder.WriteString(r.underline(l))
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(r.writer, builder.String())
	//
	return err
}

// Resolve each label against the line enclosing it, ordering them by line and
// then by column.
func locate(labels []Label, srcfile *source.File) []located {
	items := make([]located, len(labels))
	//
	for i, l := range labels {
		line := srcfile.FindFirstEnclosingLine(l.Span)
		items[i] = located{l, line, line.Column(l.Span.Start()), line.Width(l.Span)}
	}
	//
	slices.SortStableFunc(items, func(a, b located) int {
		if c := cmp.Compare(a.line.Number(), b.line.Number()); c != 0 {
			return c
		}
		//
		return cmp.Compare(a.column, b.column)
	})
	//
	return items
}

func (r *Renderer) margin(width int, number string) string {
	padding := strings.Repeat(" ", width-len(number))
	//
	return number + padding + " " + r.gutter("|")
}

func (r *Renderer) underline(l located) string {
	var (
		mark   = "^"
		colour = termio.TERM_RED
	)
	//
	if l.label.Emphasis == SECONDARY {
		mark, colour = "-", termio.TERM_YELLOW
	}
	//
	text := strings.Repeat(mark, l.width) + " " + l.label.Text
	//
	if r.Colour {
		return termio.NewAnsiEscape().FgColour(colour).Wrap(text)
	}
	//
	return text
}

func (r *Renderer) severity(s Severity) string {
	if !r.Colour {
		return s.String()
	}
	//
	return termio.BoldAnsiEscape().FgColour(termio.TERM_RED).Wrap(s.String())
}

func (r *Renderer) bold(text string) string {
	if r.Colour {
		return termio.BoldAnsiEscape().Wrap(text)
	}
	//
	return text
}

func (r *Renderer) gutter(text string) string {
	if r.Colour {
		return termio.NewAnsiEscape().FgColour(termio.TERM_BLUE).Wrap(text)
	}
	//
	return text
}

// Make a line of source text safe to print beneath a gutter.  Tabs become
// single spaces, and each byte which is not valid UTF-8 becomes '?', such that
// every column occupies exactly one character.
func printable(text string) string {
	var builder strings.Builder
	//
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		//
		switch {
		case r == utf8.RuneError && n == 1:
			builder.WriteByte('?')
		case r == '\t':
			builder.WriteByte(' ')
		default:
			builder.WriteString(text[i : i+n])
		}
		//
		i += n
	}
	//
	return builder.String()
}
