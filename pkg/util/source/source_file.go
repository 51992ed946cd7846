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
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", n, err)
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []byte
	// Span within original text of this line (excluding the newline).
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.  A trailing carriage return is not
// considered part of the line.
func (p *Line) String() string {
	bytes := p.text[p.span.start:p.span.end]
	// Convert into string
	return strings.TrimSuffix(string(bytes), "\r")
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting byte offset of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// End returns the byte offset one past the last character of this line.
func (p *Line) End() int {
	return p.span.end
}

// Length returns the number of bytes in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Column converts a byte offset into a 1-based column on this line, counting
// characters rather than bytes.  Offsets beyond the end of the line (e.g. the
// end-of-input position) count one column per byte past the end.
func (p *Line) Column(offset int) int {
	var (
		clamped = max(p.span.start, min(offset, p.span.end))
		column  = 1 + utf8.RuneCount(p.text[p.span.start:clamped])
	)
	// Account for anything past the end
	if offset > p.span.end {
		column += offset - p.span.end
	}
	//
	return column
}

// Width determines the number of columns occupied by a given span when
// displayed on this line.  The span is clipped to the line, though a span
// positioned at (or beyond) the end of the line always occupies at least one
// column so that it remains visible.
func (p *Line) Width(span Span) int {
	start := max(span.start, p.span.start)
	end := min(span.end, p.span.end)
	//
	if start >= end {
		return 1
	}
	//
	return p.Column(end) - p.Column(start)
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []byte
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, bytes}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []byte {
	return s.contents
}

// Text returns the contents of this source file as a string.
func (s *File) Text() string {
	return string(s.contents)
}

// Length returns the number of bytes in this source file.
func (s *File) Length() int {
	return len(s.contents)
}

// Slice returns the text covered by a given span, clipped to the bounds of
// the file.
func (s *File) Slice(span Span) string {
	start := min(span.start, len(s.contents))
	end := min(span.end, len(s.contents))
	//
	return string(s.contents[start:end])
}

// FindFirstEnclosingLine determines the first line  in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	// Index identifies the current position within the original text.
	index := span.start
	// Num records the line number, counting from 1.
	num := 1
	// Start records the starting offset of the current line.
	start := 0
	// Find the line.
	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// Lines splits this source file into its physical lines.  A file always has at
// least one line, even when empty.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
	)
	//
	for i, b := range s.contents {
		if b == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	//
	return append(lines, Line{s.contents, Span{start, len(s.contents)}, len(lines) + 1})
}

// Position returns the 1-based line and column of a given byte offset.
func (s *File) Position(offset int) (int, int) {
	line := s.FindFirstEnclosingLine(NewSpan(offset, offset))
	return line.Number(), line.Column(offset)
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []byte) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
