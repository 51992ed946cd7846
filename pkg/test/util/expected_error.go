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
package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-lambda/pkg/util/source"
)

// ExpectedError identifies an error which parsing some source file should
// produce.
type ExpectedError struct {
	Span    source.Span
	Message string
}

// An expected error is given on a line of the form ";;error:L:S-E:msg", where
// L is the line, and S-E the (1-based, exclusive) columns of the span.  Columns
// count characters, and may extend one column past the end of the last line to
// identify the end of input.
func extractExpectedError(lineno int, lines []source.Line, srcfile *source.File) (bool, ExpectedError, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
	)
	//
	if strings.HasPrefix(contents, ";;error") {
		line, start, end, msg, err := parseExpectedErrorLine(contents)
		//
		if err == nil {
			span, err := determineFileSpan(line, start, end, srcfile.Lines())
			// Done
			return true, ExpectedError{span, msg}, err
		}
		//
		return true, ExpectedError{}, err
	}
	// No error
	return false, ExpectedError{}, nil
}

func parseExpectedErrorLine(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.Split(contents, ":")
	//
	if len(splits) < 4 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"", contents)
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (%s)", splits[1], splits[2], err.Error())
	} else if line == 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (lines numbered from 1)", splits[1], splits[2])
	}
	// Parse split
	if start, end, err = parseExpectedErrorSpan(splits[2]); err != nil {
		return 0, 0, 0, "", err
	}
	//
	msg = strings.Join(splits[3:], ":")
	//
	return line, start, end, msg, nil
}

func parseExpectedErrorSpan(span string) (start, end int, err error) {
	var splits = strings.Split(span, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (ends before it starts)", span)
	}
	//
	return start, end, err
}

// Determine the span of the source file that a given line and pair of columns
// corresponds to.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	// Sanity checks
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	var (
		line  = lines[lineno-1]
		width = utf8.RuneCountInString(line.String())
		last  = lineno == len(lines)
	)
	// Only the end of input lies beyond the end of a line.
	if start > width+1 || (start > width && !last) || end > width+2 {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows line)", lineno, start, end)
	}
	//
	return source.NewSpan(columnOffset(line, start), columnOffset(line, end)), nil
}

// Convert a (1-based) column on a given line into a byte offset, where columns
// beyond the end of the line count one byte each.
func columnOffset(line source.Line, column int) int {
	var (
		text   = line.String()
		offset = 0
	)
	//
	for col := 1; col < column; col++ {
		if offset < len(text) {
			_, n := utf8.DecodeRuneInString(text[offset:])
			offset += n
		} else {
			offset++
		}
	}
	//
	return line.Start() + offset
}
