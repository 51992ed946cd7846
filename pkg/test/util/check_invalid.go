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
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/source"
)

// CheckInvalid checks that a given source file fails to parse, producing
// exactly the errors listed in its expectation file (in order).
// nolint
func CheckInvalid(t *testing.T, test string) {
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, testFilename(test, SOURCE_EXT))
	expectations := readSourceFile(t, testFilename(test, ERRORS_EXT))
	// Parse source file to produce errors
	_, actual := parseSourceFile(srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(expectations, srcfile, extractExpectedError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("Error %s has no expected errors\n", expectations.Filename())
	}
	// Check file did not parse!
	checkExpectedErrors(t, srcfile, actual, expected)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual []parser.ParseError, expected []ExpectedError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have parsed\n", srcfile.Filename())
	} else {
		error := false
		// Construct initial message
		msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
		// Pad out with what received
		for i := 0; i < max(len(actual), len(expected)); i++ {
			if i < len(actual) && i < len(expected) {
				expected := expected[i]
				actual := actual[i]
				// Check whether message OK
				if expected.Message == actual.Error() && expected.Span == actual.Span() {
					continue
				}
			}
			// Indicate error arose
			error = true
			// actual
			if i < len(actual) {
				actual := actual[i]
				msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(srcfile, actual.Span(), actual.Error()))
			}
			// expected
			if i < len(expected) {
				expected := expected[i]
				msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(srcfile, expected.Span, expected.Message))
			}
		}
		//
		if error {
			t.Fatal(msg)
		}
	}
}

// Convert an error into a useful human readable string, using the same line
// and column numbering as expectation files.
func errorToString(srcfile *source.File, span source.Span, message string) string {
	var (
		line  = srcfile.FindFirstEnclosingLine(span)
		start = line.Column(span.Start())
		end   = line.Column(span.End())
	)
	//
	return fmt.Sprintf("%s:%d:%d-%d:%s", srcfile.Filename(), line.Number(), start, end, message)
}
