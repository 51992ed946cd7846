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
	"strings"
	"testing"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/lambda/parser"
)

// CheckValid checks that a given source file parses without error.  If an
// output file is present, the canonical form of the expression must match its
// contents.  In all cases, the canonical form must itself parse to the same
// expression.
// nolint
func CheckValid(t *testing.T, test string) {
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, testFilename(test, SOURCE_EXT))
	//
	expr, errs := parseSourceFile(srcfile)
	//
	if len(errs) > 0 {
		for _, err := range errs {
			t.Error(errorToString(srcfile, err.Span(), err.Error()))
		}
		//
		t.FailNow()
	}
	// Check canonical form (if applicable)
	canonical := ast.String(expr)
	//
	if output := readOptionalSourceFile(t, testFilename(test, OUTPUT_EXT)); output != nil {
		if expected := strings.TrimSpace(output.Text()); expected != canonical {
			t.Fatalf("Error %s printed as \"%s\", expected \"%s\"", srcfile.Filename(), canonical, expected)
		}
	}
	// Check canonical form round trips
	if reparsed, errs := parser.Parse(canonical); len(errs) > 0 {
		t.Fatalf("Error %s canonical form \"%s\" does not parse: %s", srcfile.Filename(), canonical, errs[0].Error())
	} else if !ast.Equal(expr, reparsed) {
		t.Fatalf("Error %s canonical form \"%s\" parses differently", srcfile.Filename(), canonical)
	}
}
