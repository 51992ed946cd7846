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
	"os"
	"testing"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the lambda test files (lam) and their corresponding expectations
// (err and out files) are found.
const TestDir = "../../testdata"

// SOURCE_EXT is the extension of files holding a lambda expression.
const SOURCE_EXT = "lam"

// ERRORS_EXT is the extension of files holding the errors expected when
// parsing the corresponding source file.
const ERRORS_EXT = "err"

// OUTPUT_EXT is the extension of files holding the canonical form expected when
// parsing the corresponding source file.
const OUTPUT_EXT = "out"

// Parse a given test file using the default options.
func parseSourceFile(srcfile *source.File) (ast.Expr, []parser.ParseError) {
	expr, _, errs := parser.ParseFile(srcfile, parser.Options{})
	//
	return expr, errs
}

// Determine the filename of a given test, with a given extension.
func testFilename(test, ext string) string {
	return fmt.Sprintf("%s/%s.%s", TestDir, test, ext)
}

// Read a source file, failing the test if it cannot be read.
func readSourceFile(t *testing.T, filename string) *source.File {
	// Read test file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Read an optional source file, returning nil if it does not exist.
func readOptionalSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	//
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		t.Fatal(err)
	}
	//
	return source.NewSourceFile(filename, bytes)
}
