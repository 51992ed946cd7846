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
	"github.com/consensys/go-lambda/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting expectations from the
// lines of an expectation file.  Given the index of a line (and all lines),
// this determines whether the line matches and, if so, produces an item
// relative to the source file under test.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts all matching attributes from an expectation file.
// Lines which match no attribute are ignored.
func ExtractAttributes[T any](expectations *source.File, srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines  = expectations.Lines()
		items  []T
		errors []error
	)
	//
	for i := range lines {
		for _, attribute := range attributes {
			matched, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if matched {
				items = append(items, item)
			}
			//
			if matched {
				break
			}
		}
	}
	//
	return items, errors
}
