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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file...]",
	Short: "Parse lambda expressions.",
	Long: `Parse one or more lambda expressions, printing each in its canonical form.
	Each file holds exactly one expression.  When no files are given, the
	expression is read from standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			config   = configure(cmd)
			debugAst = GetFlag(cmd, "debug-ast")
			srcfiles = readInputs(cmd, args)
			failed   = false
		)
		//
		for i := range srcfiles {
			srcfile := &srcfiles[i]
			stats := util.NewPerfStats()
			expr, srcmap, errs := parser.ParseFile(srcfile, config.ParserOptions())
			//
			stats.Log(fmt.Sprintf("Parsing %s", srcfile.Filename()))
			//
			if len(errs) > 0 {
				printSyntaxErrors(srcfile, errs, config)
				failed = true
				//
				continue
			}
			//
			log.Debugf("parsed %s into %d nodes", srcfile.Filename(), srcmap.Size())
			//
			if debugAst {
				fmt.Print(ast.Debug(expr))
			} else {
				fmt.Println(ast.String(expr))
			}
		}
		//
		if failed {
			os.Exit(SYNTAX_ERRORS)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("expr", "e", "", "parse a given expression rather than files")
	parseCmd.Flags().Bool("debug-ast", false, "print the tree structure of each expression")
}
