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

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// lexCmd represents the lex command
var lexCmd = &cobra.Command{
	Use:   "lex [flags] [file...]",
	Short: "Print the tokens of lambda expressions.",
	Long: `Split one or more lambda expressions into tokens, printing the span and
	description of each (excluding whitespace).  Lexing never fails, since any
	unrecognised character is reported as an invalid token.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		//
		srcfiles := readInputs(cmd, args)
		//
		for i := range srcfiles {
			srcfile := &srcfiles[i]
			tokens := parser.Lex(srcfile)
			//
			log.Debugf("lexed %d tokens from %s", len(tokens), srcfile.Filename())
			//
			if len(srcfiles) > 1 {
				fmt.Printf("%s:\n", srcfile.Filename())
			}
			//
			for _, token := range tokens {
				fmt.Printf("%s\t%s\n", token.Span, parser.Describe(srcfile, token))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringP("expr", "e", "", "lex a given expression rather than files")
}
