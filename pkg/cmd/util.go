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
	"io"
	"os"

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/lambda/report"
	"github.com/consensys/go-lambda/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SUCCESS is the exit code when all input was accepted.
const SUCCESS = 0

// FAILURE is the exit code when input could not be read, or the command was
// used incorrectly.
const FAILURE = 2

// SYNTAX_ERRORS is the exit code when one or more syntax errors were reported.
const SYNTAX_ERRORS = 4

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(FAILURE)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(FAILURE)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(FAILURE)
	}
	//
	return r
}

// Configure logging and read the configuration for a given command, exiting
// if the configuration is invalid.
func configure(cmd *cobra.Command) Config {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	config, err := readConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(FAILURE)
	}
	//
	log.Debugf("colour %s, maximum depth %d", config.Diagnostics.Colour, config.Parser.MaxDepth)
	//
	return config
}

// Read the input for a command, which is either the text given by the "expr"
// flag, the given files, or standard input (when neither is given).  This exits
// if any input cannot be read.
func readInputs(cmd *cobra.Command, args []string) []source.File {
	var expr = GetString(cmd, "expr")
	//
	if cmd.Flags().Changed("expr") && len(args) > 0 {
		fmt.Fprintln(os.Stderr, "cannot give both an expression and input files")
		fmt.Println(cmd.UsageString())
		os.Exit(FAILURE)
	} else if cmd.Flags().Changed("expr") {
		return []source.File{*source.NewSourceFile("<expr>", []byte(expr))}
	} else if len(args) == 0 {
		bytes, err := io.ReadAll(os.Stdin)
		//
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading standard input: %s\n", err)
			os.Exit(FAILURE)
		}
		//
		return []source.File{*source.NewSourceFile("<stdin>", bytes)}
	}
	//
	srcfiles, err := source.ReadFiles(args...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(FAILURE)
	}
	//
	for _, f := range srcfiles {
		log.Debugf("read %s (%d bytes)", f.Filename(), f.Length())
	}
	//
	return srcfiles
}

// Print one or more syntax errors arising from a given source file to stderr.
func printSyntaxErrors(srcfile *source.File, errs []parser.ParseError, config Config) {
	renderer := report.NewRenderer(os.Stderr, config.UseColour(os.Stderr))
	//
	log.Debugf("%d syntax error(s) in %s", len(errs), srcfile.Filename())
	//
	if err := renderer.RenderAll(report.FromErrors(errs), srcfile); err != nil {
		log.Errorf("writing diagnostics: %s", err)
	}
}
