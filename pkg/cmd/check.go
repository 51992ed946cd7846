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
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util"
	"github.com/consensys/go-lambda/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "Check lambda expressions for syntax errors.",
	Long: `Check that one or more files each hold a well-formed lambda expression.
	Files are parsed concurrently, though errors are always reported in the
	order the files were given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(FAILURE)
		}
		//
		config := configure(cmd)
		jobs := GetUint(cmd, "jobs")
		stats := util.NewPerfStats()
		//
		results, err := CheckFiles(context.Background(), args, config.ParserOptions(), jobs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(FAILURE)
		}
		//
		failures := 0
		//
		for _, r := range results {
			if len(r.Errors) > 0 {
				printSyntaxErrors(r.File, r.Errors, config)
				failures++
			}
		}
		//
		stats.Log(fmt.Sprintf("Checking %d file(s)", len(results)))
		log.Debugf("%d file(s) failed", failures)
		//
		if failures > 0 {
			os.Exit(SYNTAX_ERRORS)
		}
	},
}

// CheckResult holds the outcome of checking a single file.
type CheckResult struct {
	File   *source.File
	Errors []parser.ParseError
}

// CheckFiles reads and parses a given set of files concurrently, using at most
// jobs goroutines (or one per CPU when jobs is zero).  Results are returned in
// the order the files were given.  An error is returned only if some file
// could not be read, in which case the remaining work is abandoned.
func CheckFiles(ctx context.Context, filenames []string, options parser.Options, jobs uint) ([]CheckResult, error) {
	var (
		results = make([]CheckResult, len(filenames))
		g, gctx = errgroup.WithContext(ctx)
	)
	//
	if jobs == 0 {
		jobs = uint(runtime.NumCPU())
	}
	//
	g.SetLimit(int(jobs))
	//
	for i, filename := range filenames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			srcfiles, err := source.ReadFiles(filename)
			if err != nil {
				return err
			}
			//
			srcfile := &srcfiles[0]
			_, _, errs := parser.ParseFile(srcfile, options)
			results[i] = CheckResult{srcfile, errs}
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().UintP("jobs", "j", 0, "number of files to check in parallel (0 means one per CPU)")
}
