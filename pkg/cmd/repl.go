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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-lambda/pkg/lambda/ast"
	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/source"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// HISTORY_FILE is the file (within the user's home directory) in which the
// history of an interactive session is kept.
const HISTORY_FILE = ".lambda_history"

const (
	promptMain = "λ> "
	promptCont = ".. "
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse lambda expressions.",
	Long: `Start an interactive session in which each expression entered is parsed
	and printed in its canonical form.  An expression with unclosed brackets
	(or which otherwise ends too early) continues onto the next line, until a
	blank line is entered.  Type :debug to toggle printing the tree structure,
	or :quit to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := configure(cmd)
		repl := newRepl(config)
		//
		repl.run()
	},
}

type repl struct {
	config  Config
	state   *liner.State
	history string
	debug   bool
}

func newRepl(config Config) *repl {
	var history string
	//
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, HISTORY_FILE)
	}
	//
	return &repl{config: config, history: history}
}

func (p *repl) run() {
	p.state = liner.NewLiner()
	defer p.state.Close()
	//
	p.state.SetCtrlCAborts(true)
	p.readHistory()
	//
	defer p.writeHistory()
	//
	for {
		text, ok := p.read()
		//
		if !ok {
			fmt.Println()
			return
		}
		//
		switch strings.TrimSpace(text) {
		case "":
			continue
		case ":quit":
			return
		case ":debug":
			p.debug = !p.debug
			//
			if p.debug {
				fmt.Println("debug output on")
			} else {
				fmt.Println("debug output off")
			}
		default:
			p.eval(text)
		}
		//
		p.state.AppendHistory(strings.ReplaceAll(text, "\n", " "))
	}
}

// Read an expression, which may span multiple lines.  This returns false when
// the session is ended (e.g. by end of input or Ctrl-C).
func (p *repl) read() (string, bool) {
	var builder strings.Builder
	//
	for {
		prompt := promptMain
		if builder.Len() > 0 {
			prompt = promptCont
		}
		//
		line, err := p.state.Prompt(prompt)
		//
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		} else if err != nil {
			log.Errorf("reading input: %s", err)
			return "", false
		} else if builder.Len() > 0 && strings.TrimSpace(line) == "" {
			// Blank line forces evaluation
			return builder.String(), true
		}
		//
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		//
		builder.WriteString(line)
		text := builder.String()
		//
		if strings.HasPrefix(strings.TrimSpace(text), ":") {
			return text, true
		}
		//
		srcfile := source.NewSourceFile("<repl>", []byte(text))
		//
		if _, _, errs := parser.ParseFile(srcfile, p.config.ParserOptions()); !incomplete(text, errs) {
			return text, true
		}
	}
}

func (p *repl) eval(text string) {
	srcfile := source.NewSourceFile("<repl>", []byte(text))
	//
	expr, _, errs := parser.ParseFile(srcfile, p.config.ParserOptions())
	//
	if len(errs) > 0 {
		printSyntaxErrors(srcfile, errs, p.config)
	} else if p.debug {
		fmt.Print(ast.Debug(expr))
	} else {
		fmt.Println(ast.String(expr))
	}
}

func (p *repl) readHistory() {
	if p.history == "" {
		return
	} else if f, err := os.Open(p.history); err == nil {
		if _, err := p.state.ReadHistory(f); err != nil {
			log.Debugf("reading history: %s", err)
		}
		//
		_ = f.Close()
	}
}

func (p *repl) writeHistory() {
	if p.history == "" {
		return
	} else if f, err := os.Create(p.history); err == nil {
		if _, err := p.state.WriteHistory(f); err != nil {
			log.Debugf("writing history: %s", err)
		}
		//
		_ = f.Close()
	}
}

// Determine whether some input failed to parse only because it ended too early,
// in which case more input may complete it.  Blank input is never incomplete.
func incomplete(text string, errs []parser.ParseError) bool {
	if len(errs) == 0 || strings.TrimSpace(text) == "" {
		return false
	}
	//
	for _, err := range errs {
		switch e := err.(type) {
		case *parser.UnclosedDelimiter:
			if e.Found.HasValue() {
				return false
			}
		case *parser.UnexpectedToken:
			if e.Found.HasValue() {
				return false
			}
		default:
			return false
		}
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(replCmd)
}
