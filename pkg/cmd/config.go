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
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-lambda/pkg/lambda/parser"
	"github.com/consensys/go-lambda/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CONFIG_FILE is the configuration file read from the working directory, when
// no other has been given.
const CONFIG_FILE = "lambda.toml"

// COLOUR_AUTO indicates colour is used only when writing to a terminal.
const COLOUR_AUTO = "auto"

// COLOUR_ALWAYS indicates colour is always used.
const COLOUR_ALWAYS = "always"

// COLOUR_NEVER indicates colour is never used.
const COLOUR_NEVER = "never"

// Config captures the settings which can be given in a configuration file.
// For example:
//
//	[diagnostics]
//	colour = "never"
//
//	[parser]
//	max_depth = 1000
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Parser      ParserConfig      `toml:"parser"`
}

// DiagnosticsConfig determines how syntax errors are reported.
type DiagnosticsConfig struct {
	// One of "auto", "always" or "never".
	Colour string `toml:"colour"`
}

// ParserConfig determines how input is parsed.
type ParserConfig struct {
	// Maximum nesting depth, where zero means no limit.
	MaxDepth uint `toml:"max_depth"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Colour: COLOUR_AUTO},
		Parser:      ParserConfig{MaxDepth: 0},
	}
}

// LoadConfig reads a configuration file, filling in defaults for anything it
// does not mention.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	//
	md, err := toml.DecodeFile(filename, &config)
	if err != nil {
		return config, fmt.Errorf("reading %s: %w", filename, err)
	}
	//
	for _, key := range md.Undecoded() {
		log.Warnf("ignoring unknown configuration key \"%s\" in %s", key.String(), filename)
	}
	//
	return config, config.Validate()
}

// Validate checks the configuration makes sense.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Diagnostics.Colour) {
	case COLOUR_AUTO, COLOUR_ALWAYS, COLOUR_NEVER:
		return nil
	default:
		return fmt.Errorf("invalid colour setting \"%s\" (expected auto, always or never)", c.Diagnostics.Colour)
	}
}

// UseColour determines whether diagnostics written to a given file should be
// coloured.
func (c *Config) UseColour(file *os.File) bool {
	switch strings.ToLower(c.Diagnostics.Colour) {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return termio.IsTerminal(file)
	}
}

// ParserOptions returns the options to be used when parsing.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{MaxDepth: c.Parser.MaxDepth}
}

// Determine the configuration for a given command.  An explicitly given
// configuration file must exist, whilst the default file is optional.  Flags
// given on the command line override anything from a file.
func readConfig(cmd *cobra.Command) (Config, error) {
	var (
		config   = DefaultConfig()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		config, err = LoadConfig(filename)
	} else if _, serr := os.Stat(CONFIG_FILE); serr == nil {
		config, err = LoadConfig(CONFIG_FILE)
	} else if !errors.Is(serr, fs.ErrNotExist) {
		err = serr
	}
	//
	if err != nil {
		return config, err
	}
	// Apply overrides
	if cmd.Flags().Changed("colour") {
		config.Diagnostics.Colour = GetString(cmd, "colour")
	}
	//
	if cmd.Flags().Changed("max-depth") {
		config.Parser.MaxDepth = GetUint(cmd, "max-depth")
	}
	//
	return config, config.Validate()
}
