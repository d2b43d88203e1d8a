// Copyright 2026 The worddiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli provides the Cobra command for the worddiff tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plaintexthq/worddiff"
	"github.com/plaintexthq/worddiff/htmldiff"
)

// ErrDifferencesFound signals that the two inputs differ. It carries no message for the user,
// only the exit code.
var ErrDifferencesFound = errors.New("differences found")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the worddiff command.
func NewRootCommand(info BuildInfo, stdout io.Writer) *cobra.Command {
	var (
		literal     bool
		ignoreCase  bool
		format      string
		colorMode   string
		configPath  string
		limit       int
		hideAdded   bool
		hideRemoved bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "worddiff [flags] <base> <updated>",
		Short: "Compare two texts word by word",
		Long: `worddiff compares two texts word by word and shows which words were
removed and which were added.

The arguments are file paths, or literal text with --text. Output formats:

  plain  annotated text blocks marking removed ([-word]) and added ([+word]) words
  term   inline rendering with terminal colors
  html   inline HTML with styled <span> elements

The default format is term when stdout is a terminal and plain otherwise.
Exit code is 0 when the inputs match, 1 when they differ, 2 on errors.`,
		Args:          cobra.ExactArgs(2),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := renderSettings{
				literal:     literal,
				ignoreCase:  ignoreCase,
				format:      format,
				colorMode:   colorMode,
				configPath:  configPath,
				limit:       limit,
				hideAdded:   hideAdded,
				hideRemoved: hideRemoved,
			}
			return run(stdout, args[0], args[1], settings)
		},
	}

	cmd.Flags().BoolVar(&literal, "text", false, "treat arguments as literal text instead of file paths")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare words case-insensitively")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: plain, term, html")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize term output: auto, always, never")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML style configuration file")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum word-pair count to compare (0 = unlimited)")
	cmd.Flags().BoolVar(&hideAdded, "hide-added", false, "html: render added words without styling")
	cmd.Flags().BoolVar(&hideRemoved, "hide-removed", false, "html: render removed words without styling")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

type renderSettings struct {
	literal     bool
	ignoreCase  bool
	format      string
	colorMode   string
	configPath  string
	limit       int
	hideAdded   bool
	hideRemoved bool
}

func run(stdout io.Writer, base, updated string, settings renderSettings) error {
	var fileCfg *fileConfig
	if settings.configPath != "" {
		cfg, err := loadConfig(settings.configPath)
		if err != nil {
			return err
		}
		fileCfg = cfg
		logger.Debug("loaded style configuration", "path", settings.configPath)
	}

	baseText, updatedText := base, updated
	if !settings.literal {
		var err error
		if baseText, err = readInput(base); err != nil {
			return err
		}
		if updatedText, err = readInput(updated); err != nil {
			return err
		}
	}

	opts := fileCfg.compareOptions()
	if settings.ignoreCase {
		opts = append(opts, worddiff.IgnoreCase())
	}
	if settings.limit > 0 {
		opts = append(opts, worddiff.Limit(settings.limit))
	}

	res, err := worddiff.Compare(baseText, updatedText, opts...)
	if err != nil {
		return err
	}

	format := settings.format
	if format == "" {
		if stdoutIsTerminal() {
			format = "term"
		} else {
			format = "plain"
		}
	}

	var out string
	switch format {
	case "plain":
		s, err := worddiff.Annotate(baseText, updatedText, opts...)
		if err != nil {
			return err
		}
		out = s
	case "html":
		htmlOpts := append(opts, fileCfg.styleOptions()...)
		if settings.hideAdded {
			htmlOpts = append(htmlOpts, htmldiff.HideAdded())
		}
		if settings.hideRemoved {
			htmlOpts = append(htmlOpts, htmldiff.HideRemoved())
		}
		s, err := htmldiff.Render(baseText, updatedText, htmlOpts...)
		if err != nil {
			return err
		}
		out = s
	case "term":
		edits, err := worddiff.Edits(baseText, updatedText, opts...)
		if err != nil {
			return err
		}
		out = renderTerm(edits, colorEnabled(settings.colorMode))
	default:
		return fmt.Errorf("unknown format %q (want plain, term or html)", format)
	}

	fmt.Fprintln(stdout, out)

	if len(res.RemovedPositions) > 0 || len(res.AddedPositions) > 0 {
		return ErrDifferencesFound
	}
	return nil
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
