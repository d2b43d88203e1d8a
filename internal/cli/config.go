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

package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plaintexthq/worddiff"
	"github.com/plaintexthq/worddiff/htmldiff"
)

// fileConfig is the YAML style configuration. All fields are optional; absent fields keep the
// library defaults, which is why everything is a pointer.
type fileConfig struct {
	IgnoreCase  *bool        `yaml:"ignore_case"`
	ShowAdded   *bool        `yaml:"show_added"`
	ShowRemoved *bool        `yaml:"show_removed"`
	Added       *styleConfig `yaml:"added"`
	Removed     *styleConfig `yaml:"removed"`
}

type styleConfig struct {
	Highlight   *bool   `yaml:"highlight"`
	Color       *string `yaml:"color"`
	Class       *string `yaml:"class"`
	LineThrough *bool   `yaml:"line_through"`
}

// loadConfig reads and parses a YAML style configuration. Unknown keys are rejected to catch
// typos.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*fileConfig, error) {
	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// compareOptions returns the options that affect the comparison itself. Safe on a nil receiver.
func (c *fileConfig) compareOptions() []worddiff.Option {
	var opts []worddiff.Option
	if c == nil {
		return opts
	}
	if c.IgnoreCase != nil && *c.IgnoreCase {
		opts = append(opts, worddiff.IgnoreCase())
	}
	return opts
}

// styleOptions returns the options that affect HTML rendering. Safe on a nil receiver.
func (c *fileConfig) styleOptions() []worddiff.Option {
	var opts []worddiff.Option
	if c == nil {
		return opts
	}
	if so := c.Added.overrides(); len(so) > 0 {
		opts = append(opts, htmldiff.Added(so...))
	}
	if so := c.Removed.overrides(); len(so) > 0 {
		opts = append(opts, htmldiff.Removed(so...))
	}
	if c.ShowAdded != nil && !*c.ShowAdded {
		opts = append(opts, htmldiff.HideAdded())
	}
	if c.ShowRemoved != nil && !*c.ShowRemoved {
		opts = append(opts, htmldiff.HideRemoved())
	}
	return opts
}

// overrides converts the per-kind block into style options, one per present field. Safe on a nil
// receiver.
func (s *styleConfig) overrides() []htmldiff.StyleOption {
	var opts []htmldiff.StyleOption
	if s == nil {
		return opts
	}
	if s.Highlight != nil {
		opts = append(opts, htmldiff.Highlight(*s.Highlight))
	}
	if s.Color != nil {
		opts = append(opts, htmldiff.Color(*s.Color))
	}
	if s.Class != nil {
		opts = append(opts, htmldiff.Class(*s.Class))
	}
	if s.LineThrough != nil {
		opts = append(opts, htmldiff.LineThrough(*s.LineThrough))
	}
	return opts
}
