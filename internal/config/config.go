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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// worddiff.Option.
package config

// Style collects the presentation parameters for one kind of change (added or removed tokens).
type Style struct {
	// Highlight enables a background-color declaration using Color.
	Highlight bool

	// Color is the highlight color. It is inserted into the style attribute verbatim, without
	// validation.
	Color string

	// Class is the value of the class attribute. Rendering filters it down to alphanumerics,
	// hyphens, underscores and spaces.
	Class string

	// LineThrough enables a text-decoration: line-through declaration.
	LineThrough bool
}

// Config collects all configurable parameters for comparison and rendering functions in this
// module.
type Config struct {
	// Compare tokens case-insensitively. Token text is always reported with its original casing.
	IgnoreCase bool

	// Limit is the maximum number of cells (len(base tokens) × len(updated tokens)) the alignment
	// table may have. Zero means no limit.
	Limit int

	// Presentation of added and removed tokens in markup output.
	Added, Removed Style

	// If false, added/removed tokens are rendered as bare text instead of styled elements. The
	// token text is always rendered.
	ShowAdded, ShowRemoved bool
}

// Default is the default configuration.
var Default = Config{
	IgnoreCase: false,
	Limit:      0,
	Added: Style{
		Highlight:   true,
		Color:       "#d4fcbc",
		Class:       "diff-added",
		LineThrough: false,
	},
	Removed: Style{
		Highlight:   true,
		Color:       "#fbb6c2",
		Class:       "diff-removed",
		LineThrough: true,
	},
	ShowAdded:   true,
	ShowRemoved: true,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	IgnoreCase Flag = 1 << iota
	Limit
	AddedStyle
	RemovedStyle
	ShowAdded
	ShowRemoved
)

// Styles are the flags accepted only by the markup renderer.
const Styles = AddedStyle | RemovedStyle | ShowAdded | ShowRemoved

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreCase:
		return "worddiff.IgnoreCase"
	case Limit:
		return "worddiff.Limit"
	case AddedStyle:
		return "htmldiff.Added"
	case RemovedStyle:
		return "htmldiff.Removed"
	case ShowAdded:
		return "htmldiff.HideAdded"
	case ShowRemoved:
		return "htmldiff.HideRemoved"
	default:
		panic("never reached")
	}
}
