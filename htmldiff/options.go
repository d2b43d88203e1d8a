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

package htmldiff

import (
	"github.com/plaintexthq/worddiff"
	"github.com/plaintexthq/worddiff/internal/config"
)

// A StyleOption overrides a single presentation parameter of added or removed tokens. Parameters
// that are not overridden keep that kind's own default.
type StyleOption func(*config.Style)

// Highlight controls whether the token gets a background color.
func Highlight(on bool) StyleOption {
	return func(s *config.Style) {
		s.Highlight = on
	}
}

// Color sets the highlight color. The value is not validated and is passed through to the style
// attribute verbatim; it cannot escape the attribute, but a malformed value yields a malformed
// declaration.
func Color(c string) StyleOption {
	return func(s *config.Style) {
		s.Color = c
	}
}

// Class sets the class attribute value. Rendering filters it down to alphanumerics, hyphens,
// underscores and spaces.
func Class(name string) StyleOption {
	return func(s *config.Style) {
		s.Class = name
	}
}

// LineThrough controls whether the token is struck through.
func LineThrough(on bool) StyleOption {
	return func(s *config.Style) {
		s.LineThrough = on
	}
}

// Added overrides the presentation of added tokens. The default is a light green highlight
// (#d4fcbc) with class "diff-added" and no strikethrough.
func Added(opts ...StyleOption) worddiff.Option {
	return func(cfg *config.Config) config.Flag {
		for _, opt := range opts {
			opt(&cfg.Added)
		}
		return config.AddedStyle
	}
}

// Removed overrides the presentation of removed tokens. The default is a light red highlight
// (#fbb6c2) with class "diff-removed" and strikethrough.
func Removed(opts ...StyleOption) worddiff.Option {
	return func(cfg *config.Config) config.Flag {
		for _, opt := range opts {
			opt(&cfg.Removed)
		}
		return config.RemovedStyle
	}
}

// HideAdded renders added tokens as bare text instead of styled elements. The token text still
// appears in the output.
func HideAdded() worddiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShowAdded = false
		return config.ShowAdded
	}
}

// HideRemoved renders removed tokens as bare text instead of styled elements. The token text
// still appears in the output.
func HideRemoved() worddiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShowRemoved = false
		return config.ShowRemoved
	}
}
