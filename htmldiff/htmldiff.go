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

// Package htmldiff renders word-level differences between two texts as styled inline HTML.
//
// Removed and added tokens are wrapped in <span> elements carrying a class and inline style;
// unchanged tokens are emitted as plain text. All segments are joined by single spaces, so
// stripping the markup recovers the same token stream the plain visualizer produces. Token text
// is never concatenated into a markup string: output is built from a node tree and escaped on
// serialization, so the characters & < > " ' in tokens can never become live markup.
//
// Rendering requires a [Builder], the capability to construct and serialize such a tree. The
// package-level [Render] uses a builder backed by golang.org/x/net/html; callers embedding their
// own markup pipeline can inject one via [NewRenderer]. Without a builder, rendering fails with
// [ErrUnsupported] — use [worddiff.Annotate] for plain output instead.
package htmldiff

import (
	"errors"
	"strings"

	"github.com/plaintexthq/worddiff"
	"github.com/plaintexthq/worddiff/internal/align"
	"github.com/plaintexthq/worddiff/internal/config"
	"github.com/plaintexthq/worddiff/internal/markup"
	"github.com/plaintexthq/worddiff/internal/tokenize"
)

// ErrUnsupported is returned when no markup builder is available. Rendering never falls back to
// string concatenation, which would void the escaping guarantee.
var ErrUnsupported = errors.New("htmldiff: no markup builder available, use worddiff.Annotate for plain output")

// Attribute is a single key/value attribute of an element.
type Attribute = markup.Attribute

// A Builder is the capability to construct escaped markup: a flat sequence of text nodes and
// single-text-child elements, serialized by Markup. Implementations must escape text content and
// attribute values during serialization.
type Builder interface {
	// Text appends a text node.
	Text(s string)

	// Element appends an element whose only content is a text node holding text.
	Element(tag string, attrs []Attribute, text string)

	// Markup serializes everything appended so far.
	Markup() (string, error)
}

// A Renderer renders word-level diffs using an injected markup builder.
type Renderer struct {
	newBuilder func() Builder
}

// NewRenderer returns a Renderer that obtains a fresh builder from newBuilder for every call to
// [Renderer.Render]. It fails with [ErrUnsupported] if newBuilder is nil, so that a missing
// capability surfaces at construction time rather than mid-render.
func NewRenderer(newBuilder func() Builder) (*Renderer, error) {
	if newBuilder == nil {
		return nil, ErrUnsupported
	}
	return &Renderer{newBuilder: newBuilder}, nil
}

// Render compares base and updated word by word and renders the result as inline HTML using the
// default builder.
//
// The following options are supported: [worddiff.IgnoreCase], [worddiff.Limit], [Added],
// [Removed], [HideAdded], [HideRemoved].
func Render(base, updated string, opts ...worddiff.Option) (string, error) {
	r := Renderer{newBuilder: func() Builder { return markup.NewBuilder() }}
	return r.Render(base, updated, opts...)
}

// Render compares base and updated word by word and renders the result as inline HTML.
//
// Every token of both texts appears in the output, interleaved in edit-script order: within a
// replaced run, removed and added tokens keep their relative alignment order instead of being
// grouped by side. Unchanged tokens — and changed tokens whose styling is suppressed with
// [HideAdded] or [HideRemoved] — render as bare text. If the two texts tokenize identically, the
// output is the space-joined token text with no elements at all.
//
// The following options are supported: [worddiff.IgnoreCase], [worddiff.Limit], [Added],
// [Removed], [HideAdded], [HideRemoved].
func (r *Renderer) Render(base, updated string, opts ...worddiff.Option) (string, error) {
	cfg := config.FromOptions(opts, config.IgnoreCase|config.Limit|config.Styles)

	x, y := tokenize.Split(base), tokenize.Split(updated)
	if cfg.Limit > 0 && len(x)*len(y) > cfg.Limit {
		return "", worddiff.ErrTooLarge
	}
	eq := func(a, b string) bool { return a == b }
	if cfg.IgnoreCase {
		eq = strings.EqualFold
	}
	ops := align.Ops(x, y, eq)

	b := r.newBuilder()
	for i, op := range ops {
		if i > 0 {
			b.Text(" ")
		}
		switch op.Kind {
		case align.Keep:
			b.Text(x[op.Base])
		case align.Remove:
			if cfg.ShowRemoved {
				b.Element("span", styleAttrs(cfg.Removed), x[op.Base])
			} else {
				b.Text(x[op.Base])
			}
		case align.Add:
			if cfg.ShowAdded {
				b.Element("span", styleAttrs(cfg.Added), y[op.Updated])
			} else {
				b.Text(y[op.Updated])
			}
		}
	}
	return b.Markup()
}

// styleAttrs converts a style configuration into element attributes. Empty attributes are
// omitted entirely.
func styleAttrs(s config.Style) []Attribute {
	var attrs []Attribute
	if class := sanitizeClass(s.Class); class != "" {
		attrs = append(attrs, Attribute{Key: "class", Val: class})
	}
	var style []string
	if s.Highlight && s.Color != "" {
		style = append(style, "background-color: "+s.Color)
	}
	if s.LineThrough {
		style = append(style, "text-decoration: line-through")
	}
	if len(style) > 0 {
		attrs = append(attrs, Attribute{Key: "style", Val: strings.Join(style, "; ")})
	}
	return attrs
}

// sanitizeClass keeps only alphanumerics, hyphens, underscores and spaces. This runs in addition
// to attribute escaping, not instead of it.
func sanitizeClass(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z',
			'0' <= r && r <= '9',
			r == '-', r == '_', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
