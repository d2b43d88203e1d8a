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

// Package markup builds HTML fragments from text nodes and elements.
//
// Content is held as a node tree and only serialized at the end, so token text and attribute
// values are always escaped by the serializer. Nothing in this package concatenates raw text
// into markup.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Attribute is a single key/value attribute of an element.
type Attribute struct {
	Key, Val string
}

// Builder accumulates a flat sequence of text nodes and elements and serializes them to HTML.
// The zero value is ready to use.
type Builder struct {
	nodes []*html.Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text appends a text node. The content is escaped on serialization.
func (b *Builder) Text(s string) {
	b.nodes = append(b.nodes, &html.Node{
		Type: html.TextNode,
		Data: s,
	})
}

// Element appends an element with the given tag and attributes whose only content is a text node
// holding text. Tag and attribute keys are inserted as given; attribute values and the text are
// escaped on serialization.
func (b *Builder) Element(tag string, attrs []Attribute, text string) {
	n := &html.Node{
		Type: html.ElementNode,
		Data: tag,
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	n.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
	b.nodes = append(b.nodes, n)
}

// Markup serializes the accumulated nodes in order.
func (b *Builder) Markup() (string, error) {
	var sb strings.Builder
	for _, n := range b.nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
