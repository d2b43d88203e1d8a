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

package htmldiff_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaintexthq/worddiff"
	"github.com/plaintexthq/worddiff/htmldiff"
)

const (
	removedSpan = `<span class="diff-removed" style="background-color: #fbb6c2; text-decoration: line-through">`
	addedSpan   = `<span class="diff-added" style="background-color: #d4fcbc">`
)

func TestRenderIdentical(t *testing.T) {
	out, err := htmldiff.Render("hello world", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestRenderBothEmpty(t *testing.T) {
	out, err := htmldiff.Render("", "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderReplacement(t *testing.T) {
	out, err := htmldiff.Render("the quick fox", "the slow fox")
	require.NoError(t, err)
	want := "the " +
		addedSpan + "slow</span> " +
		removedSpan + "quick</span> " +
		"fox"
	assert.Equal(t, want, out)
}

func TestRenderRemovalOnly(t *testing.T) {
	out, err := htmldiff.Render("a b c", "a c")
	require.NoError(t, err)
	want := "a " + removedSpan + "b</span> c"
	assert.Equal(t, want, out)
}

func TestRenderAdditionOnly(t *testing.T) {
	out, err := htmldiff.Render("a c", "a b c")
	require.NoError(t, err)
	want := "a " + addedSpan + "b</span> c"
	assert.Equal(t, want, out)
}

func TestRenderEscapesTokens(t *testing.T) {
	out, err := htmldiff.Render("x <script>alert('p')</script>", "x injected")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&#39;p&#39;")
}

// Identical inputs take the element-free path, which must still escape.
func TestRenderEscapesUnchangedTokens(t *testing.T) {
	out, err := htmldiff.Render("<script>bad()</script>", "<script>bad()</script>")
	require.NoError(t, err)
	assert.Equal(t, "&lt;script&gt;bad()&lt;/script&gt;", out)
}

// A token that already looks escaped gets its ampersand escaped again; decoding the output once
// must never yield live markup.
func TestRenderDoubleEscapes(t *testing.T) {
	out, err := htmldiff.Render("&lt;b&gt;", "&lt;b&gt;")
	require.NoError(t, err)
	assert.Equal(t, "&amp;lt;b&amp;gt;", out)
}

func TestRenderClassSanitization(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog",
		htmldiff.Added(htmldiff.Class(`evil"><script>my_class-1`)),
	)
	require.NoError(t, err)
	assert.Contains(t, out, `class="evilscriptmy_class-1"`)
	assert.NotContains(t, out, `"><`)
}

func TestRenderClassFilteredToNothing(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog",
		htmldiff.Added(htmldiff.Class("<>!!")),
		htmldiff.Removed(htmldiff.Class("<>!!")),
	)
	require.NoError(t, err)
	assert.NotContains(t, out, "class=")
}

func TestRenderStyleOverrides(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog",
		htmldiff.Added(htmldiff.Color("#ffff00"), htmldiff.LineThrough(true)),
		htmldiff.Removed(htmldiff.Highlight(false)),
	)
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="diff-added" style="background-color: #ffff00; text-decoration: line-through">dog</span>`)
	// Removed keeps its default strikethrough but loses the background.
	assert.Contains(t, out, `<span class="diff-removed" style="text-decoration: line-through">cat</span>`)
}

// Overriding one kind must not bleed into the other kind's defaults.
func TestRenderStyleDefaultsPerKind(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog",
		htmldiff.Added(htmldiff.Class("custom-add")),
	)
	require.NoError(t, err)
	assert.Contains(t, out, `class="custom-add"`)
	assert.Contains(t, out, `class="diff-removed"`)
}

func TestRenderNoStyleAttribute(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog",
		htmldiff.Added(htmldiff.Highlight(false)),
		htmldiff.Removed(htmldiff.Highlight(false), htmldiff.LineThrough(false)),
	)
	require.NoError(t, err)
	assert.Equal(t, `<span class="diff-added">dog</span> <span class="diff-removed">cat</span>`, out)
}

func TestRenderHideFlags(t *testing.T) {
	out, err := htmldiff.Render("cat", "dog", htmldiff.HideRemoved())
	require.NoError(t, err)
	assert.Equal(t, addedSpan+"dog</span> cat", out)

	out, err = htmldiff.Render("cat", "dog", htmldiff.HideAdded())
	require.NoError(t, err)
	assert.Equal(t, "dog "+removedSpan+"cat</span>", out)

	out, err = htmldiff.Render("cat", "dog", htmldiff.HideAdded(), htmldiff.HideRemoved())
	require.NoError(t, err)
	assert.Equal(t, "dog cat", out)
}

func TestRenderIgnoreCase(t *testing.T) {
	out, err := htmldiff.Render("Hello World", "hello world", worddiff.IgnoreCase())
	require.NoError(t, err)
	assert.Equal(t, "Hello World", out)
}

func TestRenderLimit(t *testing.T) {
	_, err := htmldiff.Render("a b c", "a b c d", worddiff.Limit(5))
	assert.ErrorIs(t, err, worddiff.ErrTooLarge)
}

// Stripping all elements must recover the same space-joined token stream for every input.
func TestRenderSpacingMatchesPlainStream(t *testing.T) {
	out, err := htmldiff.Render("one two three four", "one 2 three 4 five")
	require.NoError(t, err)

	stripped := out
	for _, tag := range []string{"</span>"} {
		stripped = strings.ReplaceAll(stripped, tag, "")
	}
	for strings.Contains(stripped, "<span") {
		start := strings.Index(stripped, "<span")
		end := strings.Index(stripped[start:], ">")
		require.GreaterOrEqual(t, end, 0)
		stripped = stripped[:start] + stripped[start+end+1:]
	}

	edits, err := worddiff.Edits("one two three four", "one 2 three 4 five")
	require.NoError(t, err)
	texts := make([]string, len(edits))
	for i, e := range edits {
		texts[i] = e.Text
	}
	assert.Equal(t, strings.Join(texts, " "), stripped)
}

func TestNewRendererRequiresBuilder(t *testing.T) {
	r, err := htmldiff.NewRenderer(nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, htmldiff.ErrUnsupported)
}

// recordingBuilder captures calls so tests can assert the renderer never bypasses the capability.
type recordingBuilder struct {
	calls []string
}

func (b *recordingBuilder) Text(s string) {
	b.calls = append(b.calls, "text:"+s)
}

func (b *recordingBuilder) Element(tag string, attrs []htmldiff.Attribute, text string) {
	b.calls = append(b.calls, "element:"+tag+":"+text)
}

func (b *recordingBuilder) Markup() (string, error) {
	return strings.Join(b.calls, "|"), nil
}

func TestRendererUsesInjectedBuilder(t *testing.T) {
	var rb *recordingBuilder
	r, err := htmldiff.NewRenderer(func() htmldiff.Builder {
		rb = &recordingBuilder{}
		return rb
	})
	require.NoError(t, err)

	out, err := r.Render("a b", "a c")
	require.NoError(t, err)
	assert.Equal(t, "text:a|text: |element:span:c|text: |element:span:b", out)
	require.NotNil(t, rb)
}

func TestRendererErrUnsupportedIsDistinguishable(t *testing.T) {
	_, err := htmldiff.NewRenderer(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, htmldiff.ErrUnsupported))
	assert.Contains(t, err.Error(), "markup builder")
}
