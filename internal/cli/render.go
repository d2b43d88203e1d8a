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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/plaintexthq/worddiff"
)

// termStyles holds the lipgloss styles for inline terminal rendering.
type termStyles struct {
	removed lipgloss.Style
	added   lipgloss.Style
}

func newTermStyles(colored bool) termStyles {
	if !colored {
		return termStyles{
			removed: lipgloss.NewStyle(),
			added:   lipgloss.NewStyle(),
		}
	}
	return termStyles{
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// renderTerm renders the edit script as a single line, every token of both texts space-joined in
// edit-script order, with removed and added tokens styled.
func renderTerm(edits []worddiff.Edit, colored bool) string {
	styles := newTermStyles(colored)
	var b strings.Builder
	for i, e := range edits {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e.Op {
		case worddiff.Removed:
			b.WriteString(styles.removed.Render(e.Text))
		case worddiff.Added:
			b.WriteString(styles.added.Render(e.Text))
		default:
			b.WriteString(e.Text)
		}
	}
	return b.String()
}

// colorEnabled resolves the --color flag: always, never, or auto (color iff stdout is a
// terminal).
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutIsTerminal()
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
