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

package worddiff

import (
	"strings"

	"github.com/plaintexthq/worddiff/internal/tokenize"
)

const (
	baseHeader    = "Base text (- = removed):"
	updatedHeader = "Updated text (+ = added):"
)

// Annotate compares base and updated word by word and formats both texts with the changed tokens
// marked: removed tokens render as [-token] in the base block, added tokens as [+token] in the
// updated block. Unchanged tokens render bare and all tokens are joined by single spaces.
//
// The following options are supported: [IgnoreCase], [Limit]. The only error condition is a
// configured [Limit] being exceeded; without one, Annotate never fails.
func Annotate(base, updated string, opts ...Option) (string, error) {
	res, err := Compare(base, updated, opts...)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(baseHeader)
	b.WriteByte('\n')
	writeMarked(&b, tokenize.Split(base), res.RemovedPositions, "[-")
	b.WriteString("\n\n")
	b.WriteString(updatedHeader)
	b.WriteByte('\n')
	writeMarked(&b, tokenize.Split(updated), res.AddedPositions, "[+")
	return b.String(), nil
}

// writeMarked writes tokens space-joined, wrapping the ones whose index appears in positions.
// positions is ascending, so a single cursor suffices.
func writeMarked(b *strings.Builder, tokens []string, positions []int, open string) {
	next := 0
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		if next < len(positions) && positions[next] == i {
			b.WriteString(open)
			b.WriteString(tok)
			b.WriteByte(']')
			next++
		} else {
			b.WriteString(tok)
		}
	}
}
