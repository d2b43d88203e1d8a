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

// Package align computes a minimal token-level edit script using a longest common subsequence
// dynamic program.
//
// The output ordering is part of the contract: backtracking resolves ties between a removal and
// an addition by consuming the base token, and the resulting script is returned in forward
// document order. Changing either would change the interleave of removed and added tokens in a
// replacement, which downstream rendering depends on.
package align

import "slices"

// Kind classifies a single step of the edit script.
type Kind int8

const (
	Keep Kind = iota // token present in both sequences
	Remove
	Add
)

// Op is one step of the edit script.
//
//   - For Keep, Base and Updated hold the token's index in each sequence.
//   - For Remove, Base holds the index in the base sequence and Updated is -1.
//   - For Add, Updated holds the index in the updated sequence and Base is -1.
type Op struct {
	Kind          Kind
	Base, Updated int
}

// Ops aligns x (base) and y (updated) under eq and returns the edit script in forward order.
//
// The table is (len(x)+1)×(len(y)+1) ints, so time and space are O(len(x)·len(y)). Callers are
// responsible for bounding the input sizes.
func Ops(x, y []string, eq func(a, b string) bool) []Op {
	m, n := len(x), len(y)

	// The table is stored row-major in a single allocation: L[i][j] = l[i*(n+1)+j].
	l := make([]int, (m+1)*(n+1))
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if eq(x[i-1], y[j-1]) {
				l[i*(n+1)+j] = l[(i-1)*(n+1)+j-1] + 1
			} else {
				l[i*(n+1)+j] = max(l[(i-1)*(n+1)+j], l[i*(n+1)+j-1])
			}
		}
	}

	// Backtracking emits ops in reverse document order; a single reverse at the end restores
	// forward order without quadratic prepending.
	ops := make([]Op, 0, m+n)
	for i, j := m, n; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 && eq(x[i-1], y[j-1]):
			ops = append(ops, Op{Kind: Keep, Base: i - 1, Updated: j - 1})
			i--
			j--
		case i > 0 && (j == 0 || l[(i-1)*(n+1)+j] >= l[i*(n+1)+j-1]):
			// On a tie, prefer consuming the base token. This fixes the interleave order of
			// replaced runs and must not change.
			ops = append(ops, Op{Kind: Remove, Base: i - 1, Updated: -1})
			i--
		default:
			ops = append(ops, Op{Kind: Add, Base: -1, Updated: j - 1})
			j--
		}
	}
	slices.Reverse(ops)
	return ops
}
