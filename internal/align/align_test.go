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

package align_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plaintexthq/worddiff/internal/align"
)

func eq(a, b string) bool { return a == b }

func TestOps(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []align.Op
	}{
		{
			name: "both-empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "identical",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "bar"},
			want: []align.Op{
				{Kind: align.Keep, Base: 0, Updated: 0},
				{Kind: align.Keep, Base: 1, Updated: 1},
			},
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar"},
			want: []align.Op{
				{Kind: align.Add, Base: -1, Updated: 0},
				{Kind: align.Add, Base: -1, Updated: 1},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar"},
			y:    nil,
			want: []align.Op{
				{Kind: align.Remove, Base: 0, Updated: -1},
				{Kind: align.Remove, Base: 1, Updated: -1},
			},
		},
		{
			// A 1:1 replacement hits the tie-break: backtracking consumes the base token first,
			// which puts the added token before the removed one after the flip to forward order.
			name: "replacement-tie-break",
			x:    []string{"cat"},
			y:    []string{"dog"},
			want: []align.Op{
				{Kind: align.Add, Base: -1, Updated: 0},
				{Kind: align.Remove, Base: 0, Updated: -1},
			},
		},
		{
			name: "replacement-between-matches",
			x:    []string{"a", "X", "b"},
			y:    []string{"a", "Y", "b"},
			want: []align.Op{
				{Kind: align.Keep, Base: 0, Updated: 0},
				{Kind: align.Add, Base: -1, Updated: 1},
				{Kind: align.Remove, Base: 1, Updated: -1},
				{Kind: align.Keep, Base: 2, Updated: 2},
			},
		},
		{
			name: "removals-only",
			x:    strings.Fields("The quick brown fox jumps over the lazy dog"),
			y:    strings.Fields("The brown fox jumps over the dog"),
			want: []align.Op{
				{Kind: align.Keep, Base: 0, Updated: 0},
				{Kind: align.Remove, Base: 1, Updated: -1},
				{Kind: align.Keep, Base: 2, Updated: 1},
				{Kind: align.Keep, Base: 3, Updated: 2},
				{Kind: align.Keep, Base: 4, Updated: 3},
				{Kind: align.Keep, Base: 5, Updated: 4},
				{Kind: align.Keep, Base: 6, Updated: 5},
				{Kind: align.Remove, Base: 7, Updated: -1},
				{Kind: align.Keep, Base: 8, Updated: 6},
			},
		},
		{
			name: "insertion-run",
			x:    []string{"a", "b"},
			y:    []string{"a", "x", "y", "b"},
			want: []align.Op{
				{Kind: align.Keep, Base: 0, Updated: 0},
				{Kind: align.Add, Base: -1, Updated: 1},
				{Kind: align.Add, Base: -1, Updated: 2},
				{Kind: align.Keep, Base: 1, Updated: 3},
			},
		},
		{
			name: "repeated-tokens",
			x:    []string{"a", "a", "a"},
			y:    []string{"a", "a"},
			want: []align.Op{
				{Kind: align.Remove, Base: 0, Updated: -1},
				{Kind: align.Keep, Base: 1, Updated: 0},
				{Kind: align.Keep, Base: 2, Updated: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := align.Ops(tt.x, tt.y, eq)
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ops(%v, %v) result is different [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestOpsCustomEquality(t *testing.T) {
	x := []string{"Hello", "World"}
	y := []string{"hello", "world"}
	got := align.Ops(x, y, strings.EqualFold)
	want := []align.Op{
		{Kind: align.Keep, Base: 0, Updated: 0},
		{Kind: align.Keep, Base: 1, Updated: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ops with EqualFold result is different [-want,+got]:\n%s", diff)
	}
}

// Every op sequence must consume each input exactly once, in order.
func TestOpsConsumesInputsInOrder(t *testing.T) {
	x := strings.Fields("a b c d e f g")
	y := strings.Fields("a c x d g h")
	ops := align.Ops(x, y, eq)

	nextBase, nextUpdated := 0, 0
	for _, op := range ops {
		switch op.Kind {
		case align.Keep:
			if op.Base != nextBase || op.Updated != nextUpdated {
				t.Fatalf("Keep op out of order: got (%d, %d), want (%d, %d)", op.Base, op.Updated, nextBase, nextUpdated)
			}
			nextBase++
			nextUpdated++
		case align.Remove:
			if op.Base != nextBase {
				t.Fatalf("Remove op out of order: got %d, want %d", op.Base, nextBase)
			}
			if op.Updated != -1 {
				t.Fatalf("Remove op has Updated = %d, want -1", op.Updated)
			}
			nextBase++
		case align.Add:
			if op.Updated != nextUpdated {
				t.Fatalf("Add op out of order: got %d, want %d", op.Updated, nextUpdated)
			}
			if op.Base != -1 {
				t.Fatalf("Add op has Base = %d, want -1", op.Base)
			}
			nextUpdated++
		}
	}
	if nextBase != len(x) || nextUpdated != len(y) {
		t.Fatalf("ops consume (%d, %d) tokens, want (%d, %d)", nextBase, nextUpdated, len(x), len(y))
	}
}
