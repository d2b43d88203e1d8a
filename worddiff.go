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
	"errors"
	"strings"

	"github.com/plaintexthq/worddiff/internal/align"
	"github.com/plaintexthq/worddiff/internal/config"
	"github.com/plaintexthq/worddiff/internal/tokenize"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Unchanged Op = iota // The token appears in both texts
	Removed             // The token appears only in the base text
	Added               // The token appears only in the updated text
)

// Edit describes a single token of the edit script connecting the base and updated texts.
//
//   - For Unchanged, BaseIndex and UpdatedIndex are the token's positions in both texts.
//   - For Removed, BaseIndex is the token's position in the base text and UpdatedIndex is -1.
//   - For Added, UpdatedIndex is the token's position in the updated text and BaseIndex is -1.
//
// Text always carries the token with its original casing, even when [IgnoreCase] matched two
// differently-cased tokens; for Unchanged the base spelling is reported.
type Edit struct {
	Op           Op
	Text         string
	BaseIndex    int
	UpdatedIndex int
}

// Result holds the positions of changed tokens.
//
// Both slices are strictly increasing and free of duplicates. RemovedPositions indexes the
// tokenization of the base text, AddedPositions the tokenization of the updated text.
type Result struct {
	RemovedPositions []int
	AddedPositions   []int
}

// ErrTooLarge is returned when the inputs exceed a size cap configured with [Limit].
var ErrTooLarge = errors.New("worddiff: token count exceeds configured limit")

// Edits compares base and updated word by word and returns the edit script necessary to convert
// from one to the other, in document order.
//
// Edits returns one edit per token: every base token appears as Unchanged or Removed, every
// updated token as Unchanged or Added. If both texts tokenize identically, every edit is
// Unchanged. The script is minimal and its ordering is deterministic and stable.
//
// The following options are supported: [IgnoreCase], [Limit]. The only error condition is a
// configured [Limit] being exceeded; without one, Edits never fails.
func Edits(base, updated string, opts ...Option) ([]Edit, error) {
	cfg := config.FromOptions(opts, config.IgnoreCase|config.Limit)
	x, y := tokenize.Split(base), tokenize.Split(updated)
	ops, err := alignTokens(x, y, cfg)
	if err != nil {
		return nil, err
	}
	edits := make([]Edit, 0, len(ops))
	for _, op := range ops {
		e := Edit{BaseIndex: op.Base, UpdatedIndex: op.Updated}
		switch op.Kind {
		case align.Keep:
			e.Op = Unchanged
			e.Text = x[op.Base]
		case align.Remove:
			e.Op = Removed
			e.Text = x[op.Base]
		case align.Add:
			e.Op = Added
			e.Text = y[op.Updated]
		}
		edits = append(edits, e)
	}
	return edits, nil
}

// Compare compares base and updated word by word and returns the positions of the tokens that
// were removed from the base text and the positions of the tokens that were added in the updated
// text.
//
// The following options are supported: [IgnoreCase], [Limit]. The only error condition is a
// configured [Limit] being exceeded; without one, Compare never fails.
func Compare(base, updated string, opts ...Option) (Result, error) {
	edits, err := Edits(base, updated, opts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		RemovedPositions: []int{},
		AddedPositions:   []int{},
	}
	for _, e := range edits {
		switch e.Op {
		case Removed:
			res.RemovedPositions = append(res.RemovedPositions, e.BaseIndex)
		case Added:
			res.AddedPositions = append(res.AddedPositions, e.UpdatedIndex)
		}
	}
	return res, nil
}

// alignTokens runs the alignment after enforcing the configured size cap.
func alignTokens(x, y []string, cfg config.Config) ([]align.Op, error) {
	if cfg.Limit > 0 && len(x)*len(y) > cfg.Limit {
		return nil, ErrTooLarge
	}
	eq := func(a, b string) bool { return a == b }
	if cfg.IgnoreCase {
		eq = strings.EqualFold
	}
	return align.Ops(x, y, eq), nil
}
