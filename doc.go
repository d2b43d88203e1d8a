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

// Package worddiff compares two texts word by word and reports which words were removed and
// which were added.
//
// Texts are split into tokens around whitespace; a token's position is its index in that split.
// The main functions are [Edits], which returns the full edit script connecting the two token
// sequences, [Compare], which reduces the script to the removed and added token positions, and
// [Annotate], which formats both texts with the changed tokens marked.
//
// The edit script is computed with a longest-common-subsequence dynamic program and is minimal
// and deterministic: identical inputs always produce identical output, and the relative order in
// which removed and added tokens interleave is stable across releases.
//
// Performance: time and space are O(m·n) in the two token counts. Use [Limit] to reject
// oversized inputs instead of allocating the full table.
//
// For styled HTML output, see [github.com/plaintexthq/worddiff/htmldiff].
package worddiff
