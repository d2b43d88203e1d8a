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

// Package tokenize splits text into whitespace-delimited tokens.
//
// The position of a token within its source text is its index in the returned slice. This index
// is the unit all positions reported by this module are expressed in.
package tokenize

import "strings"

// Split breaks s into tokens around maximal runs of Unicode whitespace. Leading and trailing
// whitespace is ignored and empty tokens are never produced: an empty or all-whitespace input
// yields an empty slice.
func Split(s string) []string {
	return strings.Fields(s)
}
