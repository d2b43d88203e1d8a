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

import "github.com/plaintexthq/worddiff/internal/config"

// Option configures the behavior of comparison and rendering functions.
type Option = config.Option

// IgnoreCase makes token equality case-insensitive using Unicode case folding. Reported token
// text keeps its original casing; only the comparison is folded.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// Limit caps the size of the alignment table at n cells, where the table needs one cell per pair
// of base and updated tokens. Comparison functions fail with [ErrTooLarge] before allocating
// anything when the product of the two token counts exceeds n.
//
// Both time and space of the comparison are proportional to the table size, so a limit is
// advisable when the inputs are adversarial. Values < 1 mean no limit, which is the default.
func Limit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Limit = max(0, n)
		return config.Limit
	}
}
