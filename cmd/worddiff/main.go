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

// Package main is the entry point for the worddiff CLI.
package main

import (
	"errors"
	"os"

	"github.com/plaintexthq/worddiff/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info, os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		// ErrDifferencesFound is just a signal for the exit code, not a failure.
		if errors.Is(err, cli.ErrDifferencesFound) {
			return 1
		}
		cli.Logger().Error("command failed", "err", err)
		return 2
	}

	return 0
}
