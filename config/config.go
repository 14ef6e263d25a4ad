/*
 * Kestrel - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or overridden by
// command line options.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// ConfFile is the path to the toml config file, relative to the
	// working directory the engine was launched from.
	ConfFile = "./config/config.toml"

	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// SearchLogLevel defines the search log level set by default or given by the command line arguments
	SearchLogLevel = 2

	// TestLogLevel defines the log level used by package tests.
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Engine engineConfiguration
}

// Setup reads the config file (if present) and falls back to the
// defaults set in each table's init() otherwise. Idempotent: later
// calls are no-ops.
func Setup() {
	if initialized {
		return
	}

	// read configuration file; stdout is reserved for UCI output
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Fprintln(os.Stderr, "config file not found, using defaults:", err)
	}

	// setup log level from the config file, else leave defaults; command
	// line options are applied by the caller after Setup returns
	setupLogLvl()

	// setup search config after reading from configuration file if necessary
	setupSearch()

	initialized = true
}


