// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultVectorsFile = "wire/testdata/vectors.json"
)

// config defines the configuration options for verifyvectors.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Vectors string `short:"f" long:"vectors" description:"Path to the JSON test vector document"`
	Quiet   bool   `short:"q" long:"quiet" description:"Only print mismatches and the final summary"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		Vectors: defaultVectorsFile,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
