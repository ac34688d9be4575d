package main

import (
	"flag"
)

// Command line flags available to the test suites
var (
	flagTargetBinaryPath string // path to the ftracker binary
	flagRandomRuns       int    // number of random packages to check
)

func init() {
	flag.StringVar(&flagTargetBinaryPath, "binary-path", "", "path to target ftracker binary")
	flag.IntVar(&flagRandomRuns, "random-runs", 20, "number of random packages to check")
}
