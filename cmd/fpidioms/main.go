// Package main provides the fpidioms CLI, which runs every demonstration
// once and prints the results.
package main

import (
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
