//go:build mage

// Package main provides build targets for fpidioms using Mage.
//
// Usage:
//
//	mage build    Compile the fpidioms binary to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage run      Build and run the demonstrations
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "fpidioms"
	binaryDir  = "bin"
	cmdDir     = "./cmd/fpidioms"

	binGo   = "go"
	binLint = "golangci-lint"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the fpidioms binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Run builds the binary and prints the demonstrations.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}
