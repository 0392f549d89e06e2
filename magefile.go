//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the makefmt binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/makefmt", "./cmd/makefmt")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}

// Test runs the full test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs the test suite with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs format and vet checks
func Lint() error {
	mg.Deps(Fmt, Vet)
	return nil
}

// Fmt checks gofmt compliance
func Fmt() error {
	return sh.RunV("gofmt", "-l", ".")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}
