//go:build mage
// +build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

func runVWithArgs(cmd string, args ...string) error {
	envArgs, err := shellwords.Parse(os.Getenv("ARGS"))
	if err != nil {
		return err
	}
	return sh.RunV(cmd, append(args, envArgs...)...)
}

// Format code
func Fmt() error {
	files, err := zglob.Glob("./**/*.go")
	if err != nil {
		return err
	}
	for _, file := range files {
		if ok, err := zglob.Match("./_examples/**", file); ok || err != nil {
			continue
		}
		if err := sh.RunV("goimports", "-w", file); err != nil {
			return err
		}
	}
	return nil
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Run benchmarks comparing the Euclidean and Stein algorithms
func Bench() error {
	return runVWithArgs("go", "test", "-run", "^$", "-bench", ".", ".")
}

// Run the gcd command, passing $ARGS through
func Run() error {
	return runVWithArgs("go", "run", "./cmd/gcd")
}

// Build binary
func Build() error {
	return sh.RunV("go", "build", "-o", "gcd", "./cmd/gcd")
}
