//go:build mage

// Package main provides build targets for the arcana project using Mage.
//
// Usage:
//
//	mage build     Compile the arcana binary to bin/
//	mage test      Run all tests (unit + integration)
//	mage testUnit  Run only unit tests (exclude tests/)
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install arcana to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "arcana"
	binaryDir  = "bin"
	cmdDir     = "./cmd/arcana"
)

// Build compiles the arcana binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests (unit and integration).
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs only unit tests, excluding the tests/ directory.
func TestUnit() error {
	out, err := sh.Output("go", "list", "./...")
	if err != nil {
		return err
	}
	var pkgs []string
	for _, pkg := range strings.Split(out, "\n") {
		if pkg == "" || strings.Contains(pkg, "/tests/") {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	args := append([]string{"test"}, pkgs...)
	return sh.RunV("go", args...)
}

// TestIntegration builds the binary, then runs the integration tests.
func TestIntegration() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./tests/integration/...")
}

// Lint runs golangci-lint over the whole module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs the arcana binary to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
