//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const module = "github.com/heartmarshall/lenslearn"

var binaries = map[string]string{
	"server":    "./cmd/server",
	"migrate":   "./cmd/migrate",
	"lenslearn": "./cmd/lenslearn",
}

// Default target.
var Default = Build

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	// Left empty outside a git checkout; the binary then reports VCS build info.
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	built := time.Now().UTC().Format(time.RFC3339)

	return fmt.Sprintf("-s -w -X %[1]s/internal/app.Version=%[2]s -X %[1]s/internal/app.Commit=%[3]s -X %[1]s/internal/app.BuildTime=%[4]s -X main.version=%[2]s",
		module, version, commit, built)
}

// Build compiles every binary into ./bin.
func Build() error {
	flags := ldflags()
	for name, pkg := range binaries {
		if err := sh.RunV("go", "build", "-ldflags", flags, "-o", "bin/"+name, pkg); err != nil {
			return err
		}
	}
	return nil
}

// Generate regenerates moq mocks.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Test runs unit tests. Tests that need Docker skip under -short.
func Test() error {
	return sh.RunV("go", "test", "-race", "-short", "./...")
}

// Integration runs the full suite, including PostgreSQL through testcontainers.
func Integration() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// E2E runs the end-to-end suite against a PostgreSQL container.
func E2E() error {
	return sh.RunV("go", "test", "-race", "-count=1", "-tags=e2e", "./tests/e2e/...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Migrate applies migrations using the server configuration (CONFIG_PATH).
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV("bin/migrate")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("bin")
}
