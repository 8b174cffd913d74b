// Package integration provides CLI integration tests for arcana. Each
// test runs the built binary against its own isolated config and data
// directories.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// arcanaBin is the path to the built arcana binary.
	arcanaBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build arcana: %v", buildErr)
	}
	if arcanaBin == "" {
		t.Fatal("arcana binary not built (arcanaBin is empty)")
	}

	tempDir := t.TempDir()
	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: filepath.Join(tempDir, "config"),
		DataDir:   filepath.Join(tempDir, "data"),
	}
}

// CmdResult holds the result of an arcana command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunArcana executes the arcana CLI with the given arguments.
func (e *TestEnv) RunArcana(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(arcanaBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run arcana: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunArcana executes the arcana CLI and fails the test on a
// non-zero exit.
func (e *TestEnv) MustRunArcana(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunArcana(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("arcana %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// StorePath returns the path of the client store file in this environment.
func (e *TestEnv) StorePath() string {
	return filepath.Join(e.DataDir, "clients.json")
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ClientRow is one row of 'client list --json'.
type ClientRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Readings int    `json:"readings"`
	Journal  int    `json:"journal"`
	Current  bool   `json:"current"`
}

// DrawnCard is one card of 'draw --json'.
type DrawnCard struct {
	Position    string `json:"position"`
	Card        string `json:"card"`
	Orientation string `json:"orientation"`
	Meaning     string `json:"meaning"`
}

// DrawResult is the output of 'draw --json'.
type DrawResult struct {
	Client string      `json:"client"`
	Spread string      `json:"spread"`
	Cards  []DrawnCard `json:"cards"`
}

// StoreFile mirrors the persisted clients.json shape.
type StoreFile struct {
	Clients map[string]struct {
		Name     string `json:"name"`
		Readings []struct {
			Spread string   `json:"spread"`
			Cards  []string `json:"cards"`
		} `json:"readings"`
		Journal []struct {
			Text string `json:"text"`
		} `json:"journal"`
	} `json:"clients"`
	CurrentClientID *string `json:"current_client_id"`
}

// ReadStoreFile reads and parses the client store file.
func (e *TestEnv) ReadStoreFile() StoreFile {
	e.t.Helper()
	data, err := os.ReadFile(e.StorePath())
	if err != nil {
		e.t.Fatalf("failed to read store file: %v", err)
	}
	var f StoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		e.t.Fatalf("failed to parse store file: %v", err)
	}
	return f
}
