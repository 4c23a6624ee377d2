package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testConfig writes a configuration file to a temporary directory and
// returns its path. Tests pass it with --config so that a developer's own
// configuration file is never picked up.
func testConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// executeRoot runs the root command with args and stdin, returning stdout
// and the command error.
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := testConfig(t, "color: never\n")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}
