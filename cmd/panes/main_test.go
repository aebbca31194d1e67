package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestMissingConfigFails(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestInvalidDirectionFlagFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := execute(t, "--direction", "diagonal")
	if err == nil || !strings.Contains(err.Error(), "layout.direction") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

func TestOutOfRangeSizeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nsize = 95\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := execute(t, "--config", path)
	if err == nil || !strings.Contains(err.Error(), "invalid split size: 95") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestRejectsArguments(t *testing.T) {
	if err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
