package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeExtension writes an executable script named sipc-<name> in a folder added to the PATH.
func writeExtension(t *testing.T, name, script string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sipc-"+name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write sipc-%s: %v", name, err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExtensionMechanism(t *testing.T) {
	writeExtension(t, "hello", `env > "$1"`)
	out := filepath.Join(t.TempDir(), "env.txt")

	oldKind, oldDir, oldVerbose := *storeKind, *storeDir, *Verbose
	defer func() { *storeKind, *storeDir, *Verbose = oldKind, oldDir, oldVerbose }()
	*storeKind, *storeDir, *Verbose = "memory", "/tmp/plans", true

	found, code := RunExtension("hello", []string{out})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}

	env, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("the extension did not run: %v", err)
	}
	for _, want := range []string{EnvStore + "=memory", EnvStoreDir + "=/tmp/plans", EnvVerbose + "=true"} {
		if !strings.Contains(string(env), want+"\n") {
			t.Errorf("extension environment does not contain %q:\n%s", want, env)
		}
	}
}

func TestExtensionMechanism_ExitCode(t *testing.T) {
	writeExtension(t, "fail", "exit 3\n")
	if found, code := RunExtension("fail", nil); !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestExtensionMechanism_NotFound(t *testing.T) {
	if found, _ := RunExtension("surely-not-installed", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
