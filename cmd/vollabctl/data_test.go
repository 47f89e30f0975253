package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/investlab/vollab/pkg/config"
)

func TestResolveDataPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("VOLLAB_CONFIG_PATH", t.TempDir())
	t.Setenv("VOLLAB_DATA_DIR", dataDir)
	if err := config.Reload(); err != nil {
		t.Fatal(err)
	}

	if got := resolveDataPath("/abs/spy.csv"); got != "/abs/spy.csv" {
		t.Errorf("absolute path = %q, want it unchanged", got)
	}

	if got := resolveDataPath("spy.csv"); got != filepath.Join(dataDir, "spy.csv") {
		t.Errorf("bare filename = %q, want it under the data dir", got)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.WriteFile("local.csv", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := resolveDataPath("local.csv"); got != "local.csv" {
		t.Errorf("existing relative path = %q, want it unchanged", got)
	}
}
