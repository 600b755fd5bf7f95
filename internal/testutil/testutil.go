// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/sitesearch/internal/host"
)

// WriteFile writes content to dir/name and returns the full path.
// t is the active test; dir is the output directory.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// LoadHost parses snapshot TOML and returns the snapshot with its services.
// The host has no request input attached.
func LoadHost(t *testing.T, snapshot string) (*host.Snapshot, host.Host) {
	t.Helper()
	snap, err := host.ParseSnapshot([]byte(snapshot), "host.toml")
	if err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	return snap, snap.Host(nil)
}
