package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	t.Cleanup(func() { srv.Shutdown() })

	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not created: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, expected 0", srv.ActiveSessions())
	}
}
