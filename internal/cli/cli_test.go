package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"steps", "play", "show", "serve", "visualize", "export", "import", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("configDir = %q", dir)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestParseIndex(t *testing.T) {
	if _, err := parseIndex("abc"); err == nil {
		t.Error("parseIndex(abc) = nil error")
	}
	i, err := parseIndex("7")
	if err != nil || i != 7 {
		t.Errorf("parseIndex(7) = %d, %v", i, err)
	}
}

func TestParseAnchor(t *testing.T) {
	if a, err := parseAnchor(""); err != nil || string(a) != "right" {
		t.Errorf("parseAnchor(empty) = %q, %v", a, err)
	}
	if _, err := parseAnchor("diagonal"); err == nil {
		t.Error("parseAnchor(diagonal) = nil error")
	}
}
