package main

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	orig := struct{ url, fmt string }{flagURL, flagFmt}
	t.Cleanup(func() {
		flagURL = orig.url
		flagFmt = orig.fmt
	})
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".graph")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// TestResolveConfigEnvURL verifies that GRAPH_URL overrides the default URL.
func TestResolveConfigEnvURL(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "http://env-server:9090")
	t.Setenv("HOME", t.TempDir())

	flagURL = defaultURL
	resolveConfig()

	if flagURL != "http://env-server:9090" {
		t.Errorf("flagURL: got %q, want %q", flagURL, "http://env-server:9090")
	}
}

// TestResolveConfigFlagTakesPrecedenceOverEnv verifies that an explicit flag
// value is not overridden by the environment variable.
func TestResolveConfigFlagTakesPrecedenceOverEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "http://env-server:9090")
	t.Setenv("HOME", t.TempDir())

	flagURL = "http://explicit-flag:1234"
	resolveConfig()

	if flagURL != "http://explicit-flag:1234" {
		t.Errorf("explicit flag should win; got %q", flagURL)
	}
}

// TestResolveConfigFlatYAML verifies the flat config file format.
func TestResolveConfigFlatYAML(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "url: http://from-file:8080\n")

	flagURL = defaultURL
	resolveConfig()

	if flagURL != "http://from-file:8080" {
		t.Errorf("flagURL from flat config: got %q, want %q", flagURL, "http://from-file:8080")
	}
}

// TestResolveConfigProfileYAML verifies that the active profile wins.
func TestResolveConfigProfileYAML(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `
active_profile: desktop
profiles:
  default:
    url: http://default:7420
  desktop:
    url: http://127.0.0.1:7500
`)

	flagURL = defaultURL
	resolveConfig()

	if flagURL != "http://127.0.0.1:7500" {
		t.Errorf("flagURL from profile: got %q, want %q", flagURL, "http://127.0.0.1:7500")
	}
}

// TestResolveConfigDefaultProfile verifies the "default" profile is used
// when active_profile is empty.
func TestResolveConfigDefaultProfile(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `
profiles:
  default:
    url: http://default-profile:5050
`)

	flagURL = defaultURL
	resolveConfig()

	if flagURL != "http://default-profile:5050" {
		t.Errorf("flagURL from default profile: got %q, want %q", flagURL, "http://default-profile:5050")
	}
}

// TestResolveConfigMalformedYAML verifies a broken file leaves the default.
func TestResolveConfigMalformedYAML(t *testing.T) {
	resetFlags(t)
	t.Setenv("GRAPH_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "url: [unclosed\n")

	flagURL = defaultURL
	resolveConfig()

	if flagURL != defaultURL {
		t.Errorf("expected default URL, got %q", flagURL)
	}
}
