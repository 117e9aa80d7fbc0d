package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
author = "jane"
keycode = "KC_NO"

[overrides]
"nuphy_air60_v2" = "LAYOUT_60_ansi_split_rshift"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Author != "jane" {
		t.Errorf("Author = %q, want %q", cfg.Author, "jane")
	}
	if cfg.Keycode != "KC_NO" {
		t.Errorf("Keycode = %q, want %q", cfg.Keycode, "KC_NO")
	}
	if got := cfg.Overrides["nuphy_air60_v2"]; got != "LAYOUT_60_ansi_split_rshift" {
		t.Errorf("override = %q, want %q", got, "LAYOUT_60_ansi_split_rshift")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Author != "" || cfg.Keycode != "" || cfg.Overrides != nil {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`author = `), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Fatal("loadConfigFile succeeded on malformed TOML, want error")
	}
}

func TestConfigPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := configPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg", "via2qmk", "config.toml")
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
