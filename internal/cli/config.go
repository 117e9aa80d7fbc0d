package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds converter defaults loaded from the user's config file.
//
// The file lives at ~/.config/via2qmk/config.toml (XDG_CONFIG_HOME is
// honored) and every field is optional:
//
//	author = "jane"
//	keycode = "KC_NO"
//
//	[overrides]
//	"nuphy_air60_v2" = "LAYOUT_60_ansi_split_rshift"
type Config struct {
	// Author is written into generated keymaps.
	Author string `toml:"author"`

	// Keycode is the placeholder keycode for generated layers.
	Keycode string `toml:"keycode"`

	// Overrides maps keyboard slugs to layout identifiers, forcing a layout
	// for boards the classifier gets wrong. An explicit --layout flag still
	// wins over an override from here.
	Overrides map[string]string `toml:"overrides"`
}

// configPath returns the config file location using the XDG convention.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user's config file. A missing file (or an
// undeterminable home directory) yields the zero config, not an error; a
// present but malformed file does error, since silently ignoring it would
// hide typos in overrides.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
