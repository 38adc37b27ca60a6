// Package config provides the global configuration directory for canopy.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the canopy configuration directory.
//
// Resolution:
//   - $CANOPY_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/canopy if set (respects XDG on any platform)
//   - %AppData%/canopy on Windows
//   - ~/.config/canopy on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CANOPY_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "canopy")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "canopy")
		}
	}

	// macOS and Linux: ~/.config/canopy
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "canopy")
}
