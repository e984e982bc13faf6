// File: discovery.go
// Title: Configuration Discovery
// Description: Locates the configuration file from the environment or the
//              working directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-03-04 v0.2.0: HASTY_CONFIG and hasty file names

package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the variable holding an explicit config path
const EnvConfigPath = "HASTY_CONFIG"

// SearchNames are the file names tried by Discover, in order
var SearchNames = []string{"hasty.toml", "hasty.yaml", ".hasty.toml"}

// Discover returns the first config file found in dir, or "" if none
// exists
func Discover(dir string) string {
	for _, name := range SearchNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// LoadFromEnv loads the file named by HASTY_CONFIG, or the first file
// Discover finds in the working directory. Without either it returns the
// defaults with environment overrides applied.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	if wd, err := os.Getwd(); err == nil {
		if path := Discover(wd); path != "" {
			return Load(path)
		}
	}

	return LoadFromString("", FormatTOML)
}
