// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the hasty toolchain configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2025-03-04 v0.2.0: Typed sections

// Package config loads the hasty toolchain configuration from TOML or
// YAML files.
//
// A complete TOML file looks like this:
//
//	[general]
//	log_level = "info"
//	log_format = "console"
//
//	[frontend]
//	max_source_length = 1048576
//	color = "auto"        # auto, always, never
//	emit = "resolved"     # tokens, ast, resolved
//
//	[watch]
//	debounce = "200ms"
//	extensions = [".hy"]
//	recursive = true
//
// Missing values take their defaults. HASTY_LOG_LEVEL, HASTY_LOG_FORMAT
// and HASTY_COLOR override the file. LoadFromEnv reads the file named by
// HASTY_CONFIG or the first of hasty.toml, hasty.yaml and .hasty.toml in
// the working directory.
//
// Invalid values are reported together in one error with code
// CodeInvalidConfig.
package config
