// File: validation.go
// Title: Configuration Validation
// Description: Checks decoded configuration values and reports every
//              problem at once.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial rule-based validation
// - 2025-03-04 v0.2.0: Section checks aggregated with go-multierror

package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
	mdwlog "github.com/msto63/hasty/foundation/core/log"
)

// Validate checks all sections. The returned error carries
// CodeInvalidConfig and lists every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("general.log_level: %w", err))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		result = multierror.Append(result, fmt.Errorf("general.log_format: %w", err))
	}

	if c.Frontend.MaxSourceLength < 0 {
		result = multierror.Append(result, fmt.Errorf("frontend.max_source_length: must not be negative, got %d", c.Frontend.MaxSourceLength))
	}
	switch c.Frontend.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		result = multierror.Append(result, fmt.Errorf("frontend.color: unknown mode %q", c.Frontend.Color))
	}
	switch c.Frontend.Emit {
	case EmitTokens, EmitAST, EmitResolved:
	default:
		result = multierror.Append(result, fmt.Errorf("frontend.emit: unknown stage %q", c.Frontend.Emit))
	}

	if c.Watch.Debounce.Duration < 0 {
		result = multierror.Append(result, fmt.Errorf("watch.debounce: must not be negative, got %s", c.Watch.Debounce))
	}
	for _, ext := range c.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result = multierror.Append(result, fmt.Errorf("watch.extensions: %q must start with '.'", ext))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return mdwerror.Wrap(err, "invalid configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("problems", len(result.Errors))
	}
	return nil
}
