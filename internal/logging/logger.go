// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config log_level to a pterm level. Unknown values mean info.
func ParseLevel(s string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	}
	return pterm.LogLevelInfo
}

// NewLogger returns the logger handed to the API client. verbose forces debug
// unless the configured level is already more detailed.
func NewLogger(level string, verbose bool) *pterm.Logger {
	lvl := ParseLevel(level)
	if verbose && (lvl > pterm.LogLevelDebug || lvl == pterm.LogLevelDisabled) {
		lvl = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(lvl)
}
