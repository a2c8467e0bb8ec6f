// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging builds the CLI logger and keeps secrets out of what it
// prints. Dremio session tokens, bearer tokens and passwords in JSON bodies
// or key=value text are masked before any error reaches the terminal.
package logging

import "regexp"

var (
	reDremioToken = regexp.MustCompile(`(_dremio)([A-Za-z0-9._~+/=-]+)`)
	reBearer      = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONSecret  = regexp.MustCompile(`(?i)("(?:password|token)"\s*:\s*")([^"]*)(")`)
	reKeyValue    = regexp.MustCompile(`(?i)((?:password|token|pat)=)([^\s;&]+)`)
	reURLUserinfo = regexp.MustCompile(`(://)([^:/@\s]+):([^@/\s]+)(@)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := reDremioToken.ReplaceAllString(s, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reJSONSecret.ReplaceAllString(out, "$1***$3")
	out = reKeyValue.ReplaceAllString(out, "$1***")
	out = reURLUserinfo.ReplaceAllString(out, "$1*:*$4")
	return out
}
