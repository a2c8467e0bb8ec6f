// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import "strings"

// NormalizePath converts dotted or quoted SQL notation ("space"."folder".view)
// into the slash-delimited form the by-path endpoint expects.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, ".", "/")
	return strings.ReplaceAll(path, `"`, "")
}

// splitPath splits a slash-delimited path into its catalog segments.
func splitPath(path string) []string {
	return strings.Split(path, "/")
}
