// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"space.folder.view", "space/folder/view"},
		{`"my space"."folder".view`, "my space/folder/view"},
		{"already/slashed", "already/slashed"},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestByPathURL(t *testing.T) {
	c := New("http://dremio:9047", "u", "p")
	tests := []struct {
		path string
		want string
	}{
		{"space/view", "http://dremio:9047/api/v3/catalog/by-path/space/view"},
		{"my space/a#b", "http://dremio:9047/api/v3/catalog/by-path/my%20space/a%23b"},
	}
	for _, tt := range tests {
		if got := c.byPathURL(tt.path); got != tt.want {
			t.Errorf("byPathURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, splitPath("a/b/c")); diff != "" {
		t.Errorf("splitPath mismatch (-want +got):\n%s", diff)
	}
}

func TestElementURLs(t *testing.T) {
	c := New("http://dremio:9047", "u", "p")
	if got, want := c.elementURL("dremio:/s/t"), "http://dremio:9047/api/v3/catalog/dremio:%2Fs%2Ft"; got != want {
		t.Errorf("elementURL() = %q, want %q", got, want)
	}
	if got, want := c.wikiURL("abc"), "http://dremio:9047/api/v3/catalog/abc/collaboration/wiki"; got != want {
		t.Errorf("wikiURL() = %q, want %q", got, want)
	}
}
