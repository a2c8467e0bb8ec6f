// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

// wikiStore is a fake wiki endpoint that bumps the version on every write.
type wikiStore struct {
	version *int
	text    string
}

func (s *wikiStore) get(w http.ResponseWriter, r *http.Request) {
	if s.version == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"errorMessage": "no wiki"})
		return
	}
	writeJSON(w, http.StatusOK, Wiki{Text: s.text, Version: s.version})
}

func (s *wikiStore) post(w http.ResponseWriter, r *http.Request) {
	var in Wiki
	_ = json.NewDecoder(r.Body).Decode(&in)
	next := 0
	if s.version != nil {
		next = *s.version + 1
	}
	s.version, s.text = &next, in.Text
	writeJSON(w, http.StatusOK, Wiki{Text: s.text, Version: s.version})
}

func TestCreateDocumentationRoundTripsVersion(t *testing.T) {
	f := newFakeDremio(t)
	store := &wikiStore{}
	f.handle(http.MethodGet, "/api/v3/catalog/vds-1/collaboration/wiki", store.get)
	f.handle(http.MethodPost, "/api/v3/catalog/vds-1/collaboration/wiki", store.post)

	c := f.client()
	if err := c.CreateDocumentation(t.Context(), "vds-1", "first"); err != nil {
		t.Fatalf("first CreateDocumentation() error = %v", err)
	}
	if err := c.CreateDocumentation(t.Context(), "vds-1", "second"); err != nil {
		t.Fatalf("second CreateDocumentation() error = %v", err)
	}

	posts := f.requests(http.MethodPost, "/api/v3/catalog/vds-1/collaboration/wiki")
	if len(posts) != 2 {
		t.Fatalf("wiki posts = %d, want 2", len(posts))
	}
	// Version 0 is a real version and must be sent back.
	want := []string{`{"text":"first"}`, `{"text":"second","version":0}`}
	for i, p := range posts {
		if p.Body != want[i] {
			t.Errorf("post %d body = %s, want %s", i, p.Body, want[i])
		}
	}
	if store.text != "second" || *store.version != 1 {
		t.Errorf("store = %q v%d, want second v1", store.text, *store.version)
	}
}

func TestGetDocumentation(t *testing.T) {
	five := 5
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    Wiki
	}{
		{name: "existing", handler: respond(http.StatusOK, Wiki{Text: "hello", Version: &five}), want: Wiki{Text: "hello", Version: &five}},
		{name: "missing is empty", handler: respond(http.StatusNotFound, nil), want: Wiki{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeDremio(t)
			f.handle(http.MethodGet, "/api/v3/catalog/x/collaboration/wiki", tt.handler)

			got, err := f.client().GetDocumentation(t.Context(), "x")
			if err != nil {
				t.Fatalf("GetDocumentation() error = %v", err)
			}
			if got.Text != tt.want.Text || (got.Version == nil) != (tt.want.Version == nil) ||
				(got.Version != nil && *got.Version != *tt.want.Version) {
				t.Errorf("GetDocumentation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCreateDocumentationRejected(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/catalog/x/collaboration/wiki", respond(http.StatusNotFound, nil))
	f.handle(http.MethodPost, "/api/v3/catalog/x/collaboration/wiki", respond(http.StatusConflict, map[string]string{"errorMessage": "stale version"}))

	err := f.client().CreateDocumentation(t.Context(), "x", "text")
	if !errors.Is(err, ErrDocumentation) {
		t.Fatalf("CreateDocumentation() error = %v, want documentation error", err)
	}
	if !errors.Is(err, &Error{Kind: KindDocumentation, StatusCode: http.StatusConflict}) {
		t.Errorf("error %v should carry status 409", err)
	}
}

func TestGetDocumentationErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{name: "server error", handler: respond(http.StatusInternalServerError, map[string]string{"errorMessage": "boom"}), wantStatus: http.StatusInternalServerError},
		{name: "forbidden", handler: respond(http.StatusForbidden, nil), wantStatus: http.StatusForbidden},
		{name: "undecodable body", handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("<html>")) }, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeDremio(t)
			f.handle(http.MethodGet, "/api/v3/catalog/x/collaboration/wiki", tt.handler)

			_, err := f.client().GetDocumentation(t.Context(), "x")
			var e *Error
			if !errors.As(err, &e) || e.Kind != KindDocumentation {
				t.Fatalf("GetDocumentation() error = %v, want documentation error", err)
			}
			if e.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", e.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestCreateDocumentationUnreadableVersion(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/catalog/x/collaboration/wiki", respond(http.StatusInternalServerError, nil))
	f.handle(http.MethodPost, "/api/v3/catalog/x/collaboration/wiki", respond(http.StatusOK, map[string]any{"text": "text", "version": 0}))

	if err := f.client().CreateDocumentation(t.Context(), "x", "text"); err != nil {
		t.Fatalf("CreateDocumentation() error = %v", err)
	}
	posts := f.requests(http.MethodPost, "/api/v3/catalog/x/collaboration/wiki")
	if len(posts) != 1 || posts[0].Body != `{"text":"text"}` {
		t.Errorf("wiki posts = %+v, want one post without version", posts)
	}
}
