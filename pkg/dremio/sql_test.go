// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestRunSQL(t *testing.T) {
	tests := []struct {
		name  string
		final JobState
	}{
		{name: "completed", final: JobCompleted},
		{name: "failed job is returned, not raised", final: JobFailed},
		{name: "canceled job is returned", final: JobCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeDremio(t)
			f.handle(http.MethodPost, "/api/v3/sql", func(w http.ResponseWriter, r *http.Request) {
				var got map[string]string
				_ = json.NewDecoder(r.Body).Decode(&got)
				if got["sql"] != "SELECT 1" {
					t.Errorf("sql = %q, want SELECT 1", got["sql"])
				}
				writeJSON(w, http.StatusOK, map[string]string{"id": "job-7"})
			})
			f.handle(http.MethodGet, "/api/v3/job/job-7", sequence(jobState("RUNNING"), jobState(tt.final)))

			state, err := f.client().RunSQL(t.Context(), "SELECT 1")
			if err != nil {
				t.Fatalf("RunSQL() error = %v", err)
			}
			if state != tt.final {
				t.Errorf("RunSQL() = %q, want %q", state, tt.final)
			}
		})
	}
}

func TestRunSQLRejected(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodPost, "/api/v3/sql", respond(http.StatusBadRequest, map[string]string{"errorMessage": "PARSE ERROR"}))

	_, err := f.client().RunSQL(t.Context(), "SELEC 1")
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindQuery {
		t.Fatalf("RunSQL() error = %v, want query error", err)
	}
	if e.StatusCode != http.StatusBadRequest || !strings.Contains(e.Body, "PARSE ERROR") {
		t.Errorf("error = %+v, want status 400 with body", e)
	}
	for _, c := range f.allCalls() {
		if strings.HasPrefix(c.Path, "/api/v3/job/") {
			t.Errorf("job polled after rejected submission: %s", c.Path)
		}
	}
}

func TestSubmitSQLWithoutJobID(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodPost, "/api/v3/sql", respond(http.StatusOK, map[string]string{}))

	if _, err := f.client().SubmitSQL(t.Context(), "SELECT 1"); KindOf(err) != KindQuery {
		t.Fatalf("SubmitSQL() error = %v, want query error", err)
	}
}
