// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/googleapis/gax-go/v2"
)

func jobState(s JobState) http.HandlerFunc {
	return respond(http.StatusOK, map[string]any{"jobState": s})
}

func TestJobStateTerminal(t *testing.T) {
	tests := []struct {
		state JobState
		want  bool
	}{
		{JobCompleted, true},
		{JobCanceled, true},
		{JobFailed, true},
		{"RUNNING", false},
		{"ENQUEUED", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("JobState(%q).Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestDefaultJobPolling(t *testing.T) {
	p := DefaultJobPolling()
	if p.Attempts != 300 || p.Interval != time.Second || p.Backoff != nil {
		t.Errorf("DefaultJobPolling() = %+v, want 300 attempts at 1s", p)
	}
}

func TestGetRunStatusStopsAtTerminalState(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", sequence(
		jobState("ENQUEUED"),
		jobState("RUNNING"),
		jobState(JobCompleted),
	))

	interval := 20 * time.Millisecond
	c := f.client(WithJobPolling(PollPolicy{Attempts: 300, Interval: interval}))
	start := time.Now()
	state, err := c.GetRunStatus(t.Context(), "job-1")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("GetRunStatus() error = %v", err)
	}
	if state != JobCompleted {
		t.Errorf("GetRunStatus() = %q, want COMPLETED", state)
	}
	if got := len(f.requests(http.MethodGet, "/api/v3/job/job-1")); got != 3 {
		t.Errorf("polls = %d, want 3", got)
	}
	if elapsed < 2*interval {
		t.Errorf("elapsed %v, want at least two intervals", elapsed)
	}
	if elapsed > 100*interval {
		t.Errorf("elapsed %v, polling should stop at the terminal state", elapsed)
	}
}

func TestGetRunStatusKeepsPollingThroughErrors(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", sequence(
		respond(http.StatusInternalServerError, map[string]string{"errorMessage": "busy"}),
		respond(http.StatusNotFound, nil),
		jobState(JobFailed),
	))

	state, err := f.client().GetRunStatus(t.Context(), "job-1")
	if err != nil {
		t.Fatalf("GetRunStatus() error = %v", err)
	}
	if state != JobFailed {
		t.Errorf("GetRunStatus() = %q, want FAILED", state)
	}
}

func TestGetRunStatusExhausted(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantMsg  string
		wantBody string
	}{
		{name: "still running", handler: jobState("RUNNING"), wantMsg: "last state RUNNING"},
		{name: "error on final attempt", handler: respond(http.StatusBadGateway, map[string]string{"errorMessage": "gateway down"}), wantBody: "gateway down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeDremio(t)
			f.handle(http.MethodGet, "/api/v3/job/job-1", tt.handler)

			c := f.client(WithJobPolling(PollPolicy{Attempts: 5, Interval: time.Millisecond}))
			_, err := c.GetRunStatus(t.Context(), "job-1")

			var e *Error
			if !errors.As(err, &e) || e.Kind != KindJobStatus {
				t.Fatalf("GetRunStatus() error = %v, want job status error", err)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want it to contain %q", e.Message, tt.wantMsg)
			}
			if !strings.Contains(e.Body, tt.wantBody) {
				t.Errorf("Body = %q, want it to contain %q", e.Body, tt.wantBody)
			}
			if got := len(f.requests(http.MethodGet, "/api/v3/job/job-1")); got != 5 {
				t.Errorf("polls = %d, want 5", got)
			}
		})
	}
}

func TestGetRunStatusObserver(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", sequence(
		jobState("RUNNING"),
		respond(http.StatusInternalServerError, nil),
		jobState(JobCanceled),
	))

	var events []PollEvent
	c := f.client(WithPollObserver(func(ev PollEvent) { events = append(events, ev) }))
	if _, err := c.GetRunStatus(t.Context(), "job-1"); err != nil {
		t.Fatalf("GetRunStatus() error = %v", err)
	}

	want := []JobState{"RUNNING", "", JobCanceled}
	if len(events) != len(want) {
		t.Fatalf("events = %d, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev.JobID != "job-1" || ev.Attempt != i+1 || ev.Attempts != 300 || ev.State != want[i] {
			t.Errorf("event %d = %+v, want attempt %d state %q", i, ev, i+1, want[i])
		}
	}
}

func TestGetRunStatusContextCanceled(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", jobState("RUNNING"))

	ctx, cancel := context.WithCancel(t.Context())
	c := f.client(
		WithJobPolling(PollPolicy{Attempts: 300, Interval: time.Hour}),
		WithPollObserver(func(PollEvent) { cancel() }),
	)

	_, err := c.GetRunStatus(ctx, "job-1")
	if !errors.Is(err, ErrJobStatus) {
		t.Fatalf("GetRunStatus() error = %v, want job status error", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetRunStatus() error = %v, want context.Canceled in chain", err)
	}
}

func TestGetRunStatusBackoff(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", sequence(
		jobState("RUNNING"),
		jobState("RUNNING"),
		jobState("RUNNING"),
		jobState(JobCompleted),
	))

	policy := PollPolicy{
		Attempts: 10,
		Backoff:  &gax.Backoff{Initial: time.Millisecond, Max: 4 * time.Millisecond, Multiplier: 2},
	}
	c := f.client(WithJobPolling(policy))
	state, err := c.GetRunStatus(t.Context(), "job-1")
	if err != nil {
		t.Fatalf("GetRunStatus() error = %v", err)
	}
	if state != JobCompleted {
		t.Errorf("GetRunStatus() = %q, want COMPLETED", state)
	}
	// The shared policy must not carry state between loops.
	if policy.Backoff.Initial != time.Millisecond {
		t.Errorf("policy backoff mutated: %+v", policy.Backoff)
	}
}

func TestGetJob(t *testing.T) {
	f := newFakeDremio(t)
	f.handle(http.MethodGet, "/api/v3/job/job-1", respond(http.StatusOK, map[string]any{
		"jobState":     "FAILED",
		"rowCount":     0,
		"errorMessage": "Table 'missing' not found",
	}))
	f.handle(http.MethodGet, "/api/v3/job/job-2", respond(http.StatusNotFound, map[string]string{"errorMessage": "no job"}))

	c := f.client()
	js, err := c.GetJob(t.Context(), "job-1")
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if js.JobState != JobFailed || js.ErrorMessage != "Table 'missing' not found" {
		t.Errorf("GetJob() = %+v", js)
	}

	if _, err := c.GetJob(t.Context(), "job-2"); !IsNotFound(err) {
		t.Errorf("GetJob() error = %v, want not found", err)
	}
}
