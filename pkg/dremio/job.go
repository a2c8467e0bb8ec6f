// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// JobState is the server-reported state of an asynchronous SQL job.
type JobState string

// Terminal states. Any other value (RUNNING, ENQUEUED, PLANNING, ...) means
// the job is still in flight.
const (
	JobCompleted JobState = "COMPLETED"
	JobCanceled  JobState = "CANCELED"
	JobFailed    JobState = "FAILED"
)

// Terminal reports whether polling can stop at s.
func (s JobState) Terminal() bool {
	switch s {
	case JobCompleted, JobCanceled, JobFailed:
		return true
	}
	return false
}

// JobStatus is the body of GET /api/v3/job/{id}.
type JobStatus struct {
	JobState           JobState `json:"jobState"`
	RowCount           int64    `json:"rowCount,omitempty"`
	ErrorMessage       string   `json:"errorMessage,omitempty"`
	CancellationReason string   `json:"cancellationReason,omitempty"`
}

// GetJob fetches the current status of a job once.
func (c *Client) GetJob(ctx context.Context, jobID string) (*JobStatus, error) {
	status, body, err := c.do(ctx, KindJobStatus, http.MethodGet, c.jobURL(jobID), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(KindJobStatus, "get job "+jobID, status, body)
	}
	var js JobStatus
	if err := json.Unmarshal(body, &js); err != nil {
		return nil, wrap(KindJobStatus, "decode job status", err)
	}
	return &js, nil
}

// GetRunStatus polls a job until it reaches COMPLETED, CANCELED or FAILED and
// returns that state. By default it asks once per second for up to 300 attempts
// (see WithJobPolling). A non-200 answer does not stop the loop; running out of
// attempts is a KindJobStatus error carrying the last response body.
func (c *Client) GetRunStatus(ctx context.Context, jobID string) (JobState, error) {
	var (
		state      JobState
		lastStatus int
		lastBody   []byte
	)
	done, err := poll(ctx, c.jobPoll, func(attempt int) (bool, error) {
		status, body, err := c.do(ctx, KindJobStatus, http.MethodGet, c.jobURL(jobID), nil)
		if err != nil {
			return false, err
		}
		lastStatus, lastBody = status, body
		state = ""
		if status == http.StatusOK {
			var js JobStatus
			if json.Unmarshal(body, &js) == nil {
				state = js.JobState
			}
		}
		c.log.Trace("job status", c.log.Args("job", jobID, "attempt", attempt, "status", status, "state", string(state)))
		if c.observer != nil {
			c.observer(PollEvent{JobID: jobID, Attempt: attempt, Attempts: c.jobPoll.Attempts, State: state})
		}
		return state.Terminal(), nil
	})
	if err != nil {
		if KindOf(err) == "" {
			return "", wrap(KindJobStatus, "polling job "+jobID+" interrupted", err)
		}
		return "", err
	}
	if !done {
		msg := fmt.Sprintf("job %s not finished after %d attempts", jobID, c.jobPoll.Attempts)
		if state != "" {
			msg += " (last state " + string(state) + ")"
		}
		return "", statusErr(KindJobStatus, msg, lastStatus, lastBody)
	}
	c.log.Debug("job finished", c.log.Args("job", jobID, "state", string(state)))
	return state, nil
}
