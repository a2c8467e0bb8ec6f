// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"net/http"
)

// SubmitSQL posts a statement to the SQL endpoint and returns the job id
// without waiting for the job.
func (c *Client) SubmitSQL(ctx context.Context, statement string) (string, error) {
	status, body, err := c.do(ctx, KindQuery, http.MethodPost, c.sqlURL(), map[string]string{"sql": statement})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", statusErr(KindQuery, "sql submission rejected", status, body)
	}
	jobID := decodeField(body, "id")
	if jobID == "" {
		return "", statusErr(KindQuery, "sql submission returned no job id", status, body)
	}
	c.log.Debug("sql submitted", c.log.Args("job", jobID))
	return jobID, nil
}

// RunSQL submits a statement and waits for its job to reach a terminal state.
//
// A rejected submission is a KindQuery error. A job that ran and ended FAILED
// or CANCELED is not an error: the state is returned for the caller to inspect.
func (c *Client) RunSQL(ctx context.Context, statement string) (JobState, error) {
	jobID, err := c.SubmitSQL(ctx, statement)
	if err != nil {
		return "", err
	}
	return c.GetRunStatus(ctx, jobID)
}
