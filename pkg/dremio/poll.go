// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"time"

	"github.com/googleapis/gax-go/v2"
)

// PollPolicy bounds a polling loop.
type PollPolicy struct {
	// Attempts is the maximum number of requests; values below 1 mean 1.
	Attempts int
	// Interval is the fixed pause between attempts when Backoff is nil.
	Interval time.Duration
	// Backoff, when set, replaces Interval with exponential pauses. Each loop
	// works on its own copy, so one policy can be shared by many calls.
	Backoff *gax.Backoff
}

// DefaultJobPolling matches the server-side job lifecycle: one status request
// per second for five minutes.
func DefaultJobPolling() PollPolicy {
	return PollPolicy{Attempts: 300, Interval: time.Second}
}

// DefaultLookupPolling covers the catalog's lag between creating an element
// and serving it by path.
func DefaultLookupPolling() PollPolicy {
	return PollPolicy{Attempts: 10, Interval: 500 * time.Millisecond}
}

// PollEvent describes one job status attempt.
type PollEvent struct {
	JobID   string
	Attempt int
	// Attempts is the configured budget.
	Attempts int
	// State is empty when the attempt got no usable status.
	State JobState
}

// poll calls try until it reports done, returns an error, or the attempt
// budget runs out. It sleeps between attempts, never after the last one.
// The returned bool is false when the budget was exhausted.
func poll(ctx context.Context, p PollPolicy, try func(attempt int) (bool, error)) (bool, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var bo *gax.Backoff
	if p.Backoff != nil {
		cp := *p.Backoff
		bo = &cp
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		done, err := try(attempt)
		if err != nil || done {
			return done, err
		}
		if attempt == attempts {
			break
		}
		pause := p.Interval
		if bo != nil {
			pause = bo.Pause()
		}
		if err := sleep(ctx, pause); err != nil {
			return false, err
		}
	}
	return false, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
