// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindAuthentication indicates the login exchange failed.
	KindAuthentication Kind = "authentication"
	// KindCatalog indicates a catalog create, delete or lookup failure.
	KindCatalog Kind = "catalog"
	// KindQuery indicates the SQL endpoint rejected a statement.
	KindQuery Kind = "query"
	// KindJobStatus indicates job polling gave up before a terminal state.
	KindJobStatus Kind = "job_status"
	// KindDataset indicates a VDS or PDS orchestration failure.
	KindDataset Kind = "dataset"
	// KindDocumentation indicates a wiki read or write failure.
	KindDocumentation Kind = "documentation"
)

// Sentinels for errors.Is matching on kind alone.
var (
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrCatalog        = &Error{Kind: KindCatalog}
	ErrQuery          = &Error{Kind: KindQuery}
	ErrJobStatus      = &Error{Kind: KindJobStatus}
	ErrDataset        = &Error{Kind: KindDataset}
	ErrDocumentation  = &Error{Kind: KindDocumentation}
)

// Error wraps a failure with its kind, a human-friendly message and, when the
// failure came from the server, the HTTP status and raw response body.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. A target carrying a
// status code must match it too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

func wrap(kind Kind, msg string, err error) *Error { return &Error{Kind: kind, Message: msg, Err: err} }
func newErr(kind Kind, msg string) *Error           { return &Error{Kind: kind, Message: msg} }

func statusErr(kind Kind, msg string, status int, body []byte) *Error {
	return &Error{Kind: kind, Message: msg, StatusCode: status, Body: string(body)}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err came from a 404 response.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
