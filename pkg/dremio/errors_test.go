// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: newErr(KindDataset, "create vds a ended FAILED"), want: "dataset: create vds a ended FAILED"},
		{name: "with status and body", err: statusErr(KindCatalog, "delete x", 404, []byte("gone")), want: "catalog: delete x (status 404): gone"},
		{name: "with cause", err: wrap(KindQuery, "POST /sql", io.ErrUnexpectedEOF), want: "query: POST /sql: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("apply: %w", statusErr(KindCatalog, "lookup", 404, nil))

	if !errors.Is(err, ErrCatalog) {
		t.Error("should match kind sentinel")
	}
	if errors.Is(err, ErrDataset) {
		t.Error("should not match another kind")
	}
	if !errors.Is(err, &Error{Kind: KindCatalog, StatusCode: 404}) {
		t.Error("should match kind and status")
	}
	if errors.Is(err, &Error{Kind: KindCatalog, StatusCode: 500}) {
		t.Error("should not match a different status")
	}
	if !errors.Is(wrap(KindQuery, "x", io.EOF), io.EOF) {
		t.Error("cause should be reachable")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("x: %w", ErrJobStatus)); got != KindJobStatus {
		t.Errorf("KindOf() = %q, want job_status", got)
	}
	if got := KindOf(io.EOF); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
	if IsNotFound(nil) || IsNotFound(newErr(KindCatalog, "x")) {
		t.Error("IsNotFound should need a 404")
	}
}
