// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import "context"

// API defines the Dremio operations automation depends on.
// *Client is the HTTP implementation; tests may substitute their own.
type API interface {
	GetToken(ctx context.Context) (string, error)

	CreateElement(ctx context.Context, kind ElementKind, nameOrPath string) (ElementID, error)
	DeleteElement(ctx context.Context, id ElementID) error
	ListCatalog(ctx context.Context) ([]Element, error)
	GetElement(ctx context.Context, path string) (*Element, error)
	GetElementID(ctx context.Context, path string) (ElementID, error)

	SubmitSQL(ctx context.Context, statement string) (jobID string, err error)
	RunSQL(ctx context.Context, statement string) (JobState, error)
	GetJob(ctx context.Context, jobID string) (*JobStatus, error)
	GetRunStatus(ctx context.Context, jobID string) (JobState, error)

	// CreateOrReplaceVDS saves a view and optionally attaches its wiki.
	CreateOrReplaceVDS(ctx context.Context, path, query, docs string) error
	// RefreshParquetPDS re-promotes files at path as a Parquet dataset.
	RefreshParquetPDS(ctx context.Context, path string) (ElementID, error)

	GetDocumentation(ctx context.Context, id ElementID) (Wiki, error)
	CreateDocumentation(ctx context.Context, id ElementID, text string) error
}

var _ API = (*Client)(nil)
