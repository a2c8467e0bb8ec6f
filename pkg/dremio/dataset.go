// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// CreateOrReplaceVDS saves query as a virtual dataset at path, replacing any
// existing view. When docs is non-empty it is attached as the dataset's wiki
// once the view exists. A job that does not complete (FAILED or CANCELED) is a
// KindDataset error naming the state.
func (c *Client) CreateOrReplaceVDS(ctx context.Context, path, query, docs string) error {
	c.log.Info("creating or replacing vds", c.log.Args("path", path))

	state, err := c.RunSQL(ctx, fmt.Sprintf("CREATE OR REPLACE VDS %s AS %s", path, query))
	if err != nil {
		return err
	}
	if state != JobCompleted {
		c.log.Error("vds creation failed", c.log.Args("path", path, "state", string(state)))
		return newErr(KindDataset, fmt.Sprintf("create vds %s ended %s", path, state))
	}

	if docs != "" {
		id, err := c.GetElementID(ctx, path)
		if err != nil {
			return err
		}
		if err := c.CreateDocumentation(ctx, id, docs); err != nil {
			return err
		}
	}
	c.log.Info("vds done", c.log.Args("path", path))
	return nil
}

type refreshPDSRequest struct {
	EntityType string    `json:"entityType"`
	ID         ElementID `json:"id"`
	Path       []string  `json:"path"`
	Type       string    `json:"type"`
	Format     struct {
		Type string `json:"type"`
	} `json:"format"`
}

// RefreshParquetPDS promotes the files at path to a Parquet physical dataset,
// dropping any previous promotion first so the schema is read afresh.
//
// Existence is decided from the looked-up id: an id that embeds the path is
// the unpromoted file or folder and is reused as is; any other id is an
// existing dataset, which is deleted (a delete the server refuses is ignored)
// before the id is looked up again. Returns the id of the promoted dataset.
func (c *Client) RefreshParquetPDS(ctx context.Context, path string) (ElementID, error) {
	path = NormalizePath(path)

	c.log.Info("checking existing pds", c.log.Args("path", path))
	oldID, err := c.GetElementID(ctx, path)
	if err != nil {
		return "", err
	}

	id := oldID
	if !strings.Contains(string(oldID), path) {
		c.log.Info("removing old pds", c.log.Args("path", path, "id", string(oldID)))
		if err := c.DeleteElement(ctx, oldID); err != nil {
			var e *Error
			if !errors.As(err, &e) || e.Kind != KindCatalog || e.StatusCode == 0 {
				return "", err
			}
			c.log.Info("old pds not found", c.log.Args("path", path))
		}
		if id, err = c.GetElementID(ctx, path); err != nil {
			return "", err
		}
	} else {
		c.log.Info("pds not promoted yet", c.log.Args("path", path))
	}

	req := refreshPDSRequest{
		EntityType: "dataset",
		ID:         id,
		Path:       splitPath(path),
		Type:       "PHYSICAL_DATASET",
	}
	req.Format.Type = "Parquet"

	c.log.Info("creating pds", c.log.Args("path", path))
	status, body, err := c.do(ctx, KindDataset, http.MethodPost, c.elementURL(id), req)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", statusErr(KindDataset, "promote "+path, status, body)
	}
	newID := ElementID(decodeField(body, "id"))
	if newID == "" {
		newID = id
	}
	c.log.Info("pds done", c.log.Args("path", path, "id", string(newID)))
	return newID, nil
}
