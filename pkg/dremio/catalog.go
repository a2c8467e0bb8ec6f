// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ElementID is a service-assigned catalog identifier.
type ElementID string

// AlreadyExists is returned by CreateElement in place of an id when the
// server answers 409 Conflict. It is never a valid id.
const AlreadyExists ElementID = "already exists"

// ElementKind selects how CreateElement addresses the new element.
type ElementKind string

const (
	// ElementSpace is a top-level space, created by flat name.
	ElementSpace ElementKind = "space"
	// ElementFolder is a folder inside a space or source, created by path.
	ElementFolder ElementKind = "folder"
)

// Element is a catalog entry as returned by the by-path endpoint.
type Element struct {
	ID         ElementID `json:"id"`
	EntityType string    `json:"entityType"`
	Type       string    `json:"type,omitempty"`
	Path       []string  `json:"path,omitempty"`
	Tag        string    `json:"tag,omitempty"`
}

type createElementRequest struct {
	EntityType ElementKind `json:"entityType"`
	Name       string      `json:"name,omitempty"`
	Path       []string    `json:"path,omitempty"`
}

// CreateElement creates a space (by name) or a folder (by slash-delimited
// path). A 409 Conflict is success and yields AlreadyExists instead of an id,
// so repeating the call is harmless.
func (c *Client) CreateElement(ctx context.Context, kind ElementKind, nameOrPath string) (ElementID, error) {
	req := createElementRequest{EntityType: kind}
	switch kind {
	case ElementSpace:
		req.Name = nameOrPath
	case ElementFolder:
		req.Path = splitPath(nameOrPath)
	default:
		return "", newErr(KindCatalog, fmt.Sprintf("cannot create element of kind %q", kind))
	}

	status, body, err := c.do(ctx, KindCatalog, http.MethodPost, c.catalogURL(), req)
	if err != nil {
		return "", err
	}
	switch status {
	case http.StatusOK:
		if id := decodeField(body, "id"); id != "" {
			c.log.Info("element created", c.log.Args("kind", string(kind), "name", nameOrPath, "id", id))
			return ElementID(id), nil
		}
		return "", statusErr(KindCatalog, "create "+string(kind)+" returned no id", status, body)
	case http.StatusConflict:
		c.log.Debug("element already exists", c.log.Args("kind", string(kind), "name", nameOrPath))
		return AlreadyExists, nil
	default:
		return "", statusErr(KindCatalog, "create "+string(kind)+" "+nameOrPath, status, body)
	}
}

// DeleteElement removes an element by id. Only 204 No Content succeeds.
func (c *Client) DeleteElement(ctx context.Context, id ElementID) error {
	status, body, err := c.do(ctx, KindCatalog, http.MethodDelete, c.elementURL(id), nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return statusErr(KindCatalog, "delete "+string(id), status, body)
	}
	return nil
}

// ListCatalog returns the top-level catalog entries (spaces, sources and the
// home space) visible to the caller.
func (c *Client) ListCatalog(ctx context.Context) ([]Element, error) {
	status, body, err := c.do(ctx, KindCatalog, http.MethodGet, c.catalogURL(), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(KindCatalog, "list catalog", status, body)
	}
	var resp struct {
		Data []Element `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrap(KindCatalog, "decode catalog", err)
	}
	return resp.Data, nil
}

// GetElement looks up an element by path once, without retrying.
// The path is normalised first (see NormalizePath).
func (c *Client) GetElement(ctx context.Context, path string) (*Element, error) {
	path = NormalizePath(path)
	status, body, err := c.do(ctx, KindCatalog, http.MethodGet, c.byPathURL(path), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(KindCatalog, "lookup "+path, status, body)
	}
	var el Element
	if err := json.Unmarshal(body, &el); err != nil {
		return nil, wrap(KindCatalog, "decode element", err)
	}
	return &el, nil
}

// GetElementID resolves a path to its id. It normalises the path, then asks
// the by-path endpoint up to ten times, half a second apart, while the answer
// carries no id (see WithLookupPolling). This absorbs the catalog's lag right
// after an element is created.
func (c *Client) GetElementID(ctx context.Context, path string) (ElementID, error) {
	path = NormalizePath(path)
	url := c.byPathURL(path)

	var (
		id         string
		lastStatus int
		lastBody   []byte
	)
	found, err := poll(ctx, c.lookupPoll, func(attempt int) (bool, error) {
		status, body, err := c.do(ctx, KindCatalog, http.MethodGet, url, nil)
		if err != nil {
			return false, err
		}
		lastStatus, lastBody = status, body
		if status == http.StatusOK {
			id = decodeField(body, "id")
		}
		c.log.Trace("element lookup", c.log.Args("path", path, "attempt", attempt, "status", status))
		return id != "", nil
	})
	if err != nil {
		if KindOf(err) == "" {
			return "", wrap(KindCatalog, "lookup "+path+" interrupted", err)
		}
		return "", err
	}
	if !found {
		return "", statusErr(KindCatalog, "no element at "+path, lastStatus, lastBody)
	}
	return ElementID(id), nil
}
