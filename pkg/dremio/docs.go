// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Wiki is the collaboration wiki attached to a catalog element.
type Wiki struct {
	Text string `json:"text"`
	// Version is nil when the element has no wiki yet.
	Version *int `json:"version,omitempty"`
}

// GetDocumentation reads the wiki of an element. A 404 means no wiki exists
// yet and yields an empty Wiki with no version.
func (c *Client) GetDocumentation(ctx context.Context, id ElementID) (Wiki, error) {
	status, body, err := c.do(ctx, KindDocumentation, http.MethodGet, c.wikiURL(id), nil)
	if err != nil {
		return Wiki{}, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return Wiki{}, nil
	default:
		return Wiki{}, statusErr(KindDocumentation, "read wiki for "+string(id), status, body)
	}
	var w Wiki
	if err := json.Unmarshal(body, &w); err != nil {
		e := statusErr(KindDocumentation, "decode wiki for "+string(id), status, body)
		e.Err = err
		return Wiki{}, e
	}
	return w, nil
}

// CreateDocumentation writes markdown text as the wiki of an element. It reads
// the current version first and sends it back, so the write replaces the wiki
// the server holds; without a version the server creates a new wiki. A version
// read the server answers with an error counts as no version.
func (c *Client) CreateDocumentation(ctx context.Context, id ElementID, text string) error {
	c.log.Info("creating or replacing documentation", c.log.Args("id", string(id)))

	current, err := c.GetDocumentation(ctx, id)
	var e *Error
	if errors.As(err, &e) && e.Kind == KindDocumentation && e.StatusCode != 0 {
		c.log.Debug("no readable wiki version", c.log.Args("id", string(id), "status", e.StatusCode))
		current, err = Wiki{}, nil
	}
	if err != nil {
		return err
	}

	status, body, err := c.do(ctx, KindDocumentation, http.MethodPost, c.wikiURL(id), Wiki{Text: text, Version: current.Version})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		c.log.Error("documentation creation failed", c.log.Args("id", string(id), "status", status))
		return statusErr(KindDocumentation, "write wiki for "+string(id), status, body)
	}
	c.log.Info("documentation done", c.log.Args("id", string(id)))
	return nil
}
