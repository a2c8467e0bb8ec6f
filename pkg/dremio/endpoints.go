// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"net/url"
	"strings"
)

// Endpoints contains the REST API paths, relative to the host.
type Endpoints struct {
	Login         string // e.g., "/apiv2/login"
	SQL           string // e.g., "/api/v3/sql"
	Job           string // e.g., "/api/v3/job"
	Catalog       string // e.g., "/api/v3/catalog"
	CatalogByPath string // e.g., "/api/v3/catalog/by-path"
}

// DefaultEndpoints returns the paths served by Dremio's v2 login and v3 REST API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:         "/apiv2/login",
		SQL:           "/api/v3/sql",
		Job:           "/api/v3/job",
		Catalog:       "/api/v3/catalog",
		CatalogByPath: "/api/v3/catalog/by-path",
	}
}

func (c *Client) loginURL() string { return c.host + c.endpoints.Login }
func (c *Client) sqlURL() string   { return c.host + c.endpoints.SQL }

func (c *Client) jobURL(jobID string) string {
	return c.host + c.endpoints.Job + "/" + url.PathEscape(jobID)
}

func (c *Client) catalogURL() string { return c.host + c.endpoints.Catalog }

// elementURL escapes the id as a single path segment; PDS ids embed slashes.
func (c *Client) elementURL(id ElementID) string {
	return c.catalogURL() + "/" + url.PathEscape(string(id))
}

func (c *Client) wikiURL(id ElementID) string {
	return c.elementURL(id) + "/collaboration/wiki"
}

// byPathURL expects an already normalised, slash-delimited path.
func (c *Client) byPathURL(path string) string {
	segs := splitPath(path)
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return c.host + c.endpoints.CatalogByPath + "/" + strings.Join(segs, "/")
}
