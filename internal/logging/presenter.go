// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"dremio/cli/pkg/dremio"
)

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// hint returns the follow-up suggestion for an API error kind.
func hint(kind dremio.Kind) string {
	switch kind {
	case dremio.KindAuthentication:
		return "Run 'dremioctl login' again or check DREMIO_USER / DREMIO_PASSWORD"
	case dremio.KindCatalog:
		return "Check that the path exists and that parent spaces or folders were created"
	case dremio.KindQuery:
		return "Check the SQL statement; the coordinator rejected it before running a job"
	case dremio.KindJobStatus:
		return "The job is still running on the coordinator; raise job_poll.attempts or check the Jobs page"
	case dremio.KindDataset:
		return "Inspect the job in the Dremio UI for the failure reason"
	case dremio.KindDocumentation:
		return "The wiki may have been edited concurrently; re-run to pick up the new version"
	}
	return ""
}

// FormatAPIError renders a dremio.Error as a titled block with the server
// status, a suggestion and the masked technical details.
func FormatAPIError(err error) string {
	var e *dremio.Error
	if !errors.As(err, &e) {
		return Mask(err.Error())
	}

	var b strings.Builder
	b.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(titleFor(e.Kind)))
	b.WriteString("\n\n")
	b.WriteString(Mask(e.Message))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	b.WriteString("\n")
	if h := hint(e.Kind); h != "" {
		b.WriteString("\n")
		b.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ " + h))
		b.WriteString("\n")
	}
	if details := strings.TrimSpace(e.Body); details != "" {
		if len(details) > 300 {
			details = details[:300] + "..."
		}
		b.WriteString("\n")
		b.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Server response: " + Mask(details)))
	}
	return b.String()
}

func titleFor(kind dremio.Kind) string {
	switch kind {
	case dremio.KindAuthentication:
		return "Authentication Failed"
	case dremio.KindCatalog:
		return "Catalog Error"
	case dremio.KindQuery:
		return "Query Rejected"
	case dremio.KindJobStatus:
		return "Job Did Not Finish"
	case dremio.KindDataset:
		return "Dataset Error"
	case dremio.KindDocumentation:
		return "Documentation Error"
	}
	return "Error"
}
