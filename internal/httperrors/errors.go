// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns transport failures talking to a Dremio coordinator
// into troubleshooting hints.
package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category is a coarse classification of a network failure.
type Category int

const (
	CategoryNone Category = iota
	CategoryTimeout
	CategoryDNS
	CategoryRefused
	CategoryTLS
	CategoryOther
)

// Classify inspects err for a transport-level cause. Errors that carry no
// network cause (HTTP status failures, canceled contexts) are CategoryNone.
func Classify(err error) Category {
	if err == nil || errors.Is(err, context.Canceled) {
		return CategoryNone
	}
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return CategoryNone
	}
	switch {
	case isTimeoutError(err):
		return CategoryTimeout
	case isDNSError(err):
		return CategoryDNS
	case isConnectionRefusedError(err):
		return CategoryRefused
	case isTLSError(err):
		return CategoryTLS
	}
	return CategoryOther
}

// FormatNetworkError prints a hint for err when it is a network failure and
// returns err wrapped; other errors are returned unchanged.
func FormatNetworkError(err error, host, action string) error {
	cat := Classify(err)
	if cat == CategoryNone {
		return err
	}
	display(cat, HostOf(host), action)
	return fmt.Errorf("network error: %w", err)
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLSError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "tls") ||
		strings.Contains(s, "x509") ||
		strings.Contains(s, "certificate") ||
		strings.Contains(s, "handshake")
}

func display(cat Category, host, action string) {
	switch cat {
	case CategoryTimeout:
		pterm.Printf("⏱️  Timed out reaching %s while %s\n\n", host, action)
		pterm.Println("The coordinator took too long to answer. Check that it is not overloaded")
		pterm.Println("and that no proxy is holding the connection open.")
	case CategoryDNS:
		pterm.Printf("🌐 Cannot resolve %s while %s\n\n", host, action)
		pterm.Println("Check the host name in 'dremioctl login' or DREMIO_HOST.")
	case CategoryRefused:
		pterm.Printf("🚫 Connection refused by %s while %s\n\n", host, action)
		pterm.Println("Nothing is listening there. Is the coordinator running, and is the port")
		pterm.Println("right? The REST API listens on 9047 by default.")
	case CategoryTLS:
		pterm.Printf("🔒 Secure connection to %s failed while %s\n\n", host, action)
		pterm.Println("Check the certificate, or use http:// for a coordinator without TLS.")
	default:
		pterm.Printf("❌ Cannot reach %s while %s\n\n", host, action)
		pterm.Println("Check your network connection and the configured host.")
	}
	pterm.Println()
}

// HostOf extracts the host:port from a base URL for messages.
func HostOf(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return "the Dremio server"
	}
	return u.Host
}
