// Package main is the entry point for dremioctl, a command-line client for the
// Dremio REST management API.
package main

import (
	"dremio/cli/cmd"
)

func main() {
	cmd.Execute()
}
