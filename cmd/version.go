// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "runtime"

// Version is set at build time:
//
//	go build -ldflags "-X dremio/cli/cmd.Version=1.4.0"
var Version = "0.0.0-dev"

func versionString() string {
	return "dremioctl " + Version + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
