// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package version holds build metadata stamped in with -ldflags.
package version

var (
	// Version is the release version, e.g. v0.3.0.
	Version = "unknown"
	// GitCommit is the short hash of the commit the binary was built from.
	GitCommit = "unknown"
)
