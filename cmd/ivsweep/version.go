// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"github.com/spf13/cobra"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}
