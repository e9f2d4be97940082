// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/visa"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List instrument resources ivsweep can open",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch backend {
			case visa.BackendAll, visa.BackendSerial, visa.BackendSim:
			default:
				return fmt.Errorf("%w %q", visa.ErrUnknownBackend, backend)
			}

			if backend == visa.BackendAll || backend == visa.BackendSerial {
				infos, err := visa.ListPorts()
				if err != nil {
					// Annotation problems are cosmetic; the ports still open.
					logrus.Warnf("incomplete port metadata: %v", err)
				}
				cmd.Println(bold("Serial:"))
				if len(infos) == 0 {
					cmd.Println("  (no serial ports found)")
				}
				for _, info := range infos {
					cmd.Printf("  %s\n", color.GreenString("%s", info.Resource))
					cmd.Printf("    %s\n", info.String())
				}
				cmd.Println()
			}

			if backend == visa.BackendAll || backend == visa.BackendSim {
				sims, err := visa.Resources(visa.BackendSim)
				if err != nil {
					return err
				}
				cmd.Println(bold("Simulated:"))
				for _, res := range sims {
					cmd.Printf("  %s\n", color.GreenString("%s", res))
				}
			}

			return nil
		},
	}
}
