// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/internal/tui"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/psu"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/visa"
)

var (
	logLevel   = "info"
	configPath = ""
	backend    = ""
	resource   = ""
	baudRate   = 0
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ivsweep",
		Short: "ivsweep captures I-V curves from SCPI power supplies",
		Long: `ivsweep steps a programmable power supply through a voltage range,
reads back the current at every set-point, and plots the I-V curve live
in the terminal. Run it without arguments for the interactive screen,
or use 'ivsweep run' for a headless sweep that prints a table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// The alternate screen owns the terminal for the duration of
			// the run, so logrus output would tear the UI. Headless
			// tracing is what 'ivsweep run' is for.
			logrus.SetOutput(io.Discard)
			defer logrus.SetOutput(os.Stderr)
			return tui.Run(cfg, openInstrument(cfg.Connection), logrus.StandardLogger())
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVarP(&configPath, "config", "c", configPath, "config file path")
	globalFlags.StringVar(&backend, "backend", backend, `resource backend: "serial", "sim" or empty for all`)
	globalFlags.StringVarP(&resource, "resource", "r", resource, "instrument resource, e.g. ASRL/dev/ttyUSB0::INSTR")
	globalFlags.IntVar(&baudRate, "baud", baudRate, "serial baud rate (0 keeps the configured rate)")

	cmd.AddCommand(
		NewRunCommand(),
		NewListCommand(),
		NewVersionCommand(),
	)

	return cmd
}

// loadConfig reads the config file and layers the global flags over it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if backend != "" {
		cfg.Connection.Backend = backend
	}
	if resource != "" {
		cfg.Connection.Resource = resource
	}
	if baudRate > 0 {
		cfg.Connection.BaudRate = baudRate
	}
	return cfg, nil
}

// openInstrument adapts a connection config into the opener the sweep
// runner calls once per run. The interactive screen and the headless
// run command share it.
func openInstrument(conn config.Connection) sweep.OpenFunc {
	return func(res string) (sweep.Instrument, error) {
		sess, err := visa.Open(res,
			visa.WithBaudRate(conn.BaudRate),
			visa.WithLogger(logrus.StandardLogger()),
		)
		if err != nil {
			return nil, err
		}
		return psu.New(sess), nil
	}
}
