// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/visa"
)

// waitGrace bounds how long the run command waits for the worker goroutine
// after its events channel has closed.
const waitGrace = 3 * time.Second

// Flag defaults mirror the built-in config so --help shows the values a
// flagless run would use. Flags the user actually set win over the file.
var (
	defaultSweep = config.Default().Sweep

	runStart   = defaultSweep.Start
	runEnd     = defaultSweep.End
	runStep    = defaultSweep.Step
	runSettle  = time.Duration(defaultSweep.Settle)
	runChannel = defaultSweep.Channel
)

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one sweep headless and print the measured I-V table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			spec := cfg.Sweep.Spec()
			fl := cmd.Flags()
			if fl.Changed("start") {
				spec.Start = runStart
			}
			if fl.Changed("end") {
				spec.End = runEnd
			}
			if fl.Changed("step") {
				spec.Step = runStep
			}
			if fl.Changed("settle") {
				spec.Settle = runSettle
			}
			if fl.Changed("channel") {
				spec.Channel = runChannel
			}

			res := cfg.Connection.Resource
			if res == "" {
				candidates, err := visa.Resources(cfg.Connection.Backend)
				if err != nil {
					return err
				}
				if len(candidates) == 0 {
					return fmt.Errorf("no instrument resources found")
				}
				res = candidates[0]
				logrus.Infof("no resource configured, using %s", res)
			}

			return runSweep(cmd.OutOrStdout(), spec, res, openInstrument(cfg.Connection))
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&runStart, "start", runStart, "sweep start voltage")
	fl.Float64Var(&runEnd, "end", runEnd, "sweep end voltage")
	fl.Float64Var(&runStep, "step", runStep, "voltage increment per set-point")
	fl.DurationVar(&runSettle, "settle", runSettle, "settle time between sourcing and measuring")
	fl.IntVar(&runChannel, "channel", runChannel, "instrument output channel (1-based)")

	return cmd
}

// runSweep drives one sweep to completion, printing each measured point as
// a table row on w. SIGINT stops the sweep early; the instrument is still
// left with its output off and the points measured so far are kept.
func runSweep(w io.Writer, spec sweep.Spec, resource string, open sweep.OpenFunc) error {
	r, err := sweep.NewRunner(spec, resource, open, sweep.WithLogger(logrus.StandardLogger()))
	if err != nil {
		return err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			logrus.Info("interrupt received, stopping sweep")
			r.Stop()
		}
	}()

	if err := r.Start(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", bold("%12s  %14s", "Voltage (V)", "Current (A)"))

	var (
		result sweep.Result
		state  sweep.State
		runErr error
	)
	for ev := range r.Events() {
		switch ev.Kind {
		case sweep.EventPoint:
			fmt.Fprintf(w, "%12.3f  %14.6f\n", ev.Point.Voltage, ev.Point.Current)
		case sweep.EventStatus:
			// Per-point status lines duplicate the table rows.
			if strings.HasPrefix(ev.Status, "V=") {
				logrus.Debug(ev.Status)
			} else {
				logrus.Info(ev.Status)
			}
		case sweep.EventError:
			runErr = ev.Err
		case sweep.EventDone:
			result = ev.Result
		case sweep.EventFinished:
			state = ev.State
		}
	}
	r.Wait(waitGrace)

	fmt.Fprintf(w, "\n%s %s\n", bold("%d points,", len(result)), stateText(state))
	return runErr
}

func stateText(s sweep.State) string {
	switch s {
	case sweep.Completed:
		return color.GreenString("%s", s)
	case sweep.Cancelled:
		return color.YellowString("%s", s)
	case sweep.Failed:
		return color.RedString("%s", s)
	}
	return s.String()
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
