// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package tui is the full-screen terminal front end: a sweep parameter
// form, a live braille I-V chart, and the status of the run in progress.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// Run drives the UI until the user quits. Any live sweep is stopped, with a
// bounded wait, before Run returns.
func Run(cfg config.Config, open sweep.OpenFunc, log *logrus.Logger) error {
	m := NewModel(cfg, open, log)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Send the program reference so the model can start bridge goroutines.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	}
	return nil
}
