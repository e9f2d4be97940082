// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// pointMsg delivers one measured point from the bridge goroutine.
type pointMsg struct {
	point sweep.Point
}

// statusMsg carries a status line from the running sweep.
type statusMsg struct {
	text string
}

// runErrorMsg carries the error that is failing the current run.
type runErrorMsg struct {
	err error
}

// doneMsg delivers the accumulated result when a run produced data.
type doneMsg struct {
	result sweep.Result
}

// finishedMsg is the last message of a run; state is terminal.
type finishedMsg struct {
	state sweep.State
}

// resourcesMsg reports a resource scan. rescan marks a user-requested scan,
// which overwrites the resource field; the startup scan only fills it when
// empty.
type resourcesMsg struct {
	resources []string
	err       error
	rescan    bool
}

// programReadyMsg passes the *tea.Program to the model so event bridges can
// be started.
type programReadyMsg struct {
	program *tea.Program
}

// stopTimeoutMsg fires after the bounded wait for a stopping run; quitting
// proceeds even if the run has not confirmed.
type stopTimeoutMsg struct{}
