// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(tea.Msg)
}

// startBridge drains the run's event channel into the program. The goroutine
// only calls Send, never model state, and exits when the channel closes,
// which the runner guarantees after its finished event.
func startBridge(p sender, events <-chan sweep.Event) {
	go func() {
		for ev := range events {
			switch ev.Kind {
			case sweep.EventPoint:
				p.Send(pointMsg{point: ev.Point})
			case sweep.EventStatus:
				p.Send(statusMsg{text: ev.Status})
			case sweep.EventError:
				p.Send(runErrorMsg{err: ev.Err})
			case sweep.EventDone:
				p.Send(doneMsg{result: ev.Result})
			case sweep.EventFinished:
				p.Send(finishedMsg{state: ev.State})
			}
		}
	}()
}
