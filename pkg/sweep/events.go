// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package sweep

// EventKind discriminates the payload carried by an Event.
type EventKind int

// Event kinds emitted by a Runner, in the order they may appear within one
// run: any number of EventPoint and EventStatus, at most one EventError, at
// most one EventDone, and exactly one EventFinished as the last event before
// the channel closes.
const (
	EventPoint    EventKind = iota // Point holds one measured set-point
	EventStatus                    // Status holds a human-readable progress line
	EventError                     // Err holds the fatal run error
	EventDone                      // Result holds the measured prefix
	EventFinished                  // State holds the terminal state
)

var eventKindDesc = map[EventKind]string{
	EventPoint:    "point",
	EventStatus:   "status",
	EventError:    "error",
	EventDone:     "done",
	EventFinished: "finished",
}

func (k EventKind) String() string { return eventKindDesc[k] }

// Event is one notification from the worker goroutine to the consumer. Only
// the field named by Kind is meaningful.
type Event struct {
	Kind   EventKind
	Point  Point
	Status string
	Err    error
	Result Result
	State  State
}

// State identifies a phase of the sweep state machine.
type State int32

// Sweep controller states. A run moves Idle through Finalizing in order,
// then lands on exactly one of the three terminal states.
const (
	Idle State = iota
	Connecting
	Configuring
	Sweeping
	Finalizing
	Completed
	Cancelled
	Failed
)

var stateDesc = map[State]string{
	Idle:        "idle",
	Connecting:  "connecting",
	Configuring: "configuring",
	Sweeping:    "sweeping",
	Finalizing:  "finalizing",
	Completed:   "completed",
	Cancelled:   "cancelled",
	Failed:      "failed",
}

func (s State) String() string { return stateDesc[s] }

// Terminal reports whether s is one of the three end states.
func (s State) Terminal() bool {
	return s == Completed || s == Cancelled || s == Failed
}
