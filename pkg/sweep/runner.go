// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package sweep

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Errors returned by Runner construction and lifecycle methods.
var (
	ErrAlreadyStarted = errors.New("sweep: runner already started")
	ErrNoResource     = errors.New("sweep: no resource given")
	ErrNilOpen        = errors.New("sweep: nil open function")
)

// eventBuffer is the default event channel capacity. It only needs to absorb
// short consumer stalls; the consumer is required to drain the channel.
const eventBuffer = 64

// Instrument is the power supply surface a Runner drives. The selection
// methods correspond to the configuration commands sent once per run; the
// remaining methods are used per set-point.
type Instrument interface {
	Identify() (string, error)
	SelectChannel(channel int) error
	SelectChannelAlias(channel int) error
	EnableOutputSelect() error
	SetVoltage(volts float64) error
	EnableOutput() error
	DisableOutput() error
	MeasureCurrent() (float64, error)
	Close() error
}

// OpenFunc opens an exclusively owned Instrument session for the given
// resource identifier. The Runner closes the session when the run ends.
type OpenFunc func(resource string) (Instrument, error)

// ConnectError reports a failure to open or identify the instrument. The run
// fails before any output is enabled and yields no data.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return "connection failed: " + e.Err.Error() }

func (e *ConnectError) Unwrap() error { return e.Err }

// MeasureError reports a failed source/measure exchange at one set-point.
// The run fails, the output is forced off, and the points measured before
// Voltage are preserved.
type MeasureError struct {
	Voltage float64 // set-point at which the exchange failed
	Err     error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("SCPI I/O error at %.3f V: %v", e.Voltage, e.Err)
}

func (e *MeasureError) Unwrap() error { return e.Err }

// Runner executes one sweep end-to-end on a background goroutine. A Runner
// is single use: construct one per run, call Start once, and receive the
// run's notifications from Events until the channel closes.
type Runner struct {
	spec     Spec
	resource string
	open     OpenFunc
	log      *logrus.Logger
	buffer   int

	state   atomic.Int32
	stop    atomic.Bool
	started atomic.Bool

	events chan Event
	done   chan struct{}
}

// RunnerOption applies an option to a Runner.
type RunnerOption func(*Runner)

// WithLogger routes the runner's debug logging to log instead of the
// logrus standard logger.
func WithLogger(log *logrus.Logger) RunnerOption { return func(r *Runner) { r.log = log } }

// WithEventBuffer sets the event channel capacity. Values below one are
// ignored.
func WithEventBuffer(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.buffer = n
		}
	}
}

// NewRunner creates a Runner that will sweep the given spec on the
// instrument named by resource, opened through open. The spec is normalized
// (see Spec.Normalize) before use.
func NewRunner(spec Spec, resource string, open OpenFunc, opts ...RunnerOption) (*Runner, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if resource == "" {
		return nil, ErrNoResource
	}
	if open == nil {
		return nil, ErrNilOpen
	}

	r := &Runner{
		spec:     spec.Normalize(),
		resource: resource,
		open:     open,
		log:      logrus.StandardLogger(),
		buffer:   eventBuffer,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.events = make(chan Event, r.buffer)
	r.state.Store(int32(Idle))
	return r, nil
}

// Events returns the runner's notification channel. Events arrive in run
// order and the channel is closed after the finished event; the consumer
// must drain it until then.
func (r *Runner) Events() <-chan Event { return r.events }

// State returns the runner's current state.
func (r *Runner) State() State { return State(r.state.Load()) }

// Start launches the worker goroutine. A Runner runs at most once; a second
// Start returns ErrAlreadyStarted.
func (r *Runner) Start() error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	go r.run()
	return nil
}

// Stop requests cooperative cancellation. The flag is observed once per
// set-point, so an in-flight instrument exchange or settle wait is not
// interrupted. Stop may be called at any time, from any goroutine, and is
// idempotent.
func (r *Runner) Stop() { r.stop.Store(true) }

// Wait blocks until the worker goroutine has finished or d has elapsed,
// reporting whether the worker finished. After a true return all events have
// been delivered and the event channel is closed.
func (r *Runner) Wait(d time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(d):
		return false
	}
}

// Running reports whether the worker goroutine has been started and has not
// yet finished.
func (r *Runner) Running() bool {
	if !r.started.Load() {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

func (r *Runner) run() {
	defer close(r.done)
	defer close(r.events)

	r.setState(Connecting)
	inst, err := r.open(r.resource)
	if err != nil {
		r.emit(Event{Kind: EventError, Err: &ConnectError{Err: err}})
		r.setState(Failed)
		r.emit(Event{Kind: EventFinished, State: Failed})
		return
	}

	var (
		result    Result
		cancelled bool
		runErr    error
	)

	if idn, err := inst.Identify(); err != nil {
		// The session is open, so the safety finalize below still runs.
		runErr = &ConnectError{Err: err}
		r.emit(Event{Kind: EventError, Err: runErr})
	} else {
		r.emit(Event{Kind: EventStatus, Status: "Connected: " + strings.TrimSpace(idn)})

		r.setState(Configuring)
		r.configure(inst)

		r.setState(Sweeping)
		result, cancelled, runErr = r.sweepLoop(inst)
	}

	r.setState(Finalizing)
	r.finalize(inst)

	state := Completed
	switch {
	case runErr != nil:
		state = Failed
	case cancelled:
		state = Cancelled
	}

	if len(result) > 0 {
		r.emit(Event{Kind: EventDone, Result: result})
	}
	r.setState(state)
	r.emit(Event{Kind: EventFinished, State: state})
}

// sweepLoop sources and measures each set-point in order until the sequence
// is exhausted, the stop flag is observed, or an exchange fails.
func (r *Runner) sweepLoop(inst Instrument) (result Result, cancelled bool, err error) {
	points := r.spec.Points()
	result = make(Result, 0, len(points))

	for _, v := range points {
		if r.stop.Load() {
			r.emit(Event{Kind: EventStatus, Status: "Sweep stopped by user."})
			return result, true, nil
		}

		current, merr := r.measurePoint(inst, v)
		if merr != nil {
			err = &MeasureError{Voltage: v, Err: merr}
			r.emit(Event{Kind: EventError, Err: err})
			r.safeOutputOff(inst)
			return result, false, err
		}

		p := Point{Voltage: v, Current: current}
		result = append(result, p)
		r.emit(Event{Kind: EventPoint, Point: p})
		r.emit(Event{Kind: EventStatus, Status: fmt.Sprintf("V=%.3f V, I=%.6f A", v, current)})
	}
	return result, false, nil
}

// measurePoint sources one set-point, lets the output settle, and measures
// the resulting current.
func (r *Runner) measurePoint(inst Instrument, volts float64) (float64, error) {
	if err := inst.SetVoltage(volts); err != nil {
		return 0, err
	}
	if err := inst.EnableOutput(); err != nil {
		return 0, err
	}
	if r.spec.Settle > 0 {
		time.Sleep(r.spec.Settle)
	}
	return inst.MeasureCurrent()
}

// configure selects the output channel and enables output selection. Which
// of these commands an instrument honors varies by model, so every command
// here is best-effort: failures are logged and ignored.
func (r *Runner) configure(inst Instrument) {
	r.attempt("select channel", func() error { return inst.SelectChannel(r.spec.Channel) })
	r.attempt("select channel alias", func() error { return inst.SelectChannelAlias(r.spec.Channel) })
	r.attempt("enable output select", func() error { return inst.EnableOutputSelect() })
}

// attempt runs one best-effort command, recording a failure without
// propagating it.
func (r *Runner) attempt(name string, fn func() error) {
	if err := fn(); err != nil {
		r.log.Debugf("ignoring %s failure: %v", name, err)
	}
}

// safeOutputOff forces the output off without letting a failure mask the
// error that got us here.
func (r *Runner) safeOutputOff(inst Instrument) {
	if err := inst.DisableOutput(); err != nil {
		r.log.Debugf("output off: %v", err)
	}
}

// finalize forces the output off and closes the session. Both run
// unconditionally; their errors never change the run outcome.
func (r *Runner) finalize(inst Instrument) {
	err := multierr.Combine(
		inst.DisableOutput(),
		inst.Close(),
	)
	if err != nil {
		r.log.Debugf("finalize: %v", err)
	}
}

func (r *Runner) setState(next State) {
	prev := State(r.state.Swap(int32(next)))
	if prev != next {
		r.log.Debugf("sweep state %s -> %s", prev, next)
	}
}

func (r *Runner) emit(ev Event) { r.events <- ev }
