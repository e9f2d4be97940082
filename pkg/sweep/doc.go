// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package sweep generates voltage set-point sequences and sequences a
// programmable power supply through a source/settle/measure loop, streaming
// per-point results back to the caller as they are produced.
//
// A Spec describes one sweep: the voltage span, the step size, the output
// channel, and the settle time between sourcing and measuring. Spec.Points
// expands it into the ordered set-point sequence, which always begins at
// Start and always ends at End even when the span is not an exact multiple
// of the step.
//
// A Runner executes one sweep on a background goroutine against any
// Instrument implementation, emitting Events on a channel in a fixed order:
// zero or more point/status events, then an error event on failure, then a
// done event carrying the measured prefix (only if at least one point was
// measured), then a final finished event. Cancellation is cooperative via
// Runner.Stop and is observed once per set-point.
//
//	spec := sweep.Spec{Start: -3, End: 6, Step: 0.5, Channel: 1, Settle: time.Second}
//	r, err := sweep.NewRunner(spec, "SIM::diode::INSTR", open)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	for ev := range r.Events() {
//	    // render ev
//	}
package sweep
