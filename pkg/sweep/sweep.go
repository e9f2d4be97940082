// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package sweep

import (
	"errors"
	"math"
	"time"
)

// Errors returned when validating a sweep description.
var (
	ErrBadChannel = errors.New("sweep: channel must be >= 1")
	ErrNotFinite  = errors.New("sweep: start, end, and step must be finite")
)

// DefaultStep is substituted for a zero step so that a sweep always
// terminates.
const DefaultStep = 0.5

const (
	// spanEps widens the inclusion test for generated set-points so that an
	// end value landing exactly on a step boundary is kept.
	spanEps = 1e-12
	// endpointEps decides whether the last generated set-point already equals
	// End, avoiding both a duplicated and a missing endpoint.
	endpointEps = 1e-9
)

// Spec describes one voltage sweep on a single output channel.
type Spec struct {
	Start   float64       // first set-point in volts
	End     float64       // final set-point in volts
	Step    float64       // set-point increment in volts; sign is ignored
	Channel int           // instrument output channel, 1-based
	Settle  time.Duration // wait between sourcing a set-point and measuring
}

// Point is one measured sweep point.
type Point struct {
	Voltage float64 // sourced voltage in volts
	Current float64 // measured current in amps
}

// Result is the ordered sequence of points measured during one run. A
// cancelled or failed run yields the prefix measured before it ended.
type Result []Point

// Voltages returns the sourced voltages of r in order.
func (r Result) Voltages() []float64 {
	vs := make([]float64, len(r))
	for i, p := range r {
		vs[i] = p.Voltage
	}
	return vs
}

// Currents returns the measured currents of r in order.
func (r Result) Currents() []float64 {
	cs := make([]float64, len(r))
	for i, p := range r {
		cs[i] = p.Current
	}
	return cs
}

// Normalize returns a copy of s with the step and settle time coerced into
// their valid domains: the step is replaced by its absolute value, a zero
// step becomes DefaultStep, and a negative settle time becomes zero.
func (s Spec) Normalize() Spec {
	s.Step = math.Abs(s.Step)
	if s.Step == 0 {
		s.Step = DefaultStep
	}
	if s.Settle < 0 {
		s.Settle = 0
	}
	return s
}

// Validate checks that the Spec parameters are valid. Validate does not
// reject a zero step or a negative settle time; Normalize coerces those.
func (s Spec) Validate() error {
	if !isFinite(s.Start) || !isFinite(s.End) || !isFinite(s.Step) {
		return ErrNotFinite
	}
	if s.Channel < 1 {
		return ErrBadChannel
	}
	return nil
}

// Points expands the normalized Spec into the ordered set-point sequence.
//
// The sequence begins at Start and advances by Step toward End: strictly
// increasing when Start < End, strictly decreasing when Start > End, and the
// single element [Start] when the two are equal. Set-points are computed
// multiplicatively from the index rather than accumulated, so step error
// does not drift over long sweeps. End is appended as a final element when
// the last generated set-point misses it by more than endpointEps.
func (s Spec) Points() []float64 {
	s = s.Normalize()
	if s.Start == s.End {
		return []float64{s.Start}
	}

	var pts []float64
	if s.Start < s.End {
		for i := 0; ; i++ {
			v := s.Start + float64(i)*s.Step
			if v > s.End+spanEps {
				break
			}
			pts = append(pts, v)
		}
	} else {
		for i := 0; ; i++ {
			v := s.Start - float64(i)*s.Step
			if v < s.End-spanEps {
				break
			}
			pts = append(pts, v)
		}
	}

	if len(pts) == 0 || math.Abs(s.End-pts[len(pts)-1]) > endpointEps {
		pts = append(pts, s.End)
	}
	return pts
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
