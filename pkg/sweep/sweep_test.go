// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package sweep

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{"valid", Spec{Start: -3, End: 6, Step: 0.5, Channel: 1}, nil},
		{"valid single point", Spec{Start: 2, End: 2, Step: 0.5, Channel: 2}, nil},
		{"zero channel", Spec{Start: 0, End: 1, Step: 0.5, Channel: 0}, ErrBadChannel},
		{"negative channel", Spec{Start: 0, End: 1, Step: 0.5, Channel: -1}, ErrBadChannel},
		{"nan start", Spec{Start: math.NaN(), End: 1, Step: 0.5, Channel: 1}, ErrNotFinite},
		{"inf end", Spec{Start: 0, End: math.Inf(1), Step: 0.5, Channel: 1}, ErrNotFinite},
		{"nan step", Spec{Start: 0, End: 1, Step: math.NaN(), Channel: 1}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.spec.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpecNormalize(t *testing.T) {
	tests := []struct {
		name       string
		spec       Spec
		wantStep   float64
		wantSettle float64 // seconds
	}{
		{"already normal", Spec{Step: 0.5, Settle: time.Second}, 0.5, 1},
		{"negative step", Spec{Step: -0.25, Settle: 0}, 0.25, 0},
		{"zero step", Spec{Step: 0}, DefaultStep, 0},
		{"negative settle", Spec{Step: 1, Settle: -time.Second}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.spec.Normalize()
			if n.Step != tt.wantStep {
				t.Errorf("Step = %v, want %v", n.Step, tt.wantStep)
			}
			if got := n.Settle.Seconds(); got != tt.wantSettle {
				t.Errorf("Settle = %vs, want %vs", got, tt.wantSettle)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want []float64
	}{
		{
			"endpoint appended ascending",
			Spec{Start: 0, End: 1, Step: 0.3},
			[]float64{0, 0.3, 0.6, 0.9, 1},
		},
		{
			"endpoint appended descending",
			Spec{Start: 1, End: 0, Step: 0.3},
			[]float64{1, 0.7, 0.4, 0.1, 0},
		},
		{
			"single point",
			Spec{Start: 2, End: 2, Step: 0.5},
			[]float64{2},
		},
		{
			"even division",
			Spec{Start: 0, End: 1, Step: 0.25},
			[]float64{0, 0.25, 0.5, 0.75, 1},
		},
		{
			"step exceeds span",
			Spec{Start: 0, End: 1, Step: 5},
			[]float64{0, 1},
		},
		{
			"negative step",
			Spec{Start: 0, End: 1, Step: -0.25},
			[]float64{0, 0.25, 0.5, 0.75, 1},
		},
		{
			"zero step uses default",
			Spec{Start: 0, End: 1, Step: 0},
			[]float64{0, 0.5, 1},
		},
		{
			"descending exact",
			Spec{Start: 1, End: -1, Step: 0.5},
			[]float64{1, 0.5, 0, -0.5, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spec.Points()
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("point[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPointsBenchSweep(t *testing.T) {
	// The default bench sweep: -3 V to +6 V in 0.5 V steps.
	pts := Spec{Start: -3, End: 6, Step: 0.5}.Points()

	if len(pts) != 19 {
		t.Fatalf("len = %d, want 19", len(pts))
	}
	if pts[0] != -3 {
		t.Errorf("first = %v, want -3", pts[0])
	}
	if pts[18] != 6 {
		t.Errorf("last = %v, want 6", pts[18])
	}
	for i, want := 0, -3.0; i < len(pts); i, want = i+1, want+0.5 {
		if math.Abs(pts[i]-want) > 1e-9 {
			t.Errorf("point[%d] = %v, want %v", i, pts[i], want)
		}
	}
}

func TestPointsProperties(t *testing.T) {
	specs := []Spec{
		{Start: -3, End: 6, Step: 0.5},
		{Start: 6, End: -3, Step: 0.5},
		{Start: 0, End: 1, Step: 0.3},
		{Start: -1.2, End: 4.7, Step: 0.7},
		{Start: 10, End: -10, Step: 3},
		{Start: 0.1, End: 0.9, Step: 0.1},
		{Start: -0.5, End: -0.1, Step: 0.05},
	}

	for _, s := range specs {
		t.Run(fmt.Sprintf("%g to %g by %g", s.Start, s.End, s.Step), func(t *testing.T) {
			pts := s.Points()
			if pts[0] != s.Start {
				t.Errorf("first = %v, want %v", pts[0], s.Start)
			}
			if math.Abs(pts[len(pts)-1]-s.End) > 1e-9 {
				t.Errorf("last = %v, want %v", pts[len(pts)-1], s.End)
			}

			dir := 1.0
			if s.End < s.Start {
				dir = -1
			}
			for i := 1; i < len(pts); i++ {
				d := (pts[i] - pts[i-1]) * dir
				if d <= 0 {
					t.Errorf("not strictly monotonic at %d: %v -> %v", i, pts[i-1], pts[i])
				}
				if math.Abs(pts[i]-pts[i-1]) <= 1e-9 {
					t.Errorf("duplicate point at %d: %v", i, pts[i])
				}
			}
		})
	}
}

func TestPointsEvenDivisionLength(t *testing.T) {
	tests := []struct {
		spec Spec
		want int
	}{
		{Spec{Start: -3, End: 6, Step: 0.5}, 19},
		{Spec{Start: 0, End: 1, Step: 0.25}, 5},
		{Spec{Start: 0, End: 10, Step: 1}, 11},
		{Spec{Start: 5, End: -5, Step: 2.5}, 5},
	}

	for _, tt := range tests {
		got := tt.spec.Points()
		if len(got) != tt.want {
			t.Errorf("Points(%+v) len = %d, want %d", tt.spec, len(got), tt.want)
		}
	}
}

func TestResultAccessors(t *testing.T) {
	r := Result{
		{Voltage: 0, Current: 0.001},
		{Voltage: 0.5, Current: 0.002},
		{Voltage: 1, Current: 0.003},
	}

	wantV := []float64{0, 0.5, 1}
	wantI := []float64{0.001, 0.002, 0.003}

	for i, v := range r.Voltages() {
		if v != wantV[i] {
			t.Errorf("Voltages()[%d] = %v, want %v", i, v, wantV[i])
		}
	}
	for i, c := range r.Currents() {
		if c != wantI[i] {
			t.Errorf("Currents()[%d] = %v, want %v", i, c, wantI[i])
		}
	}
}
