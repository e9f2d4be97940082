// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SimIdentity is the *IDN? reply of the simulated supply.
const SimIdentity = "SIM Instruments,IV-PSU,0,1.0"

// Simulation models accepted in SIM resource strings.
const (
	SimModelDiode    = "diode"    // silicon diode with series resistance
	SimModelResistor = "resistor" // 1 kOhm ohmic load
)

// Diode model constants: a garden-variety silicon diode into a 10 Ohm
// series resistance, evaluated at room temperature.
const (
	diodeSaturation = 1e-9    // saturation current in amps
	diodeIdeality   = 2.0     // emission coefficient
	diodeThermal    = 0.02585 // thermal voltage in volts
	diodeSeries     = 10.0    // series resistance in ohms
)

// resistorLoad is the ohmic load of the resistor model.
const resistorLoad = 1000.0

var errSessionClosed = errors.New("visa: session closed")

// simSession is an in-process Session speaking the supply's SCPI subset. It
// accepts :INST:NSEL and the INST OUTn alias but rejects OUTP:SEL, matching
// a supply that knows only some of the selection dialect. Deterministic by
// construction: the same sweep always measures the same currents.
type simSession struct {
	model  string
	log    *logrus.Logger
	closed bool

	channel int
	volts   float64
	output  bool
}

func openSim(res Resource, o options) (Session, error) {
	switch res.Model {
	case SimModelDiode, SimModelResistor:
	default:
		return nil, fmt.Errorf("visa: unknown simulation model %q", res.Model)
	}
	return &simSession{model: res.Model, channel: 1, log: o.log}, nil
}

func (s *simSession) Command(format string, a ...any) error {
	if s.closed {
		return errSessionClosed
	}
	cmd := format
	if len(a) > 0 {
		cmd = fmt.Sprintf(format, a...)
	}
	cmd = strings.TrimSpace(cmd)
	s.log.Debugf("sim tx %q", cmd)
	return s.exec(cmd)
}

func (s *simSession) Query(cmd string) (string, error) {
	if s.closed {
		return "", errSessionClosed
	}
	cmd = strings.TrimSpace(cmd)
	s.log.Debugf("sim tx %q", cmd)

	var reply string
	switch strings.ToUpper(cmd) {
	case "*IDN?":
		reply = SimIdentity
	case "MEAS:CURR?", ":MEAS:CURR?":
		reply = strconv.FormatFloat(s.measure(), 'g', -1, 64)
	default:
		return "", fmt.Errorf("visa: sim: unhandled query %q", cmd)
	}
	s.log.Debugf("sim rx %q", reply)
	return reply, nil
}

func (s *simSession) Close() error {
	if s.closed {
		return errSessionClosed
	}
	s.closed = true
	s.output = false
	return nil
}

func (s *simSession) exec(cmd string) error {
	f := strings.Fields(cmd)
	if len(f) == 0 {
		return fmt.Errorf("visa: sim: empty command")
	}
	head := strings.ToUpper(f[0])

	switch {
	case head == ":INST:NSEL" || head == "INST:NSEL":
		if len(f) != 2 {
			return fmt.Errorf("visa: sim: %q wants a channel", cmd)
		}
		n, err := strconv.Atoi(f[1])
		if err != nil || n < 1 {
			return fmt.Errorf("visa: sim: bad channel %q", f[1])
		}
		s.channel = n

	case head == "INST" && len(f) == 2 && strings.HasPrefix(strings.ToUpper(f[1]), "OUT"):
		n, err := strconv.Atoi(strings.ToUpper(f[1])[3:])
		if err != nil || n < 1 {
			return fmt.Errorf("visa: sim: bad output %q", f[1])
		}
		s.channel = n

	case head == "OUTP:SEL":
		// Not every supply speaks this alias; this one doesn't.
		return fmt.Errorf("visa: sim: undefined header %q", cmd)

	case head == "VOLT" || head == ":VOLT":
		if len(f) != 2 {
			return fmt.Errorf("visa: sim: %q wants a voltage", cmd)
		}
		v, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return fmt.Errorf("visa: sim: bad voltage %q", f[1])
		}
		s.volts = v

	case head == "OUTP" || head == ":OUTP":
		if len(f) != 2 {
			return fmt.Errorf("visa: sim: %q wants ON or OFF", cmd)
		}
		switch strings.ToUpper(f[1]) {
		case "ON", "1":
			s.output = true
		case "OFF", "0":
			s.output = false
		default:
			return fmt.Errorf("visa: sim: bad output state %q", f[1])
		}

	default:
		return fmt.Errorf("visa: sim: undefined header %q", cmd)
	}
	return nil
}

// measure returns the load current for the sourced voltage, or zero with
// the output off.
func (s *simSession) measure() float64 {
	if !s.output {
		return 0
	}
	if s.model == SimModelResistor {
		return s.volts / resistorLoad
	}
	return diodeCurrent(s.volts)
}

// diodeCurrent solves the Shockley equation with series resistance,
//
//	i = Is*(exp((v - i*Rs)/(n*Vt)) - 1)
//
// for i by Newton iteration. The residual is monotone and convex in i, so
// the iteration converges from either side of the root; deep forward bias
// starts from the ohmic asymptote to keep the step count small.
func diodeCurrent(v float64) float64 {
	i := 0.0
	if v > 1 {
		i = (v - 0.7) / diodeSeries
	}
	for n := 0; n < 200; n++ {
		arg := (v - i*diodeSeries) / (diodeIdeality * diodeThermal)
		if arg > 500 {
			arg = 500 // keeps the residual finite for absurd set-points
		}
		e := math.Exp(arg)
		f := diodeSaturation*(e-1) - i
		df := -diodeSaturation*e*diodeSeries/(diodeIdeality*diodeThermal) - 1
		di := f / df
		i -= di
		if math.Abs(di) < 1e-12*(1+math.Abs(i)) {
			break
		}
	}
	return i
}
