// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package psu drives programmable power supplies over SCPI: channel
// selection, source level programming, output switching and current
// read-back, one method per instrument exchange.
package psu

import (
	"strings"

	"github.com/gotmc/query"
	"github.com/pkg/errors"
)

// Session is the SCPI conversation a Supply drives. pkg/visa sessions
// satisfy it; so does anything else that frames commands and reads single
// line replies.
type Session interface {
	Command(format string, a ...any) error
	Query(cmd string) (string, error)
	Close() error
}

// Supply is a voltage source with one or more selectable output channels.
// It holds no instrument state beyond the session: every method is one
// exchange on the wire.
type Supply struct {
	sess Session
}

// New returns a Supply speaking SCPI over sess. Closing the Supply closes
// the session.
func New(sess Session) *Supply {
	return &Supply{sess: sess}
}

// Identify reads the instrument identification string, trimmed of framing
// whitespace.
func (s *Supply) Identify() (string, error) {
	idn, err := s.sess.Query("*IDN?")
	if err != nil {
		return "", errors.Wrap(err, "identification query fail")
	}
	return strings.TrimSpace(idn), nil
}

// SelectChannel selects the numbered instrument channel for the commands
// that follow.
func (s *Supply) SelectChannel(channel int) error {
	return errors.Wrap(s.sess.Command(":INST:NSEL %d", channel), "channel select fail")
}

// SelectChannelAlias selects the channel through its OUTn alias. Units
// differ in which of the two selection forms they accept.
func (s *Supply) SelectChannelAlias(channel int) error {
	return errors.Wrap(s.sess.Command("INST OUT%d", channel), "channel alias select fail")
}

// EnableOutputSelect arms the per-channel output selector relay on supplies
// that have one.
func (s *Supply) EnableOutputSelect() error {
	return errors.Wrap(s.sess.Command("OUTP:SEL ON"), "output select fail")
}

// SetVoltage programs the source level, in volt, on the selected channel.
func (s *Supply) SetVoltage(volts float64) error {
	return errors.Wrap(s.sess.Command("VOLT %g", volts), "voltage set fail")
}

// EnableOutput switches the selected output on.
func (s *Supply) EnableOutput() error {
	return errors.Wrap(s.sess.Command("OUTP ON"), "output on fail")
}

// DisableOutput switches the selected output off.
func (s *Supply) DisableOutput() error {
	return errors.Wrap(s.sess.Command("OUTP OFF"), "output off fail")
}

// MeasureCurrent reads the load current, in ampere, on the selected channel.
func (s *Supply) MeasureCurrent() (float64, error) {
	i, err := query.Float64(s.sess, "MEAS:CURR?")
	if err != nil {
		return 0, errors.Wrap(err, "current read fail")
	}
	return i, nil
}

// Close releases the underlying session. The Supply is unusable afterwards.
func (s *Supply) Close() error {
	return errors.Wrap(s.sess.Close(), "session close fail")
}
