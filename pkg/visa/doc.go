// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package visa opens VISA-style instrument sessions and discovers candidate
// resources. It speaks newline-terminated SCPI over three transports:
//
//	ASRL/dev/ttyUSB0::INSTR          a serial port (go.bug.st/serial)
//	TCPIP0::10.0.0.5::5025::SOCKET   a raw SCPI socket, treating the TCP
//	                                 stream as a byte-oriented transport in
//	                                 place of a serial line
//	SIM::diode::INSTR                an in-process simulated supply, for
//	                                 development and tests without hardware
//
// A Session is exclusively owned: open it, drive it from one goroutine, and
// close it when the run ends. Every exchange is bounded by the configured
// timeout (DefaultTimeout unless overridden with WithTimeout).
//
//	sess, err := visa.Open("ASRL/dev/ttyUSB0::INSTR", visa.WithBaudRate(115200))
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//	idn, err := sess.Query("*IDN?")
//
// Resources enumerates candidates under a backend selector; ListPorts
// additionally reports USB descriptor metadata for serial ports on hosts
// that expose it.
package visa
