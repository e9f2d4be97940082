// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadResource reports a resource string that does not match any supported
// grammar. The wrapped message carries the offending string.
var ErrBadResource = errors.New("visa: bad resource string")

// Supported resource interface types.
const (
	TypeASRL  = "ASRL"  // serial port
	TypeTCPIP = "TCPIP" // raw SCPI socket
	TypeSIM   = "SIM"   // in-process simulated instrument
)

// DefaultSimModel is the simulation model used when a SIM resource names
// none.
const DefaultSimModel = "diode"

// Resource is a parsed VISA-style resource string. Only the fields for the
// parsed Type are meaningful.
type Resource struct {
	Raw  string // the string as given
	Type string // TypeASRL, TypeTCPIP, or TypeSIM

	Device string // ASRL: serial device, e.g. /dev/ttyUSB0
	Board  int    // TCPIP: board index
	Host   string // TCPIP: hostname or address
	Port   int    // TCPIP: TCP port
	Model  string // SIM: simulation model
}

// ParseResource parses a resource string. Supported forms:
//
//	ASRL<device>::INSTR              serial, e.g. ASRL/dev/ttyUSB0::INSTR
//	TCPIP[board]::<host>::<port>::SOCKET
//	SIM[::<model>][::INSTR]
//
// The trailing ::INSTR is optional for ASRL and SIM resources. Interface
// prefixes are upper case, as produced by Resources.
func ParseResource(s string) (Resource, error) {
	r := Resource{Raw: s}
	parts := strings.Split(strings.TrimSpace(s), "::")
	head := parts[0]

	switch {
	case strings.HasPrefix(head, TypeASRL):
		r.Type = TypeASRL
		r.Device = strings.TrimPrefix(head, TypeASRL)
		if r.Device == "" {
			return r, fmt.Errorf("%w: %q: missing serial device", ErrBadResource, s)
		}
		if len(parts) > 2 || (len(parts) == 2 && !strings.EqualFold(parts[1], "INSTR")) {
			return r, fmt.Errorf("%w: %q", ErrBadResource, s)
		}

	case strings.HasPrefix(head, TypeTCPIP):
		r.Type = TypeTCPIP
		if b := strings.TrimPrefix(head, TypeTCPIP); b != "" {
			n, err := strconv.Atoi(b)
			if err != nil || n < 0 {
				return r, fmt.Errorf("%w: %q: bad board index", ErrBadResource, s)
			}
			r.Board = n
		}
		if len(parts) != 4 || !strings.EqualFold(parts[3], "SOCKET") {
			return r, fmt.Errorf("%w: %q: want TCPIP[board]::host::port::SOCKET", ErrBadResource, s)
		}
		r.Host = parts[1]
		if r.Host == "" {
			return r, fmt.Errorf("%w: %q: missing host", ErrBadResource, s)
		}
		port, err := strconv.Atoi(parts[2])
		if err != nil || port < 1 || port > 65535 {
			return r, fmt.Errorf("%w: %q: bad port %q", ErrBadResource, s, parts[2])
		}
		r.Port = port

	case head == TypeSIM:
		r.Type = TypeSIM
		r.Model = DefaultSimModel
		rest := parts[1:]
		if len(rest) > 0 && strings.EqualFold(rest[len(rest)-1], "INSTR") {
			rest = rest[:len(rest)-1]
		}
		switch {
		case len(rest) == 0:
		case len(rest) == 1 && rest[0] != "":
			r.Model = rest[0]
		default:
			return r, fmt.Errorf("%w: %q", ErrBadResource, s)
		}

	default:
		return r, fmt.Errorf("%w: %q: unsupported interface", ErrBadResource, s)
	}
	return r, nil
}

// String returns the canonical resource string for r.
func (r Resource) String() string {
	switch r.Type {
	case TypeASRL:
		return TypeASRL + r.Device + "::INSTR"
	case TypeTCPIP:
		return fmt.Sprintf("%s%d::%s::%d::SOCKET", TypeTCPIP, r.Board, r.Host, r.Port)
	case TypeSIM:
		return TypeSIM + "::" + r.Model + "::INSTR"
	}
	return r.Raw
}
