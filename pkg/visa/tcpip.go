// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// openTCP connects a TCPIP::SOCKET resource: a raw TCP stream carrying
// newline-terminated SCPI. The deadline is re-armed before every exchange so
// a stalled instrument cannot block the worker past the configured timeout.
func openTCP(res Resource, o options) (Session, error) {
	addr := net.JoinHostPort(res.Host, strconv.Itoa(res.Port))
	d := net.Dialer{Timeout: o.timeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("visa: dial %s: %w", addr, err)
	}

	arm := func() error {
		return conn.SetDeadline(time.Now().Add(o.timeout))
	}
	return newSession(conn, arm, o), nil
}
