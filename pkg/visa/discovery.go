// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"errors"
	"fmt"
)

// Discovery backends.
const (
	BackendAll    = ""       // every backend
	BackendSerial = "serial" // host serial ports
	BackendSim    = "sim"    // built-in simulated supply
)

// ErrUnknownBackend reports a backend selector Resources does not know.
var ErrUnknownBackend = errors.New("visa: unknown backend")

// Resources lists resource strings under the selected backend, ordered so
// that picking the first entry is deterministic: serial ports sorted by
// device path, then the simulation models. With BackendAll a serial
// enumeration failure is returned alongside the simulated resources, which
// are always available.
func Resources(backend string) ([]string, error) {
	switch backend {
	case BackendSerial:
		return serialResources()
	case BackendSim:
		return simResources(), nil
	case BackendAll:
		out, err := serialResources()
		return append(out, simResources()...), err
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
}

func simResources() []string {
	return []string{
		Resource{Type: TypeSIM, Model: SimModelDiode}.String(),
		Resource{Type: TypeSIM, Model: SimModelResistor}.String(),
	}
}
