// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Resource
	}{
		{
			"serial with suffix",
			"ASRL/dev/ttyUSB0::INSTR",
			Resource{Type: TypeASRL, Device: "/dev/ttyUSB0"},
		},
		{
			"serial bare",
			"ASRL/dev/ttyACM1",
			Resource{Type: TypeASRL, Device: "/dev/ttyACM1"},
		},
		{
			"tcpip",
			"TCPIP0::192.168.1.5::5025::SOCKET",
			Resource{Type: TypeTCPIP, Host: "192.168.1.5", Port: 5025},
		},
		{
			"tcpip without board",
			"TCPIP::psu.lab.local::5025::SOCKET",
			Resource{Type: TypeTCPIP, Host: "psu.lab.local", Port: 5025},
		},
		{
			"tcpip board 2",
			"TCPIP2::10.0.0.9::9221::SOCKET",
			Resource{Type: TypeTCPIP, Board: 2, Host: "10.0.0.9", Port: 9221},
		},
		{
			"sim default model",
			"SIM",
			Resource{Type: TypeSIM, Model: "diode"},
		},
		{
			"sim named model",
			"SIM::resistor",
			Resource{Type: TypeSIM, Model: "resistor"},
		},
		{
			"sim full",
			"SIM::diode::INSTR",
			Resource{Type: TypeSIM, Model: "diode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResource(tt.in)
			require.NoError(t, err)
			tt.want.Raw = tt.in
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResourceErrors(t *testing.T) {
	bad := []string{
		"",
		"GPIB0::4::INSTR",
		"ASRL",
		"ASRL::INSTR",
		"ASRL/dev/ttyUSB0::RAW",
		"ASRL/dev/ttyUSB0::INSTR::extra",
		"TCPIP0::10.0.0.1::SOCKET",
		"TCPIP0::10.0.0.1::5025::INSTR",
		"TCPIP0::::5025::SOCKET",
		"TCPIP0::10.0.0.1::0::SOCKET",
		"TCPIP0::10.0.0.1::99999::SOCKET",
		"TCPIPx::10.0.0.1::5025::SOCKET",
		"SIM::a::b::c",
		"SIM::::INSTR",
	}

	for _, in := range bad {
		_, err := ParseResource(in)
		assert.ErrorIs(t, err, ErrBadResource, "input %q", in)
	}
}

func TestResourceStringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"ASRL/dev/ttyUSB0::INSTR",
		"TCPIP0::192.168.1.5::5025::SOCKET",
		"SIM::diode::INSTR",
		"SIM::resistor::INSTR",
	} {
		res, err := ParseResource(in)
		require.NoError(t, err)
		assert.Equal(t, in, res.String())

		again, err := ParseResource(res.String())
		require.NoError(t, err)
		res.Raw, again.Raw = "", ""
		assert.Equal(t, res, again)
	}
}
