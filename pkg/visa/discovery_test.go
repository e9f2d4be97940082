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

func TestResourcesSim(t *testing.T) {
	got, err := Resources(BackendSim)
	require.NoError(t, err)
	assert.Equal(t, []string{"SIM::diode::INSTR", "SIM::resistor::INSTR"}, got)

	for _, raw := range got {
		res, err := ParseResource(raw)
		require.NoError(t, err)
		assert.Equal(t, TypeSIM, res.Type)
	}
}

func TestResourcesAllEndsWithSim(t *testing.T) {
	// Serial enumeration depends on the host; the simulated resources must be
	// present regardless, after any real ports.
	got, _ := Resources(BackendAll)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "SIM::diode::INSTR", got[len(got)-2])
	assert.Equal(t, "SIM::resistor::INSTR", got[len(got)-1])
}

func TestResourcesUnknownBackend(t *testing.T) {
	_, err := Resources("gpib")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
